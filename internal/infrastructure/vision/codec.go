//go:build gocv
// +build gocv

package vision

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	"gocv.io/x/gocv"

	"emotion-worker/internal/domain/entity"
	"emotion-worker/internal/domain/port"
)

// Codec декодирует сжатые кадры в Mat и сжимает размеченные кадры в JPEG.
type Codec struct {
	opts Options
}

// NewCodec создаёт кодек.
func NewCodec(opts Options) *Codec {
	return &Codec{opts: opts}
}

// Decode декодирует изображение, уменьшает его на ResizePercent и строит серую копию.
func (c *Codec) Decode(data []byte) (port.Frame, error) {
	mat, err := decodeToMat(data)
	if err != nil {
		return nil, err
	}

	if w, h, ok := scaledSize(mat.Cols(), mat.Rows(), c.opts.ResizePercent); ok {
		resized := gocv.NewMat()
		gocv.Resize(mat, &resized, image.Pt(w, h), 0, 0, gocv.InterpolationArea)
		mat.Close()
		mat = resized
	}

	gray := gocv.NewMat()
	gocv.CvtColor(mat, &gray, gocv.ColorBGRToGray)

	return &Frame{color: mat, gray: gray}, nil
}

// Encode сжимает цветной кадр в JPEG с качеством JPEGQuality.
func (c *Codec) Encode(frame port.Frame) ([]byte, error) {
	f, err := asFrame(frame)
	if err != nil {
		return nil, err
	}

	img, err := f.color.ToImage()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: c.opts.JPEGQuality}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// decodeToMat превращает байты изображения в gocv.Mat.
func decodeToMat(imageData []byte) (gocv.Mat, error) {
	mat, err := gocv.IMDecode(imageData, gocv.IMReadColor)
	if err == nil && !mat.Empty() {
		return mat, nil
	}
	mat.Close()
	if err != nil {
		return gocv.Mat{}, fmt.Errorf("%w: %v", entity.ErrDecodeImage, err)
	}
	return gocv.Mat{}, entity.ErrDecodeImage
}

var _ port.FrameCodec = (*Codec)(nil)
