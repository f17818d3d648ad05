//go:build gocv
// +build gocv

package vision

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"emotion-worker/internal/domain/entity"
	"emotion-worker/internal/domain/port"
)

// Sampler вырезает и масштабирует области лиц под входы моделей.
type Sampler struct{}

// NewSampler создаёт Sampler.
func NewSampler() *Sampler {
	return &Sampler{}
}

// Crops возвращает вырезки строго в порядке boxes.
func (s *Sampler) Crops(frame port.Frame, boxes []entity.FaceBox) ([]entity.FaceCrop, error) {
	f, err := asFrame(frame)
	if err != nil {
		return nil, err
	}

	crops := make([]entity.FaceCrop, len(boxes))
	for i, box := range boxes {
		if box.Empty() {
			return nil, fmt.Errorf("face %d: empty region", i)
		}
		gray, err := cropResized(f.gray, box.Rect(), entity.EmotionInputSize)
		if err != nil {
			return nil, fmt.Errorf("face %d: %w", i, err)
		}
		color, err := cropResized(f.color, box.Rect(), entity.AttributeInputSize)
		if err != nil {
			return nil, fmt.Errorf("face %d: %w", i, err)
		}
		crops[i] = entity.FaceCrop{Gray: gray, Color: color}
	}
	return crops, nil
}

func cropResized(src gocv.Mat, rect image.Rectangle, side int) ([]byte, error) {
	roi := src.Region(rect)
	defer roi.Close()

	resized := gocv.NewMat()
	defer resized.Close()
	gocv.Resize(roi, &resized, image.Pt(side, side), 0, 0, gocv.InterpolationLinear)
	if resized.Empty() {
		return nil, fmt.Errorf("resize %v to %dx%d failed", rect, side, side)
	}

	return resized.ToBytes(), nil
}

var _ port.FaceSampler = (*Sampler)(nil)
