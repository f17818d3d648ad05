//go:build gocv
// +build gocv

package vision

import (
	"fmt"

	"gocv.io/x/gocv"

	"emotion-worker/internal/domain/port"
)

// Frame хранит уменьшенный цветной кадр (BGR) и его серую копию.
type Frame struct {
	color gocv.Mat
	gray  gocv.Mat
}

func (f *Frame) Width() int  { return f.color.Cols() }
func (f *Frame) Height() int { return f.color.Rows() }

// Close освобождает оба буфера.
func (f *Frame) Close() error {
	grayErr := f.gray.Close()
	if err := f.color.Close(); err != nil {
		return err
	}
	return grayErr
}

func asFrame(frame port.Frame) (*Frame, error) {
	f, ok := frame.(*Frame)
	if !ok || f == nil {
		return nil, fmt.Errorf("unsupported frame type %T", frame)
	}
	return f, nil
}

var _ port.Frame = (*Frame)(nil)
