//go:build gocv
// +build gocv

package vision

import (
	"image/color"

	"gocv.io/x/gocv"

	"emotion-worker/internal/domain/entity"
	"emotion-worker/internal/domain/port"
)

// Annotator рисует рамки и подписи прямо на кадре.
type Annotator struct{}

// NewAnnotator создаёт Annotator.
func NewAnnotator() *Annotator {
	return &Annotator{}
}

// Annotate рисует синюю рамку вокруг каждого лица и зелёные подписи.
func (a *Annotator) Annotate(frame port.Frame, predictions []entity.Prediction) error {
	f, err := asFrame(frame)
	if err != nil {
		return err
	}

	blue := color.RGBA{B: 255, A: 255}
	green := color.RGBA{G: 255, A: 255}
	for _, p := range predictions {
		gocv.Rectangle(&f.color, p.Position.Rect(), blue, 2)
		for _, c := range captions(p) {
			gocv.PutText(&f.color, c.text, c.at, gocv.FontHersheySimplex, 0.7, green, 2)
		}
	}
	return nil
}

var _ port.Annotator = (*Annotator)(nil)
