//go:build gocv
// +build gocv

package vision

import (
	"context"
	"image"

	"emotion-worker/internal/domain/entity"
	"emotion-worker/internal/domain/port"
)

// Localizer ищет лица каскадом Хаара по серой копии кадра.
type Localizer struct {
	registry *Registry
	opts     Options
}

// NewLocalizer создаёт детектор поверх каскада из реестра.
func NewLocalizer(registry *Registry, opts Options) *Localizer {
	return &Localizer{registry: registry, opts: opts}
}

// Locate возвращает области лиц в порядке, в котором их отдал каскад.
func (l *Localizer) Locate(ctx context.Context, frame port.Frame) ([]entity.FaceBox, error) {
	f, err := asFrame(frame)
	if err != nil {
		return nil, err
	}

	minSize := image.Pt(l.opts.MinFaceSize, l.opts.MinFaceSize)
	rects := l.registry.Cascade.DetectMultiScaleWithParams(
		f.gray, l.opts.ScaleFactor, l.opts.MinNeighbors, 0, minSize, image.Pt(0, 0),
	)

	boxes := make([]entity.FaceBox, 0, len(rects))
	for _, r := range rects {
		box := entity.NewFaceBox(r).ClipTo(f.Width(), f.Height())
		if box.Empty() {
			continue
		}
		boxes = append(boxes, box)
	}
	return boxes, nil
}

var _ port.FaceLocalizer = (*Localizer)(nil)
