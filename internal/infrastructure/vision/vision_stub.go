//go:build !gocv
// +build !gocv

package vision

import (
	"context"
	"errors"

	"emotion-worker/internal/domain/entity"
	"emotion-worker/internal/domain/port"
)

var errNoGocv = errors.New("gocv build tag is not enabled")

type Registry struct {
	Emotion *Model
	Gender  *Model
	Age     *Model
}

// LoadRegistry возвращает ошибку, если сборка без тега gocv.
func LoadRegistry(paths entity.ModelPaths) (*Registry, error) {
	_ = paths
	return nil, errNoGocv
}

func (r *Registry) Close() error { return nil }

type Model struct{}

// Predict возвращает ошибку, если сборка без тега gocv.
func (m *Model) Predict(ctx context.Context, batch entity.Tensor) ([][]float32, error) {
	return nil, errNoGocv
}

type Codec struct{ opts Options }

// NewCodec создаёт кодек-заглушку (без OpenCV).
func NewCodec(opts Options) *Codec { return &Codec{opts: opts} }

func (c *Codec) Decode(data []byte) (port.Frame, error) { return nil, errNoGocv }

func (c *Codec) Encode(frame port.Frame) ([]byte, error) { return nil, errNoGocv }

type Localizer struct{}

func NewLocalizer(registry *Registry, opts Options) *Localizer { return &Localizer{} }

func (l *Localizer) Locate(ctx context.Context, frame port.Frame) ([]entity.FaceBox, error) {
	return nil, errNoGocv
}

type Sampler struct{}

func NewSampler() *Sampler { return &Sampler{} }

func (s *Sampler) Crops(frame port.Frame, boxes []entity.FaceBox) ([]entity.FaceCrop, error) {
	return nil, errNoGocv
}

type Annotator struct{}

func NewAnnotator() *Annotator { return &Annotator{} }

func (a *Annotator) Annotate(frame port.Frame, predictions []entity.Prediction) error {
	return errNoGocv
}
