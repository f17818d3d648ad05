package app

import (
	"context"
	"errors"

	"emotion-worker/internal/domain/entity"
	"emotion-worker/internal/domain/port"
)

// fakeModel отдаёт заранее заданные строки и считает вызовы.
type fakeModel struct {
	rows    [][]float32
	err     error
	calls   int
	batches []entity.Tensor
}

func (m *fakeModel) Predict(ctx context.Context, batch entity.Tensor) ([][]float32, error) {
	m.calls++
	m.batches = append(m.batches, batch)
	if m.err != nil {
		return nil, m.err
	}
	return m.rows[:batch.Batch()], nil
}

func emotionRow(idx int, score float32) []float32 {
	row := make([]float32, len(entity.EmotionLabels))
	rest := (1 - score) / float32(len(row)-1)
	for i := range row {
		row[i] = rest
	}
	row[idx] = score
	return row
}

func testCrop(fill byte) entity.FaceCrop {
	gray := make([]byte, entity.EmotionInputSize*entity.EmotionInputSize)
	color := make([]byte, entity.AttributeInputSize*entity.AttributeInputSize*entity.ColorChannels)
	for i := range gray {
		gray[i] = fill
	}
	for i := range color {
		color[i] = fill
	}
	return entity.FaceCrop{Gray: gray, Color: color}
}

// fakeFrame — кадр без пикселей.
type fakeFrame struct {
	width, height int
	closed        bool
}

func (f *fakeFrame) Width() int  { return f.width }
func (f *fakeFrame) Height() int { return f.height }
func (f *fakeFrame) Close() error {
	f.closed = true
	return nil
}

type fakeCodec struct {
	frame     *fakeFrame
	decodeErr error
	encoded   []byte
	decoded   [][]byte
}

func (c *fakeCodec) Decode(data []byte) (port.Frame, error) {
	c.decoded = append(c.decoded, data)
	if c.decodeErr != nil {
		return nil, c.decodeErr
	}
	return c.frame, nil
}

func (c *fakeCodec) Encode(frame port.Frame) ([]byte, error) {
	return c.encoded, nil
}

type fakeLocalizer struct {
	boxes []entity.FaceBox
	panic bool
}

func (l *fakeLocalizer) Locate(ctx context.Context, frame port.Frame) ([]entity.FaceBox, error) {
	if l.panic {
		panic("native detector crashed")
	}
	return l.boxes, nil
}

type fakeSampler struct{}

func (fakeSampler) Crops(frame port.Frame, boxes []entity.FaceBox) ([]entity.FaceCrop, error) {
	crops := make([]entity.FaceCrop, len(boxes))
	for i := range boxes {
		crops[i] = testCrop(byte(i))
	}
	return crops, nil
}

type fakeAnnotator struct {
	calls       int
	predictions []entity.Prediction
}

func (a *fakeAnnotator) Annotate(frame port.Frame, predictions []entity.Prediction) error {
	a.calls++
	a.predictions = predictions
	return nil
}

var errBoom = errors.New("boom")
