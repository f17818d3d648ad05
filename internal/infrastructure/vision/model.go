//go:build gocv
// +build gocv

package vision

import (
	"context"
	"errors"
	"fmt"

	"gocv.io/x/gocv"

	"emotion-worker/internal/domain/entity"
	"emotion-worker/internal/domain/port"
)

// Model — DNN-сеть OpenCV, выполняющая один прямой проход на батч.
type Model struct {
	name string
	net  gocv.Net
}

// Predict подаёт весь батч на вход и разрезает выход на строки по образцам.
func (m *Model) Predict(ctx context.Context, batch entity.Tensor) ([][]float32, error) {
	n := batch.Batch()
	if n == 0 || len(batch.Data) == 0 {
		return nil, errors.New("empty batch")
	}

	blob, err := tensorToMat(batch)
	if err != nil {
		return nil, fmt.Errorf("%s input: %w", m.name, err)
	}
	defer blob.Close()

	m.net.SetInput(blob, "")
	out := m.net.Forward("")
	defer out.Close()
	if out.Empty() {
		return nil, fmt.Errorf("%s model returned empty output", m.name)
	}

	data, err := out.DataPtrFloat32()
	if err != nil {
		return nil, fmt.Errorf("%s output: %w", m.name, err)
	}
	if len(data)%n != 0 {
		return nil, fmt.Errorf("%s output: %d values for batch of %d", m.name, len(data), n)
	}

	width := len(data) / n
	rows := make([][]float32, n)
	for i := range rows {
		rows[i] = make([]float32, width)
		copy(rows[i], data[i*width:(i+1)*width])
	}
	return rows, nil
}

// tensorToMat копирует батч в память, принадлежащую Mat.
func tensorToMat(t entity.Tensor) (gocv.Mat, error) {
	mat := gocv.NewMatWithSizes(t.Shape, gocv.MatTypeCV32F)
	data, err := mat.DataPtrFloat32()
	if err != nil {
		mat.Close()
		return gocv.Mat{}, err
	}
	if len(data) != len(t.Data) {
		mat.Close()
		return gocv.Mat{}, fmt.Errorf("tensor of shape %v holds %d values, got %d", t.Shape, len(data), len(t.Data))
	}
	copy(data, t.Data)
	return mat, nil
}

var _ port.Model = (*Model)(nil)
