//go:build gocv
// +build gocv

package vision

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"emotion-worker/internal/domain/entity"
)

func TestTensorToMat_OwnsItsData(t *testing.T) {
	samples := [][]byte{{0, 51, 102, 255}, {255, 0, 0, 1}}
	tensor, err := entity.NewTensor(samples, 2, 2, 1, 1.0/255, entity.LayoutNHWC)
	require.NoError(t, err)
	want := append([]float32(nil), tensor.Data...)

	mat, err := tensorToMat(tensor)
	require.NoError(t, err)
	defer mat.Close()

	// Исходный срез больше не нужен Mat.
	for i := range tensor.Data {
		tensor.Data[i] = -1
	}
	tensor.Data = nil
	runtime.GC()

	got, err := mat.DataPtrFloat32()
	require.NoError(t, err)
	require.Equal(t, want, got)
	require.Equal(t, []int{2, 2, 2, 1}, mat.Size())
}

func TestTensorToMat_ShapeMismatch(t *testing.T) {
	_, err := tensorToMat(entity.Tensor{Shape: []int{1, 2, 2, 1}, Data: []float32{1, 2}})
	require.Error(t, err)
}
