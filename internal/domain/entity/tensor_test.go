package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewTensor_NHWCScale(t *testing.T) {
	samples := [][]byte{{0, 255}, {51, 102}}
	tensor, err := NewTensor(samples, 1, 2, 1, 1.0/255, LayoutNHWC)
	require.NoError(t, err)
	require.Equal(t, []int{2, 1, 2, 1}, tensor.Shape)
	require.Equal(t, 2, tensor.Batch())
	require.InDeltaSlice(t, []float32{0, 1, 0.2, 0.4}, tensor.Data, 1e-6)
}

func TestNewTensor_NCHWPlanes(t *testing.T) {
	// Два пикселя BGR: (1,2,3) и (4,5,6).
	samples := [][]byte{{1, 2, 3, 4, 5, 6}}
	tensor, err := NewTensor(samples, 1, 2, 3, 1, LayoutNCHW)
	require.NoError(t, err)
	require.Equal(t, []int{1, 3, 1, 2}, tensor.Shape)
	require.Equal(t, []float32{1, 4, 2, 5, 3, 6}, tensor.Data)
}

func TestNewTensor_SizeMismatch(t *testing.T) {
	_, err := NewTensor([][]byte{{1, 2, 3}}, 2, 2, 1, 1, LayoutNHWC)
	require.Error(t, err)
}

func TestParseLayout(t *testing.T) {
	l, err := ParseLayout("nchw")
	require.NoError(t, err)
	require.Equal(t, LayoutNCHW, l)

	_, err = ParseLayout("hwc")
	require.Error(t, err)
}
