package entity

import "fmt"

// Layout задаёт порядок осей входного тензора.
type Layout string

const (
	LayoutNHWC Layout = "nhwc" // экспорт Keras
	LayoutNCHW Layout = "nchw" // blob OpenCV
)

// ParseLayout разбирает строку конфигурации.
func ParseLayout(s string) (Layout, error) {
	switch Layout(s) {
	case LayoutNHWC, LayoutNCHW:
		return Layout(s), nil
	}
	return "", fmt.Errorf("unknown tensor layout %q", s)
}

// Tensor — батч входов модели в виде плоского массива float32.
type Tensor struct {
	Shape []int
	Data  []float32
}

// Batch возвращает размер батча (первая ось).
func (t Tensor) Batch() int {
	if len(t.Shape) == 0 {
		return 0
	}
	return t.Shape[0]
}

// NewTensor упаковывает N образцов height x width x channels (байты, чередование каналов)
// в один батч, умножая каждое значение на scale.
func NewTensor(samples [][]byte, height, width, channels int, scale float32, layout Layout) (Tensor, error) {
	sampleSize := height * width * channels
	data := make([]float32, len(samples)*sampleSize)

	for n, s := range samples {
		if len(s) != sampleSize {
			return Tensor{}, fmt.Errorf("sample %d: expected %d bytes, got %d", n, sampleSize, len(s))
		}
		base := n * sampleSize
		if layout == LayoutNHWC || channels == 1 {
			for i, v := range s {
				data[base+i] = float32(v) * scale
			}
			continue
		}
		plane := height * width
		for p := 0; p < plane; p++ {
			for c := 0; c < channels; c++ {
				data[base+c*plane+p] = float32(s[p*channels+c]) * scale
			}
		}
	}

	shape := []int{len(samples), height, width, channels}
	if layout == LayoutNCHW {
		shape = []int{len(samples), channels, height, width}
	}
	return Tensor{Shape: shape, Data: data}, nil
}
