package vision

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"

	"emotion-worker/internal/domain/entity"
)

func TestScaledSize(t *testing.T) {
	w, h, ok := scaledSize(640, 481, 75)
	require.True(t, ok)
	require.Equal(t, 480, w)
	require.Equal(t, 360, h)

	_, _, ok = scaledSize(1, 1, 75)
	require.False(t, ok)

	_, _, ok = scaledSize(0, 100, 75)
	require.False(t, ok)

	w, h, ok = scaledSize(640, 480, 100)
	require.False(t, ok)
	require.Equal(t, 640, w)
	require.Equal(t, 480, h)
}

func TestCaptions(t *testing.T) {
	p := entity.Prediction{
		Emotion:    "Happy",
		Confidence: 0.9,
		Gender:     "Female",
		Age:        27,
		Position:   entity.FaceBox{X: 10, Y: 40, Width: 50, Height: 60},
	}
	c := captions(p)
	require.Len(t, c, 3)
	require.Equal(t, "Happy (0.9)", c[0].text)
	require.Equal(t, image.Pt(10, 30), c[0].at)
	require.Equal(t, "Gender: Female", c[1].text)
	require.Equal(t, image.Pt(10, 120), c[1].at)
	require.Equal(t, "Age: 27", c[2].text)
	require.Equal(t, image.Pt(10, 150), c[2].at)
}

func TestDefaultOptions(t *testing.T) {
	o := DefaultOptions()
	require.Equal(t, 75, o.ResizePercent)
	require.Equal(t, 85, o.JPEGQuality)
	require.Equal(t, 1.4, o.ScaleFactor)
	require.Equal(t, 5, o.MinNeighbors)
	require.Equal(t, 30, o.MinFaceSize)
}

func TestFormatConfidence(t *testing.T) {
	require.Equal(t, "1.0", formatConfidence(1))
	require.Equal(t, "0.0", formatConfidence(0))
	require.Equal(t, "0.87", formatConfidence(0.87))
	require.Equal(t, "0.5", formatConfidence(0.5))

	c := captions(entity.Prediction{Emotion: "Happy", Confidence: 1})
	require.Equal(t, "Happy (1.0)", c[0].text)
}
