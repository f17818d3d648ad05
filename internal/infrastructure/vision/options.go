package vision

import (
	"fmt"
	"image"
	"strconv"
	"strings"

	"emotion-worker/internal/domain/entity"
)

// Options — параметры обработки кадра.
type Options struct {
	ResizePercent int     // масштаб кадра после декодирования, %
	JPEGQuality   int     // качество сжатия размеченного кадра
	ScaleFactor   float64 // шаг пирамиды каскада
	MinNeighbors  int
	MinFaceSize   int // минимальная сторона лица в пикселях
}

// DefaultOptions возвращает параметры по умолчанию.
func DefaultOptions() Options {
	return Options{
		ResizePercent: 75,
		JPEGQuality:   85,
		ScaleFactor:   1.4,
		MinNeighbors:  5,
		MinFaceSize:   30,
	}
}

// scaledSize считает размер кадра после масштабирования (с округлением вниз).
// ok == false означает, что масштабировать не нужно или нельзя.
func scaledSize(width, height, percent int) (w, h int, ok bool) {
	if width <= 0 || height <= 0 || percent <= 0 || percent == 100 {
		return width, height, false
	}
	w = width * percent / 100
	h = height * percent / 100
	if w <= 0 || h <= 0 {
		return width, height, false
	}
	return w, h, true
}

type caption struct {
	text string
	at   image.Point
}

// captions возвращает подписи к лицу: эмоция над рамкой, пол и возраст под ней.
func captions(p entity.Prediction) []caption {
	box := p.Position
	return []caption{
		{
			text: fmt.Sprintf("%s (%s)", p.Emotion, formatConfidence(p.Confidence)),
			at:   image.Pt(box.X, box.Y-10),
		},
		{text: "Gender: " + p.Gender, at: image.Pt(box.X, box.Y+box.Height+20)},
		{text: "Age: " + strconv.Itoa(p.Age), at: image.Pt(box.X, box.Y+box.Height+50)},
	}
}

// formatConfidence печатает уверенность с хотя бы одним знаком после точки: 1 -> "1.0".
func formatConfidence(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}
