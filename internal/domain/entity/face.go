package entity

import "image"

// FaceBox представляет область с обнаруженным лицом
type FaceBox struct {
	X      int `json:"x"`      // координата X левого верхнего угла
	Y      int `json:"y"`      // координата Y левого верхнего угла
	Width  int `json:"width"`  // ширина области в пикселях
	Height int `json:"height"` // высота области в пикселях
}

// NewFaceBox строит FaceBox из прямоугольника детектора.
func NewFaceBox(r image.Rectangle) FaceBox {
	return FaceBox{X: r.Min.X, Y: r.Min.Y, Width: r.Dx(), Height: r.Dy()}
}

// Rect возвращает область лица как image.Rectangle.
func (b FaceBox) Rect() image.Rectangle {
	return image.Rect(b.X, b.Y, b.X+b.Width, b.Y+b.Height)
}

// Area возвращает площадь области в пикселях
func (b FaceBox) Area() int {
	return b.Width * b.Height
}

// Empty сообщает, что у области нулевая площадь.
func (b FaceBox) Empty() bool {
	return b.Width <= 0 || b.Height <= 0
}

// ClipTo обрезает область по границам кадра width x height.
func (b FaceBox) ClipTo(width, height int) FaceBox {
	r := b.Rect().Intersect(image.Rect(0, 0, width, height))
	if r.Empty() {
		return FaceBox{}
	}
	return NewFaceBox(r)
}

// FaceCrop хранит подготовленные вырезки одного лица.
type FaceCrop struct {
	Gray  []byte // EmotionInputSize x EmotionInputSize, один канал
	Color []byte // AttributeInputSize x AttributeInputSize x 3, порядок BGR
}

const (
	EmotionInputSize   = 48  // сторона входа модели эмоций
	AttributeInputSize = 200 // сторона входа моделей пола и возраста
	ColorChannels      = 3
)
