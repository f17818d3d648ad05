package port

import (
	"context"

	"emotion-worker/internal/domain/entity"
)

// Frame — декодированный кадр, принадлежащий одной обработке.
type Frame interface {
	Width() int
	Height() int
	// Close освобождает буферы кадра
	Close() error
}

// FrameCodec интерфейс кодека кадров
type FrameCodec interface {
	// Decode распаковывает сжатое изображение и масштабирует его
	Decode(data []byte) (Frame, error)

	// Encode сжимает кадр обратно
	Encode(frame Frame) ([]byte, error)
}

// FaceLocalizer интерфейс детектора лиц
type FaceLocalizer interface {
	// Locate возвращает области лиц в порядке обнаружения
	Locate(ctx context.Context, frame Frame) ([]entity.FaceBox, error)
}

// FaceSampler вырезает входы моделей для каждого лица
type FaceSampler interface {
	// Crops возвращает вырезки в том же порядке, что и boxes
	Crops(frame Frame, boxes []entity.FaceBox) ([]entity.FaceCrop, error)
}

// Annotator рисует результаты на кадре
type Annotator interface {
	Annotate(frame Frame, predictions []entity.Prediction) error
}
