package port

import (
	"context"

	"emotion-worker/internal/domain/entity"
)

// Model интерфейс предсказательной модели
type Model interface {
	// Predict выполняет один прямой проход по всему батчу и возвращает по строке выходов на образец
	Predict(ctx context.Context, batch entity.Tensor) ([][]float32, error)
}
