package port

import (
	"context"

	"emotion-worker/internal/domain/entity"
)

// SessionRepository интерфейс хранилища сессии воркера
type SessionRepository interface {
	// Get возвращает текущую сессию, создаёт новую если её нет
	Get(ctx context.Context) (*entity.Session, error)

	// Save сохраняет сессию
	Save(ctx context.Context, session *entity.Session) error
}
