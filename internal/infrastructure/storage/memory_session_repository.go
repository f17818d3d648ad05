package storage

import (
	"context"
	"sync"
	"time"

	"emotion-worker/internal/domain/entity"
	"emotion-worker/internal/domain/port"
)

// MemorySessionRepository in-memory хранилище сессии воркера
type MemorySessionRepository struct {
	mu      sync.RWMutex
	id      string
	now     func() time.Time
	session *entity.Session
}

// NewMemorySessionRepository создаёт новое in-memory хранилище
func NewMemorySessionRepository(id string) *MemorySessionRepository {
	return &MemorySessionRepository{
		id:  id,
		now: time.Now,
	}
}

// Get возвращает копию сессии, создаёт новую если её ещё нет
func (r *MemorySessionRepository) Get(ctx context.Context) (*entity.Session, error) {
	r.mu.RLock()
	session := r.session
	r.mu.RUnlock()

	if session != nil {
		copied := *session
		return &copied, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.session == nil {
		r.session = entity.NewSession(r.id, r.now())
	}
	copied := *r.session
	return &copied, nil
}

// Save сохраняет состояние сессии
func (r *MemorySessionRepository) Save(ctx context.Context, session *entity.Session) error {
	copied := *session

	r.mu.Lock()
	r.session = &copied
	r.mu.Unlock()

	return nil
}

// Проверка реализации интерфейса
var _ port.SessionRepository = (*MemorySessionRepository)(nil)
