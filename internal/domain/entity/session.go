package entity

import "time"

// SessionState состояние воркера
type SessionState string

const (
	StateInitializing SessionState = "initializing" // Поиск и загрузка моделей
	StateServing      SessionState = "serving"      // Обработка кадров
	StateStopped      SessionState = "stopped"      // Штатное завершение
	StateFatal        SessionState = "fatal"        // Аварийное завершение
)

// Session представляет жизненный цикл процесса-воркера
type Session struct {
	ID        string
	State     SessionState
	StartedAt time.Time
	Frames    int // обработано кадров (включая ошибочные)
	Failures  int // кадров с ошибкой
	Faces     int // всего найдено лиц
}

// NewSession создаёт сессию в начальном состоянии
func NewSession(id string, now time.Time) *Session {
	return &Session{
		ID:        id,
		State:     StateInitializing,
		StartedAt: now,
	}
}

// SetState обновляет состояние сессии
func (s *Session) SetState(state SessionState) {
	s.State = state
}

// RecordFrame учитывает один обработанный кадр.
func (s *Session) RecordFrame(faces int, failed bool) {
	s.Frames++
	if failed {
		s.Failures++
		return
	}
	s.Faces += faces
}
