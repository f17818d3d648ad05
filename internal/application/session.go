package app

import (
	"context"

	"emotion-worker/internal/domain/entity"
	"emotion-worker/internal/domain/port"
)

type SessionService struct {
	repo port.SessionRepository
}

func NewSessionService(repo port.SessionRepository) *SessionService {
	return &SessionService{repo: repo}
}

func (s *SessionService) Get(ctx context.Context) (*entity.Session, error) {
	return s.repo.Get(ctx)
}

func (s *SessionService) SetState(ctx context.Context, state entity.SessionState) (*entity.Session, error) {
	session, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}

	session.SetState(state)
	if err := s.repo.Save(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

func (s *SessionService) Serve(ctx context.Context) (*entity.Session, error) {
	return s.SetState(ctx, entity.StateServing)
}

func (s *SessionService) Stop(ctx context.Context) (*entity.Session, error) {
	return s.SetState(ctx, entity.StateStopped)
}

func (s *SessionService) Fail(ctx context.Context) (*entity.Session, error) {
	return s.SetState(ctx, entity.StateFatal)
}

// RecordFrame учитывает результат обработки одного кадра.
func (s *SessionService) RecordFrame(ctx context.Context, faces int, failed bool) (*entity.Session, error) {
	session, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}

	session.RecordFrame(faces, failed)
	if err := s.repo.Save(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}
