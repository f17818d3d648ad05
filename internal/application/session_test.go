package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"emotion-worker/internal/domain/entity"
	"emotion-worker/internal/infrastructure/storage"
)

func TestSessionService_Lifecycle(t *testing.T) {
	repo := storage.NewMemorySessionRepository("worker")
	svc := NewSessionService(repo)
	ctx := context.Background()

	session, err := svc.Serve(ctx)
	require.NoError(t, err)
	require.Equal(t, entity.StateServing, session.State)

	session, err = svc.Stop(ctx)
	require.NoError(t, err)
	require.Equal(t, entity.StateStopped, session.State)

	session, err = svc.Fail(ctx)
	require.NoError(t, err)
	require.Equal(t, entity.StateFatal, session.State)
}

func TestSessionService_RecordFrame(t *testing.T) {
	repo := storage.NewMemorySessionRepository("worker")
	svc := NewSessionService(repo)
	ctx := context.Background()

	_, err := svc.RecordFrame(ctx, 2, false)
	require.NoError(t, err)
	session, err := svc.RecordFrame(ctx, 0, true)
	require.NoError(t, err)

	require.Equal(t, 2, session.Frames)
	require.Equal(t, 1, session.Failures)
	require.Equal(t, 2, session.Faces)
}
