package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"emotion-worker/config"
	"emotion-worker/internal/domain/entity"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	prevOut, prevLevel := log.StandardLogger().Out, log.GetLevel()
	t.Cleanup(func() {
		log.SetOutput(prevOut)
		log.SetLevel(prevLevel)
	})

	return &config.Config{
		ModelDirs:     []string{t.TempDir()},
		ModelFiles:    entity.DefaultModelFiles(),
		ResizePercent: 75,
		JPEGQuality:   85,
		ScaleFactor:   1.4,
		MinNeighbors:  5,
		MinFaceSize:   30,
		TensorLayout:  "nhwc",
		LogFile:       filepath.Join(t.TempDir(), "worker.log"),
		LogLevel:      "info",
		MaxLineBytes:  1 << 20,
	}
}

func TestRun_ModelsMissing(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), testConfig(t), strings.NewReader("frame\n"), &out)
	require.Error(t, err)
	require.ErrorIs(t, err, entity.ErrModelsNotFound)
	require.Equal(t, `{"error":"Model files not found"}`+"\n", out.String())
}

func TestRun_InvalidConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.ResizePercent = 0

	var out bytes.Buffer
	err := run(context.Background(), cfg, strings.NewReader(""), &out)
	require.Error(t, err)
	require.Equal(t, 1, strings.Count(out.String(), "\n"))
	require.Contains(t, out.String(), `"error"`)
}

func TestRootCmd_FlagsOverrideEnv(t *testing.T) {
	cfg := testConfig(t)
	t.Setenv("MODEL_DIRS", "")

	var out bytes.Buffer
	cmd := newRootCmd(strings.NewReader(""), &out)
	cmd.SetArgs([]string{"--model-dir", cfg.ModelDirs[0], "--log-file", cfg.LogFile})
	err := cmd.ExecuteContext(context.Background())
	require.ErrorIs(t, err, entity.ErrModelsNotFound)
	require.Equal(t, `{"error":"Model files not found"}`+"\n", out.String())
}
