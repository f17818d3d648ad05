package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"MODEL_DIRS", "FRAME_RESIZE_PERCENT", "JPEG_QUALITY", "FACE_SCALE_FACTOR", "TENSOR_LAYOUT", "LOG_FILE"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	require.Empty(t, cfg.ModelDirs)
	require.Equal(t, 75, cfg.ResizePercent)
	require.Equal(t, 85, cfg.JPEGQuality)
	require.Equal(t, 1.4, cfg.ScaleFactor)
	require.Equal(t, 5, cfg.MinNeighbors)
	require.Equal(t, 30, cfg.MinFaceSize)
	require.Equal(t, "nhwc", cfg.TensorLayout)
	require.Equal(t, "emotion_detection.log", cfg.LogFile)
}

func TestLoad_FromEnv(t *testing.T) {
	dirs := filepath.Join("a", "models") + string(filepath.ListSeparator) + " " + string(filepath.ListSeparator) + filepath.Join("b")
	t.Setenv("MODEL_DIRS", dirs)
	t.Setenv("FRAME_RESIZE_PERCENT", "50")
	t.Setenv("FACE_SCALE_FACTOR", "1.2")
	t.Setenv("JPEG_QUALITY", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join("a", "models"), "b"}, cfg.ModelDirs)
	require.Equal(t, cfg.ModelDirs, cfg.SearchDirs("/ignored"))
	require.Equal(t, 50, cfg.ResizePercent)
	require.Equal(t, 1.2, cfg.ScaleFactor)
	require.Equal(t, 85, cfg.JPEGQuality)
}

func TestValidate(t *testing.T) {
	t.Setenv("MODEL_DIRS", "")
	cfg, err := Load()
	require.NoError(t, err)

	bad := *cfg
	bad.ResizePercent = 0
	require.Error(t, bad.Validate())

	bad = *cfg
	bad.JPEGQuality = 101
	require.Error(t, bad.Validate())

	bad = *cfg
	bad.ScaleFactor = 1
	require.Error(t, bad.Validate())

	bad = *cfg
	bad.TensorLayout = "hwc"
	require.Error(t, bad.Validate())
}

func TestSearchDirs_Default(t *testing.T) {
	cfg := &Config{ModelSibling: "Live_Face_Detection"}
	dirs := cfg.SearchDirs(filepath.Join(string(filepath.Separator), "srv", "app", "bin"))
	require.Len(t, dirs, 4)
	require.Equal(t, filepath.Join(string(filepath.Separator), "Live_Face_Detection"), dirs[3])
}
