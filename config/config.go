package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"emotion-worker/internal/domain/entity"
	"emotion-worker/internal/infrastructure/models"
)

type Config struct {
	ModelDirs     []string // явный список каталогов поиска моделей
	ModelSibling  string   // соседний проект с моделями
	ModelFiles    entity.ModelFiles
	ResizePercent int
	JPEGQuality   int
	ScaleFactor   float64
	MinNeighbors  int
	MinFaceSize   int
	TensorLayout  string
	LogFile       string
	LogLevel      string
	MaxLineBytes  int
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	defaults := entity.DefaultModelFiles()
	cfg := &Config{
		ModelDirs:    splitList(os.Getenv("MODEL_DIRS")),
		ModelSibling: getEnv("MODEL_SIBLING_DIR", "Live_Face_Detection"),
		ModelFiles: entity.ModelFiles{
			Cascade: getEnv("CASCADE_FILE", defaults.Cascade),
			Emotion: getEnv("EMOTION_MODEL_FILE", defaults.Emotion),
			Gender:  getEnv("GENDER_MODEL_FILE", defaults.Gender),
			Age:     getEnv("AGE_MODEL_FILE", defaults.Age),
		},
		ResizePercent: getEnvAsInt("FRAME_RESIZE_PERCENT", 75),
		JPEGQuality:   getEnvAsInt("JPEG_QUALITY", 85),
		ScaleFactor:   getEnvAsFloat("FACE_SCALE_FACTOR", 1.4),
		MinNeighbors:  getEnvAsInt("FACE_MIN_NEIGHBORS", 5),
		MinFaceSize:   getEnvAsInt("MIN_FACE_SIZE", 30),
		TensorLayout:  getEnv("TENSOR_LAYOUT", string(entity.LayoutNHWC)),
		LogFile:       getEnv("LOG_FILE", "emotion_detection.log"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		MaxLineBytes:  getEnvAsInt("MAX_LINE_BYTES", 32<<20),
	}

	return cfg, nil
}

// Validate проверяет диапазоны значений.
func (c *Config) Validate() error {
	if c.ResizePercent <= 0 || c.ResizePercent > 100 {
		return fmt.Errorf("resize percent must be in (0, 100], got %d", c.ResizePercent)
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		return fmt.Errorf("jpeg quality must be in [1, 100], got %d", c.JPEGQuality)
	}
	if c.ScaleFactor <= 1 {
		return fmt.Errorf("face scale factor must be greater than 1, got %g", c.ScaleFactor)
	}
	if c.MinNeighbors < 0 || c.MinFaceSize < 0 {
		return fmt.Errorf("face detection parameters must not be negative")
	}
	if c.MaxLineBytes <= 0 {
		return fmt.Errorf("max line bytes must be positive, got %d", c.MaxLineBytes)
	}
	if _, err := entity.ParseLayout(c.TensorLayout); err != nil {
		return err
	}
	return nil
}

// SearchDirs возвращает каталоги поиска моделей: явные или стандартные относительно baseDir.
func (c *Config) SearchDirs(baseDir string) []string {
	if len(c.ModelDirs) > 0 {
		return c.ModelDirs
	}
	return models.DefaultSearchDirs(baseDir, c.ModelSibling)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func splitList(value string) []string {
	var out []string
	for _, part := range filepath.SplitList(value) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
