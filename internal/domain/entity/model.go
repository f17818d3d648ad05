package entity

import "errors"

var (
	// EmotionLabels — классы модели эмоций в порядке её выходов.
	EmotionLabels = []string{"Angry", "Disgust", "Fear", "Happy", "Neutral", "Sad", "Surprise"}
	// GenderLabels — индекс 1 выбирается при выходе модели >= GenderThreshold.
	GenderLabels = []string{"Male", "Female"}
)

const GenderThreshold = 0.5

var (
	ErrModelsNotFound = errors.New("Model files not found")
	ErrNoFrameData    = errors.New("No frame data received")
	ErrDecodeImage    = errors.New("Failed to decode image")
)

// ModelFiles — имена четырёх обязательных файлов моделей.
type ModelFiles struct {
	Cascade string
	Emotion string
	Gender  string
	Age     string
}

// DefaultModelFiles возвращает стандартные имена артефактов.
func DefaultModelFiles() ModelFiles {
	return ModelFiles{
		Cascade: "haarcascade_frontalface_default.xml",
		Emotion: "emotion_detection_model_50epochs.onnx",
		Gender:  "gender_model_3epochs.onnx",
		Age:     "age_model_3epochs.onnx",
	}
}

// ModelPaths — найденные полные пути к артефактам.
type ModelPaths struct {
	Dir     string
	Cascade string
	Emotion string
	Gender  string
	Age     string
}
