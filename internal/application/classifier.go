package app

import (
	"context"
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"emotion-worker/internal/domain/entity"
	"emotion-worker/internal/domain/port"
)

// AttributeClassifier определяет эмоцию, пол и возраст сразу для всех лиц кадра.
// На кадр приходится ровно по одному вызову каждой модели, независимо от числа лиц.
type AttributeClassifier struct {
	emotion port.Model
	gender  port.Model
	age     port.Model
	layout  entity.Layout
}

// NewAttributeClassifier создаёт классификатор поверх трёх загруженных моделей.
func NewAttributeClassifier(emotion, gender, age port.Model, layout entity.Layout) *AttributeClassifier {
	return &AttributeClassifier{
		emotion: emotion,
		gender:  gender,
		age:     age,
		layout:  layout,
	}
}

// Classify возвращает предсказания в порядке boxes; crops[i] должен соответствовать boxes[i].
func (c *AttributeClassifier) Classify(ctx context.Context, boxes []entity.FaceBox, crops []entity.FaceCrop) ([]entity.Prediction, error) {
	if len(boxes) != len(crops) {
		return nil, fmt.Errorf("got %d crops for %d faces", len(crops), len(boxes))
	}
	if len(boxes) == 0 {
		return []entity.Prediction{}, nil
	}
	if c.emotion == nil || c.gender == nil || c.age == nil {
		return nil, errors.New("attribute models are not configured")
	}

	grays := make([][]byte, len(crops))
	colors := make([][]byte, len(crops))
	for i, crop := range crops {
		grays[i] = crop.Gray
		colors[i] = crop.Color
	}

	emotionBatch, err := entity.NewTensor(grays, entity.EmotionInputSize, entity.EmotionInputSize, 1, 1.0/255, c.layout)
	if err != nil {
		return nil, fmt.Errorf("emotion batch: %w", err)
	}
	// Пол и возраст используют один и тот же батч без нормализации.
	attributeBatch, err := entity.NewTensor(colors, entity.AttributeInputSize, entity.AttributeInputSize, entity.ColorChannels, 1, c.layout)
	if err != nil {
		return nil, fmt.Errorf("attribute batch: %w", err)
	}

	emotions, err := predict(ctx, "emotion", c.emotion, emotionBatch)
	if err != nil {
		return nil, err
	}
	genders, err := predict(ctx, "gender", c.gender, attributeBatch)
	if err != nil {
		return nil, err
	}
	ages, err := predict(ctx, "age", c.age, attributeBatch)
	if err != nil {
		return nil, err
	}

	predictions := make([]entity.Prediction, len(boxes))
	for i, box := range boxes {
		label, confidence, err := decodeEmotion(emotions[i])
		if err != nil {
			return nil, fmt.Errorf("face %d: %w", i, err)
		}
		if len(genders[i]) == 0 || len(ages[i]) == 0 {
			return nil, fmt.Errorf("face %d: empty gender or age output", i)
		}
		predictions[i] = entity.Prediction{
			Emotion:    label,
			Confidence: confidence,
			Gender:     decodeGender(genders[i][0]),
			Age:        decodeAge(ages[i][0]),
			Position:   box,
		}
	}
	return predictions, nil
}

func predict(ctx context.Context, name string, model port.Model, batch entity.Tensor) ([][]float32, error) {
	out, err := model.Predict(ctx, batch)
	if err != nil {
		return nil, fmt.Errorf("%s model: %w", name, err)
	}
	if len(out) != batch.Batch() {
		return nil, fmt.Errorf("%s model: expected %d output rows, got %d", name, batch.Batch(), len(out))
	}
	return out, nil
}

// decodeEmotion выбирает класс с максимальным выходом и округляет уверенность до сотых.
func decodeEmotion(row []float32) (string, float64, error) {
	if len(row) != len(entity.EmotionLabels) {
		return "", 0, fmt.Errorf("expected %d emotion scores, got %d", len(entity.EmotionLabels), len(row))
	}
	scores := make([]float64, len(row))
	for i, v := range row {
		scores[i] = float64(v)
	}
	idx := floats.MaxIdx(scores)
	confidence := math.Round(scores[idx]*100) / 100
	confidence = math.Max(0, math.Min(1, confidence))
	return entity.EmotionLabels[idx], confidence, nil
}

func decodeGender(score float32) string {
	if score >= entity.GenderThreshold {
		return entity.GenderLabels[1]
	}
	return entity.GenderLabels[0]
}

func decodeAge(value float32) int {
	age := math.Round(float64(value))
	if age < 0 || math.IsNaN(age) || math.IsInf(age, 0) {
		return 0
	}
	return int(age)
}
