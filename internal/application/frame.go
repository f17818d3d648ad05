package app

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"

	log "github.com/sirupsen/logrus"

	"emotion-worker/internal/domain/entity"
	"emotion-worker/internal/domain/port"
)

// FrameService прогоняет один кадр через весь конвейер:
// декодирование, поиск лиц, классификация, разметка, кодирование.
type FrameService struct {
	codec      port.FrameCodec
	localizer  port.FaceLocalizer
	sampler    port.FaceSampler
	classifier *AttributeClassifier
	annotator  port.Annotator
}

// NewFrameService создаёт сервис обработки кадров.
func NewFrameService(codec port.FrameCodec, localizer port.FaceLocalizer, sampler port.FaceSampler, classifier *AttributeClassifier, annotator port.Annotator) *FrameService {
	return &FrameService{
		codec:      codec,
		localizer:  localizer,
		sampler:    sampler,
		classifier: classifier,
		annotator:  annotator,
	}
}

// Process обрабатывает одну строку запроса. Паника в нативном слое превращается в ошибку кадра.
func (s *FrameService) Process(ctx context.Context, line string) (result *entity.FrameResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("frame: %v (panic)\nstack: %s", r, debug.Stack())
			result, err = nil, fmt.Errorf("%v", r)
		}
	}()

	if s.codec == nil || s.localizer == nil || s.sampler == nil || s.classifier == nil {
		return nil, errors.New("frame pipeline is not configured")
	}

	data, err := DecodePayload(line)
	if err != nil {
		return nil, err
	}

	frame, err := s.codec.Decode(data)
	if err != nil {
		return nil, err
	}
	defer frame.Close()

	boxes, err := s.localizer.Locate(ctx, frame)
	if err != nil {
		return nil, fmt.Errorf("detect faces: %w", err)
	}

	predictions := []entity.Prediction{}
	if len(boxes) > 0 {
		crops, err := s.sampler.Crops(frame, boxes)
		if err != nil {
			return nil, fmt.Errorf("crop faces: %w", err)
		}
		predictions, err = s.classifier.Classify(ctx, boxes, crops)
		if err != nil {
			return nil, err
		}
		if s.annotator != nil {
			if err := s.annotator.Annotate(frame, predictions); err != nil {
				return nil, fmt.Errorf("annotate frame: %w", err)
			}
		}
	}

	encoded, err := s.codec.Encode(frame)
	if err != nil {
		return nil, fmt.Errorf("encode frame: %w", err)
	}

	return entity.NewFrameResult(predictions, EncodePayload(encoded), frame.Width(), frame.Height()), nil
}
