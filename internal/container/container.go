package container

import (
	app "emotion-worker/internal/application"
	"emotion-worker/internal/domain/entity"
	"emotion-worker/internal/domain/port"
)

// Pipeline — адаптеры, из которых собирается обработка кадра.
type Pipeline struct {
	Codec     port.FrameCodec
	Localizer port.FaceLocalizer
	Sampler   port.FaceSampler
	Annotator port.Annotator
	Emotion   port.Model
	Gender    port.Model
	Age       port.Model
	Layout    entity.Layout
}

type Container struct {
	SessionService *app.SessionService
	FrameService   *app.FrameService
}

func New(sessionRepo port.SessionRepository, p Pipeline) *Container {
	sessionService := app.NewSessionService(sessionRepo)
	classifier := app.NewAttributeClassifier(p.Emotion, p.Gender, p.Age, p.Layout)
	frameService := app.NewFrameService(p.Codec, p.Localizer, p.Sampler, classifier, p.Annotator)

	return &Container{
		SessionService: sessionService,
		FrameService:   frameService,
	}
}
