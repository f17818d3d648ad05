package entity

// Prediction — атрибуты одного найденного лица.
type Prediction struct {
	Emotion    string  `json:"emotion"`
	Confidence float64 `json:"confidence"`
	Gender     string  `json:"gender"`
	Age        int     `json:"age"`
	Position   FaceBox `json:"position"`
}

// FrameInfo описывает обработанный кадр.
type FrameInfo struct {
	Width         int `json:"width"`
	Height        int `json:"height"`
	FacesDetected int `json:"faces_detected"`
}

// FrameResult хранит итог обработки одного кадра.
type FrameResult struct {
	Predictions    []Prediction `json:"predictions"`
	ProcessedFrame string       `json:"processed_frame"`
	FrameInfo      FrameInfo    `json:"frame_info"`
}

// NewFrameResult собирает результат; FacesDetected всегда равен числу предсказаний.
func NewFrameResult(predictions []Prediction, processed string, width, height int) *FrameResult {
	if predictions == nil {
		predictions = []Prediction{}
	}
	return &FrameResult{
		Predictions:    predictions,
		ProcessedFrame: processed,
		FrameInfo: FrameInfo{
			Width:         width,
			Height:        height,
			FacesDetected: len(predictions),
		},
	}
}

// WithoutFrame возвращает копию результата без закодированного кадра (для логов).
func (r FrameResult) WithoutFrame() FrameResult {
	r.ProcessedFrame = ""
	return r
}

// ErrorResult — ответ на кадр, который не удалось обработать.
type ErrorResult struct {
	Error string `json:"error"`
}
