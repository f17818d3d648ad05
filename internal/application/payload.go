package app

import (
	"encoding/base64"
	"fmt"
	"strings"

	"emotion-worker/internal/domain/entity"
)

// DecodePayload снимает необязательный префикс data-URI и декодирует base64.
func DecodePayload(line string) ([]byte, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, entity.ErrNoFrameData
	}
	if i := strings.IndexByte(line, ','); i >= 0 {
		line = line[i+1:]
	}

	data, err := base64.StdEncoding.DecodeString(line)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrDecodeImage, err)
	}
	if len(data) == 0 {
		return nil, entity.ErrNoFrameData
	}
	return data, nil
}

// EncodePayload кодирует сжатый кадр в ASCII-строку.
func EncodePayload(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}
