//go:build gocv
// +build gocv

package vision

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"gocv.io/x/gocv"

	"emotion-worker/internal/domain/entity"
)

// Registry держит каскад и три модели, загруженные один раз на старте.
// После LoadRegistry не изменяется.
type Registry struct {
	Cascade gocv.CascadeClassifier
	Emotion *Model
	Gender  *Model
	Age     *Model
}

// LoadRegistry загружает все четыре артефакта; любая ошибка фатальна.
func LoadRegistry(paths entity.ModelPaths) (*Registry, error) {
	r := &Registry{Cascade: gocv.NewCascadeClassifier()}
	if !r.Cascade.Load(paths.Cascade) {
		r.Cascade.Close()
		return nil, fmt.Errorf("load cascade %s", paths.Cascade)
	}
	log.Infof("models: loaded cascade %s", paths.Cascade)

	var err error
	if r.Emotion, err = loadModel("emotion", paths.Emotion); err != nil {
		r.Close()
		return nil, err
	}
	if r.Gender, err = loadModel("gender", paths.Gender); err != nil {
		r.Close()
		return nil, err
	}
	if r.Age, err = loadModel("age", paths.Age); err != nil {
		r.Close()
		return nil, err
	}
	return r, nil
}

func loadModel(name, path string) (*Model, error) {
	net := gocv.ReadNet(path, "")
	if net.Empty() {
		net.Close()
		return nil, fmt.Errorf("load %s model %s", name, path)
	}
	errBackend := net.SetPreferableBackend(gocv.NetBackendDefault)
	errTarget := net.SetPreferableTarget(gocv.NetTargetCPU)
	if errBackend != nil || errTarget != nil {
		net.Close()
		return nil, fmt.Errorf("%s model: failed to set preferable backend or target", name)
	}

	log.Infof("models: loaded %s model %s", name, path)
	return &Model{name: name, net: net}, nil
}

// Close освобождает нативные ресурсы.
func (r *Registry) Close() error {
	for _, m := range []*Model{r.Emotion, r.Gender, r.Age} {
		if m != nil {
			m.net.Close()
		}
	}
	return r.Cascade.Close()
}
