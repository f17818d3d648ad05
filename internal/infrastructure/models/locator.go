package models

import (
	"fmt"
	"os"
	"path/filepath"

	"emotion-worker/internal/domain/entity"
)

// DefaultSearchDirs возвращает стандартный список каталогов поиска:
// сам baseDir, его родитель и дед, а также соседний проект sibling рядом с корнем.
func DefaultSearchDirs(baseDir, sibling string) []string {
	baseDir = filepath.Clean(baseDir)
	dirs := []string{
		baseDir,
		filepath.Join(baseDir, ".."),
		filepath.Join(baseDir, "..", ".."),
	}
	if sibling != "" {
		root := filepath.Dir(filepath.Dir(filepath.Dir(baseDir)))
		dirs = append(dirs, filepath.Join(root, sibling))
	}
	return dirs
}

// Locate ищет каталог, в котором лежат все четыре артефакта.
// Побеждает первый каталог из dirs с полным набором.
func Locate(dirs []string, files entity.ModelFiles) (*entity.ModelPaths, error) {
	seen := make(map[string]struct{}, len(dirs))
	for _, dir := range dirs {
		dir = filepath.Clean(dir)
		if _, ok := seen[dir]; ok {
			continue
		}
		seen[dir] = struct{}{}

		paths := entity.ModelPaths{
			Dir:     dir,
			Cascade: filepath.Join(dir, files.Cascade),
			Emotion: filepath.Join(dir, files.Emotion),
			Gender:  filepath.Join(dir, files.Gender),
			Age:     filepath.Join(dir, files.Age),
		}
		if fileExists(paths.Cascade) && fileExists(paths.Emotion) &&
			fileExists(paths.Gender) && fileExists(paths.Age) {
			return &paths, nil
		}
	}
	return nil, fmt.Errorf("%w (searched %d directories)", entity.ErrModelsNotFound, len(seen))
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
