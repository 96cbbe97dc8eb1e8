package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"modelbridge/internal/common/fsutil"
	"modelbridge/pkg/types"
)

// modelExtensions lists the artifact suffixes the scanner recognizes.
var modelExtensions = []string{".pte", ".gguf"}

// LoadDir scans a directory for model artifacts and builds a registry from
// filenames. ID is the full filename (including extension); Path is the
// absolute file path.
func LoadDir(dir string) ([]types.Model, error) {
	base, err := fsutil.ExpandHome(dir)
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(base)
	if err != nil {
		return nil, fmt.Errorf("abs path: %w", err)
	}
	entries, err := os.ReadDir(abs)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}
	var models []types.Model
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !isModelFile(name) {
			continue
		}
		p := filepath.Join(abs, name)
		models = append(models, types.Model{ID: name, Name: name, Path: p})
	}
	return models, nil
}

func isModelFile(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range modelExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
