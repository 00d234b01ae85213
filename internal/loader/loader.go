package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mireval/rampart/internal/models"
)

// LoadTuning reads the YAML tuning file at path and merges it over the
// defaults. An empty path or a missing file yields the defaults unchanged.
func LoadTuning(path string) (models.Tuning, error) {
	tuning := models.DefaultTuning()
	if path == "" {
		return tuning, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return tuning, nil
		}
		return tuning, fmt.Errorf("failed to read tuning file: %w", err)
	}

	if err := yaml.Unmarshal(data, &tuning); err != nil {
		return tuning, fmt.Errorf("failed to parse tuning file %s: %w", path, err)
	}
	if err := tuning.Validate(); err != nil {
		return tuning, fmt.Errorf("invalid tuning in %s: %w", path, err)
	}
	return tuning, nil
}
