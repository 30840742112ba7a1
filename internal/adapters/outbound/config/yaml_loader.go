package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/DevakumarJayaraman/gradle-plugins-suite/internal/domain"
)

const fileName = ".gradleguard.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .gradleguard.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .gradleguard.yaml from projectPath. Returns DefaultConfig if
// the file does not exist, so unconfigured projects audit with defaults.
func (l *YAMLLoader) Load(projectPath string) (domain.GuardConfig, error) {
	data, err := os.ReadFile(filepath.Join(projectPath, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.GuardConfig{}, err
	}

	cfg := domain.DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.GuardConfig{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}
	if cfg.LookaheadWindow == 0 {
		cfg.LookaheadWindow = domain.DefaultLookaheadWindow
	}
	if err := cfg.Validate(); err != nil {
		return domain.GuardConfig{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}
	return cfg, nil
}
