package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ijustbsd/pogruzhatel/internal/harmonic"
	"github.com/ijustbsd/pogruzhatel/internal/logging"
	"github.com/ijustbsd/pogruzhatel/internal/miniapp"
)

const (
	DefaultApp          = "impulse"
	DefaultZoom         = 1.0
	MinZoom             = 0.5
	MaxZoom             = 3.0
	ZoomStep            = 0.1
	DefaultHistoryLen   = 120
	DefaultHistoryAge   = 1.0
	DefaultDataDir      = ".pogruzhatel"
	DefaultLogLevel     = "info"
	DefaultOmega        = 1.0
	DefaultSettingsOpen = true
)

var ErrInvalidConfig = errors.New("config: invalid value")

// Config is the serializable view state of the front-end.
type Config struct {
	App          string        `yaml:"app"`
	Harmonics    int           `yaml:"harmonics"`
	GridSize     int           `yaml:"grid_size"`
	Omega        float64       `yaml:"omega"`
	ZoomFactor   float64       `yaml:"zoom_factor"`
	SettingsOpen bool          `yaml:"settings_open"`
	ForceRepaint bool          `yaml:"force_repaint"`
	FrameHistory HistoryConfig `yaml:"frame_history"`
	DataDir      string        `yaml:"data_dir"`
	LogLevel     string        `yaml:"log_level"`
}

type HistoryConfig struct {
	MaxLen int     `yaml:"max_len"`
	MaxAge float64 `yaml:"max_age"`
}

func DefaultConfig() *Config {
	return &Config{
		App:          DefaultApp,
		Harmonics:    harmonic.MaxHarmonics,
		GridSize:     harmonic.DefaultGridSize,
		Omega:        DefaultOmega,
		ZoomFactor:   DefaultZoom,
		SettingsOpen: DefaultSettingsOpen,
		FrameHistory: HistoryConfig{
			MaxLen: DefaultHistoryLen,
			MaxAge: DefaultHistoryAge,
		},
		DataDir:  DefaultDataDir,
		LogLevel: DefaultLogLevel,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if _, err := miniapp.ParseKind(c.App); err != nil {
		return fmt.Errorf("%w: app %q", ErrInvalidConfig, c.App)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	switch {
	case c.Harmonics < harmonic.MinHarmonics || c.Harmonics > harmonic.MaxHarmonics:
		return fmt.Errorf("%w: harmonics %d not in [%d, %d]", ErrInvalidConfig, c.Harmonics, harmonic.MinHarmonics, harmonic.MaxHarmonics)
	case c.GridSize < 2:
		return fmt.Errorf("%w: grid_size %d below 2", ErrInvalidConfig, c.GridSize)
	case c.Omega <= 0:
		return fmt.Errorf("%w: omega must be positive", ErrInvalidConfig)
	case c.ZoomFactor < MinZoom || c.ZoomFactor > MaxZoom:
		return fmt.Errorf("%w: zoom_factor %.2f not in [%.1f, %.1f]", ErrInvalidConfig, c.ZoomFactor, MinZoom, MaxZoom)
	case c.FrameHistory.MaxLen < 1:
		return fmt.Errorf("%w: frame_history.max_len must be positive", ErrInvalidConfig)
	case c.FrameHistory.MaxAge <= 0:
		return fmt.Errorf("%w: frame_history.max_age must be positive", ErrInvalidConfig)
	}
	return nil
}

// ClampZoom limits z to [MinZoom, MaxZoom] and rounds it to one decimal.
func ClampZoom(z float64) float64 {
	if z < MinZoom {
		z = MinZoom
	}
	if z > MaxZoom {
		z = MaxZoom
	}
	return math.Round(z*10) / 10
}
