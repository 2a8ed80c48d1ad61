package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// ErrInvalid marks a config value that failed validation.
var ErrInvalid = errors.New("invalid config")

// Config is the only persisted config file schema.
type Config struct {
	Listen         string    `toml:"listen"`
	Prompt         string    `toml:"prompt"`
	Cwd            string    `toml:"cwd"`
	CVPath         string    `toml:"cv_path"`
	CVName         string    `toml:"cv_name"`
	DownloadDir    string    `toml:"download_dir"`
	AllowedOrigins []string  `toml:"allowed_origins"`
	MatrixDuration string    `toml:"matrix_duration"`
	FrameInterval  string    `toml:"frame_interval"`
	Log            LogConfig `toml:"log"`
	Source         string    `toml:"-"`
}

// LogConfig controls the rotating log file.
type LogConfig struct {
	Path       string `toml:"path"`
	Level      string `toml:"level"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days"`
}

func Default() Config {
	return Config{
		Listen:         "127.0.0.1:8080",
		Prompt:         "$ ",
		Cwd:            "/home/rafata/portfolio",
		CVName:         "Rafata_Alfatih_CV.pdf",
		DownloadDir:    ".",
		MatrixDuration: "10s",
		FrameInterval:  "16ms",
		Log: LogConfig{
			Path:  "logs/termfolio.log",
			Level: "info",
		},
	}
}

func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".termfolio", "config.toml")
}

func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath()
	}
	if path == "" {
		return cfg, errors.New("config path is empty and $HOME is not set")
	}
	cfg.Source = path

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			applyEnv(&cfg)
			return cfg, nil
		}
		return cfg, err
	}

	if err := toml.Unmarshal(content, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if env := strings.TrimSpace(os.Getenv("TERMFOLIO_LISTEN")); env != "" {
		cfg.Listen = env
	}
	if env := strings.TrimSpace(os.Getenv("TERMFOLIO_LOG_LEVEL")); env != "" {
		cfg.Log.Level = env
	}
}

// Validate checks values that cannot be enforced by the TOML schema.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Listen) == "" {
		return fmt.Errorf("%w: listen is empty", ErrInvalid)
	}
	if c.Prompt == "" {
		return fmt.Errorf("%w: prompt is empty", ErrInvalid)
	}
	if _, err := c.Matrix(); err != nil {
		return err
	}
	if _, err := c.Frame(); err != nil {
		return err
	}
	return nil
}

// Matrix returns the matrix effect duration.
func (c Config) Matrix() (time.Duration, error) {
	return positiveDuration("matrix_duration", c.MatrixDuration)
}

// Frame returns the animation refresh interval.
func (c Config) Frame() (time.Duration, error) {
	return positiveDuration("frame_interval", c.FrameInterval)
}

func positiveDuration(key, raw string) (time.Duration, error) {
	d, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrInvalid, key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: %s must be positive", ErrInvalid, key)
	}
	return d, nil
}
