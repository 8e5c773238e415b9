// Package config resolves kwiz settings from flags, environment, and an
// optional TOML file under the XDG config directory.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Defaults.
const (
	DefaultDataDir = "data"
	DefaultColumns = 3
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Quiz QuizConfig `toml:"quiz"`
}

// QuizConfig maps quiz-related settings.
type QuizConfig struct {
	DataDir    *string  `toml:"data-dir"`
	Direction  *string  `toml:"direction"`
	Answer     *string  `toml:"answer"`
	Columns    *int     `toml:"columns"`
	Categories []string `toml:"categories"`
}

// Load reads a TOML config from the given path. A missing file is not an
// error; the zero FileConfig is returned.
func Load(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// Settings is the fully resolved configuration.
type Settings struct {
	DataDir    string
	Direction  string
	Answer     string
	Columns    int
	Categories []string
}

// Resolve merges a file config with defaults. Flag and env overrides are
// applied by the caller before use, in flag > env > file > default order.
func Resolve(file FileConfig) Settings {
	s := Settings{
		DataDir:   DefaultDataDir,
		Direction: "term-to-translation",
		Answer:    "choice",
		Columns:   DefaultColumns,
	}
	if v := os.Getenv("KWIZ_DATA_DIR"); v != "" {
		s.DataDir = v
	} else if file.Quiz.DataDir != nil {
		s.DataDir = *file.Quiz.DataDir
	}
	if file.Quiz.Direction != nil {
		s.Direction = *file.Quiz.Direction
	}
	if file.Quiz.Answer != nil {
		s.Answer = *file.Quiz.Answer
	}
	if file.Quiz.Columns != nil && *file.Quiz.Columns > 0 {
		s.Columns = *file.Quiz.Columns
	}
	s.Categories = append([]string(nil), file.Quiz.Categories...)
	return s
}
