package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Quiz.DataDir != nil {
		t.Errorf("DataDir = %v, want nil", *cfg.Quiz.DataDir)
	}
}

func TestResolve_Defaults(t *testing.T) {
	s := Resolve(FileConfig{})
	if s.DataDir != DefaultDataDir {
		t.Errorf("DataDir = %q, want %q", s.DataDir, DefaultDataDir)
	}
	if s.Columns != DefaultColumns {
		t.Errorf("Columns = %d, want %d", s.Columns, DefaultColumns)
	}
	if s.Direction != "term-to-translation" || s.Answer != "choice" {
		t.Errorf("Direction/Answer = %q/%q", s.Direction, s.Answer)
	}
}

func TestResolve_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `[quiz]
data-dir = "/srv/vocab"
direction = "translation-to-term"
answer = "typed"
columns = 2
categories = ["Particles", "Verbs"]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	s := Resolve(cfg)
	if s.DataDir != "/srv/vocab" || s.Direction != "translation-to-term" {
		t.Errorf("resolved = %+v", s)
	}
	if s.Answer != "typed" || s.Columns != 2 {
		t.Errorf("resolved = %+v", s)
	}
	if len(s.Categories) != 2 {
		t.Errorf("Categories = %v", s.Categories)
	}
}

func TestResolve_EnvOverridesFile(t *testing.T) {
	t.Setenv("KWIZ_DATA_DIR", "/env/vocab")
	fileDir := "/file/vocab"
	s := Resolve(FileConfig{Quiz: QuizConfig{DataDir: &fileDir}})
	if s.DataDir != "/env/vocab" {
		t.Errorf("DataDir = %q, want env override", s.DataDir)
	}
}

func TestDefaultLogPath_Env(t *testing.T) {
	p := filepath.Join(t.TempDir(), "sub", "kwiz.db")
	t.Setenv("KWIZ_DB", p)
	got, err := DefaultLogPath()
	if err != nil {
		t.Fatalf("DefaultLogPath() error = %v", err)
	}
	if got != p {
		t.Errorf("path = %q, want %q", got, p)
	}
	if _, err := os.Stat(filepath.Dir(p)); err != nil {
		t.Errorf("parent dir not created: %v", err)
	}
}
