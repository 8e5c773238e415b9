package vocab

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

const sampleVocab = `[
	{"korean": "하나", "english": "one"},
	{"korean": "둘", "english": "two"},
	{"korean": "셋", "english": "three"},
	{"korean": "넷", "english": "four"}
]`

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadCatalog(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "native_numbers.json", sampleVocab)
	writeFile(t, dir, "particles.json", sampleVocab)
	writeFile(t, dir, ProgressFileName, `{}`)
	writeFile(t, dir, "notes.txt", "not vocabulary")

	cat, err := LoadCatalog(dir)
	if err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}
	want := []string{"Native Numbers", "Particles"}
	if !reflect.DeepEqual(cat.Names(), want) {
		t.Errorf("Names() = %v, want %v", cat.Names(), want)
	}
	if pool, ok := cat.Pool("Particles"); !ok || len(pool) != 4 {
		t.Errorf("Pool(Particles) = %v, %v", pool, ok)
	}
}

func TestLoadCatalog_Empty(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ProgressFileName, `{}`)

	if _, err := LoadCatalog(dir); err == nil {
		t.Fatal("LoadCatalog() = nil, want error for empty dir")
	}
}

func TestLoadCatalog_BadFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "verbs.json", `[{"korean": "가다"}]`)

	if _, err := LoadCatalog(dir); err == nil {
		t.Fatal("LoadCatalog() = nil, want error for invalid file")
	}
}
