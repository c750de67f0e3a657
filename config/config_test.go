package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestFindWithoutFileReturnsDefaults(t *testing.T) {
	cfg, err := Find(t.TempDir())
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	if cfg.Watch.Debounce.Duration != 200*time.Millisecond {
		t.Errorf("debounce = %s, want 200ms", cfg.Watch.Debounce)
	}
	if !cfg.Matches("src/Main.java") {
		t.Error("defaults should include java files")
	}
}

func TestLoad(t *testing.T) {
	dir := writeConfig(t, `
include = ["src/**/*.java"]
exclude = ["**/generated/**"]
jobs = 3
indent = "\t"

[watch]
debounce = "1s"
`)
	cfg, err := Find(dir)
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	if cfg.Workers() != 3 || cfg.Indent != "\t" {
		t.Errorf("jobs=%d indent=%q", cfg.Workers(), cfg.Indent)
	}
	if cfg.Watch.Debounce.Duration != time.Second {
		t.Errorf("debounce = %s, want 1s", cfg.Watch.Debounce)
	}

	tests := []struct {
		path string
		want bool
	}{
		{"src/com/example/Main.java", true},
		{"src/com/generated/Gen.java", false},
		{"test/MainTest.java", false},
		{"src/README.md", false},
	}
	for _, tt := range tests {
		if got := cfg.Matches(tt.path); got != tt.want {
			t.Errorf("Matches(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	dir := writeConfig(t, "includes = [\"*.java\"]\n")
	_, err := Find(dir)
	if err == nil || !strings.Contains(err.Error(), "unknown keys includes") {
		t.Errorf("Find() error = %v, want unknown keys error", err)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := map[string]string{
		"pattern":  "include = [\"[\"]\n",
		"jobs":     "jobs = -1\n",
		"duration": "[watch]\ndebounce = \"soon\"\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Find(writeConfig(t, content)); err == nil {
				t.Error("Find() should fail")
			}
		})
	}
}

func TestDefaultExcludesBuildOutput(t *testing.T) {
	cfg := Default()
	for _, path := range []string{"build/Gen.java", "module/target/X.java", ".git/Y.java"} {
		if cfg.Matches(path) {
			t.Errorf("Matches(%q) = true, want false", path)
		}
	}
}
