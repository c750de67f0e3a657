package codebase

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/dhamidi/outline/config"
	"github.com/dhamidi/outline/java/source"
	"github.com/dhamidi/outline/outline"
)

func newTestCodebase(t *testing.T) *Codebase {
	t.Helper()
	return New(t.TempDir(), outline.New(outline.WithDiagnostics(outline.DiscardDiagnostics)))
}

func TestUpdateFile(t *testing.T) {
	c := newTestCodebase(t)
	info := c.UpdateFile("A.java", []byte("class A { void run() {} }\n"))
	if info.Err != nil {
		t.Fatalf("UpdateFile() error = %v", info.Err)
	}
	if !info.Outline.Object("classes").Has("A") {
		t.Errorf("outline has no class A")
	}
	if got := c.GetFile("A.java"); got != info {
		t.Errorf("GetFile() = %v, want %v", got, info)
	}
}

func TestUpdateFileUnchangedContent(t *testing.T) {
	c := newTestCodebase(t)
	first := c.UpdateFile("A.java", []byte("class A {}\n"))
	second := c.UpdateFile("A.java", []byte("class A {}\n"))
	if first != second {
		t.Errorf("UpdateFile() with unchanged content re-projected the file")
	}
	third := c.UpdateFile("A.java", []byte("class B {}\n"))
	if third == first || !third.Outline.Object("classes").Has("B") {
		t.Errorf("UpdateFile() with new content did not re-project the file")
	}
}

func TestUpdateFileKeepsLastOutlineOnError(t *testing.T) {
	c := newTestCodebase(t)
	good := c.UpdateFile("A.java", []byte("class A {}\n"))
	bad := c.UpdateFile("A.java", []byte("class A {\n"))

	var syntaxErr *source.SyntaxError
	if !errors.As(bad.Err, &syntaxErr) {
		t.Fatalf("Err = %v, want *source.SyntaxError", bad.Err)
	}
	if bad.Outline != good.Outline {
		t.Errorf("Outline was not carried over from the last successful projection")
	}
}

func TestRemoveFileAndPaths(t *testing.T) {
	c := newTestCodebase(t)
	c.UpdateFile("b/B.java", []byte("class B {}\n"))
	c.UpdateFile("a/A.java", []byte("class A {}\n"))

	if got, want := c.Paths(), []string{"a/A.java", "b/B.java"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Paths() = %v, want %v", got, want)
	}
	c.RemoveFile("a/A.java")
	if got, want := c.Paths(), []string{"b/B.java"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Paths() after remove = %v, want %v", got, want)
	}
	if c.GetFile("a/A.java") != nil {
		t.Errorf("GetFile() returned a removed file")
	}
}

func TestScanAll(t *testing.T) {
	c := newTestCodebase(t)
	root := c.RootDir()
	for rel, content := range map[string]string{
		"src/A.java":     "class A {}\n",
		"build/B.java":   "class B {}\n",
		"src/readme.txt": "hello\n",
	} {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	if err := c.ScanAll(config.Default()); err != nil {
		t.Fatalf("ScanAll() error = %v", err)
	}
	want := []string{filepath.Join(root, "src", "A.java")}
	if got := c.Paths(); !reflect.DeepEqual(got, want) {
		t.Errorf("Paths() = %v, want %v", got, want)
	}
}

func TestDiagnosticsFor(t *testing.T) {
	c := newTestCodebase(t)

	if got := diagnosticsFor(c.UpdateFile("A.java", []byte("class A {}\n"))); len(got) != 0 {
		t.Errorf("diagnosticsFor(valid) = %v, want none", got)
	}

	got := diagnosticsFor(c.UpdateFile("B.java", []byte("class B {\n")))
	if len(got) != 1 {
		t.Fatalf("diagnosticsFor(invalid) returned %d diagnostics, want 1", len(got))
	}
	if got[0].Message == "" {
		t.Errorf("diagnostic has no message")
	}
	if got[0].Range.Start != got[0].Range.End {
		t.Errorf("diagnostic range = %v, want a collapsed range", got[0].Range)
	}
}

func TestURIToPath(t *testing.T) {
	tests := []struct {
		uri  string
		want string
	}{
		{"file:///home/user/Main.java", "/home/user/Main.java"},
		{"file:///tmp/a%20b/C.java", "/tmp/a b/C.java"},
		{"/already/a/path.java", "/already/a/path.java"},
	}
	for _, tt := range tests {
		got, err := uriToPath(tt.uri)
		if err != nil {
			t.Errorf("uriToPath(%q) error = %v", tt.uri, err)
			continue
		}
		if got != tt.want {
			t.Errorf("uriToPath(%q) = %q, want %q", tt.uri, got, tt.want)
		}
	}
}
