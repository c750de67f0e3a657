// Package codebase keeps the outlines of a set of Java files up to date as
// the files change, and serves them over LSP.
package codebase

import (
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/outline/config"
	"github.com/dhamidi/outline/java/source"
	"github.com/dhamidi/outline/java/syntax"
	"github.com/dhamidi/outline/outline"
)

var log = commonlog.GetLogger("outline.codebase")

type Codebase struct {
	mu        sync.RWMutex
	rootDir   string
	projector *outline.Projector
	files     map[string]*FileInfo
}

// FileInfo is the latest state of one file. Outline is the last successful
// projection and OutlineSource the content it was projected from; Err is the
// error of the latest attempt, if it failed.
type FileInfo struct {
	Path          string
	Content       []byte
	Hash          uint64 // xxhash of Content
	Unit          *syntax.Node
	Outline       *outline.Object
	OutlineSource []byte
	Err           error
}

func New(rootDir string, projector *outline.Projector) *Codebase {
	return &Codebase{
		rootDir:   rootDir,
		projector: projector,
		files:     make(map[string]*FileInfo),
	}
}

func (c *Codebase) RootDir() string {
	return c.rootDir
}

// ScanAll projects every file under the root selected by cfg. Files that
// fail to parse or project are recorded with their error.
func (c *Codebase) ScanAll(cfg *config.Config) error {
	return filepath.WalkDir(c.rootDir, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(c.rootDir, path)
		if err != nil || !cfg.Matches(filepath.ToSlash(rel)) {
			return nil
		}
		c.ScanFile(path)
		return nil
	})
}

func (c *Codebase) ScanFile(path string) (*FileInfo, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return c.UpdateFile(path, content), nil
}

// UpdateFile parses and projects content as the new state of path. If
// content is unchanged the current FileInfo is returned as is.
func (c *Codebase) UpdateFile(path string, content []byte) *FileInfo {
	hash := xxhash.Sum64(content)
	if prev := c.GetFile(path); prev != nil && prev.Hash == hash {
		return prev
	}

	info := &FileInfo{Path: path, Content: content, Hash: hash}
	info.Unit, info.Err = source.Parse(content, source.WithFile(path))
	if info.Err == nil {
		info.Outline, info.Err = c.projector.Project(info.Unit)
	}
	if info.Err == nil {
		info.OutlineSource = content
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if info.Err != nil {
		log.Infof("%s: %s", path, info.Err)
		if prev := c.files[path]; prev != nil {
			info.Outline = prev.Outline
			info.OutlineSource = prev.OutlineSource
		}
	}
	c.files[path] = info
	return info
}

func (c *Codebase) RemoveFile(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.files, path)
}

func (c *Codebase) GetFile(path string) *FileInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.files[path]
}

// Paths returns the paths of all known files, sorted.
func (c *Codebase) Paths() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	paths := make([]string, 0, len(c.files))
	for path := range c.files {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}
