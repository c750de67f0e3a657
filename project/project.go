// Package project finds the Java sources of a source tree and projects them
// into outline documents, one independent projection per file.
package project

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/tliron/commonlog"
	"golang.org/x/sync/errgroup"

	"github.com/dhamidi/outline/config"
	"github.com/dhamidi/outline/java/source"
	"github.com/dhamidi/outline/outline"
)

var log = commonlog.GetLogger("outline.project")

// Project is a source tree and the Java files selected from it.
type Project struct {
	RootDir string
	Config  *config.Config
	// Files are slash-separated paths relative to RootDir, sorted.
	Files []string
}

// Result is the outline of one file.
type Result struct {
	Path    string
	Outline *outline.Object
}

// Load scans rootDir for files selected by cfg.
func Load(rootDir string, cfg *config.Config) (*Project, error) {
	proj := &Project{RootDir: rootDir, Config: cfg}
	err := filepath.WalkDir(rootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(rootDir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if cfg.Matches(rel) {
			proj.Files = append(proj.Files, rel)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", rootDir, err)
	}
	sort.Strings(proj.Files)
	log.Debugf("found %d files under %s", len(proj.Files), rootDir)
	return proj, nil
}

// Path returns the filesystem path of a file of the project.
func (p *Project) Path(rel string) string {
	return filepath.Join(p.RootDir, filepath.FromSlash(rel))
}

// ProjectAll projects every file of the project in parallel, bounded by the
// configured number of workers. Results are in the order of p.Files. The
// first failure cancels the remaining work and is returned.
func (p *Project) ProjectAll(ctx context.Context, projector *outline.Projector) ([]Result, error) {
	results := make([]Result, len(p.Files))
	if len(p.Files) == 0 {
		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(p.Config.Workers(), len(p.Files)))

	for i, rel := range p.Files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			doc, err := ProjectFile(p.Path(rel), projector)
			if err != nil {
				return err
			}
			results[i] = Result{Path: rel, Outline: doc}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// ProjectFile parses and projects a single Java file.
func ProjectFile(path string, projector *outline.Projector) (*outline.Object, error) {
	unit, err := source.ParseFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := projector.Project(unit)
	if err != nil {
		return nil, fmt.Errorf("project %s: %w", path, err)
	}
	return doc, nil
}

// Collect gathers results into one document keyed by path.
func Collect(results []Result) *outline.Object {
	doc := outline.NewObject()
	for _, r := range results {
		doc.Set(r.Path, r.Outline)
	}
	return doc
}
