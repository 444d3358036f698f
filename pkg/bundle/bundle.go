// Package bundle edits the version entries of every property list in a
// backup bundle as one operation.
package bundle

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joshuapare/plistkit/pkg/plist"
	"github.com/joshuapare/plistkit/pkg/types"
)

// ErrMissingVersion is returned by Update when a target value is empty.
var ErrMissingVersion = errors.New("bundle: product and build versions are required")

var userHomeDir = os.UserHomeDir

// Bundle is a directory holding the property lists named by Targets.
type Bundle struct {
	Dir     string
	Targets []Target
}

// Status is the current state of one target.
type Status struct {
	Target   Target
	Path     string
	Format   plist.Format
	Versions plist.Versions
}

// Result is the outcome of updating one target.
type Result struct {
	Target  Target
	Path    string
	Changed bool
}

// Open validates dir and returns a Bundle for targets, or for
// DefaultTargets when none are given. Tilde (~) expansion is supported.
//
// Every target file must exist; the error lists all missing ones.
func Open(dir string, targets ...Target) (*Bundle, error) {
	expanded, err := expandTilde(dir)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(expanded)
	if err != nil {
		return nil, types.IOError("bundle does not exist", expanded, err)
	}
	if !info.IsDir() {
		return nil, &types.Error{Kind: types.ErrKindIO, Msg: "bundle is not a directory", Path: expanded}
	}
	if len(targets) == 0 {
		targets = DefaultTargets()
	}

	b := &Bundle{Dir: expanded, Targets: targets}
	var missing []string
	for _, t := range targets {
		p := b.Path(t)
		if fi, statErr := os.Stat(p); statErr != nil || fi.IsDir() {
			missing = append(missing, p)
		}
	}
	if len(missing) > 0 {
		return nil, &types.Error{
			Kind: types.ErrKindNotFound,
			Msg:  "missing required files: " + strings.Join(missing, ", "),
			Path: expanded,
		}
	}
	return b, nil
}

// Path returns the absolute location of t inside the bundle.
func (b *Bundle) Path(t Target) string {
	return filepath.Join(b.Dir, filepath.FromSlash(t.File))
}

// Read loads every target and reports its current versions. Nothing is
// written and missing dictionaries are not created.
func (b *Bundle) Read() ([]Status, error) {
	out := make([]Status, 0, len(b.Targets))
	for _, t := range b.Targets {
		p := b.Path(t)
		doc, err := plist.LoadDocument(p)
		if err != nil {
			return out, fmt.Errorf("failed to read %s: %w", t.DisplayName(), err)
		}
		names, fallbacks := t.readNames()
		out = append(out, Status{
			Target:   t,
			Path:     p,
			Format:   doc.Format,
			Versions: plist.ReadValues(doc, t.KeyPath, names, fallbacks...),
		})
	}
	return out, nil
}

// Update sets product and build in every target, in order. The first
// failure stops the run; results for the targets already processed are
// returned with the error.
func (b *Bundle) Update(product, build string, opts *plist.UpdateOptions) ([]Result, error) {
	if product == "" || build == "" {
		return nil, ErrMissingVersion
	}
	out := make([]Result, 0, len(b.Targets))
	for _, t := range b.Targets {
		p := b.Path(t)
		changed, err := plist.Update(p, t.KeyPath, t.Names, product, build, opts)
		if err != nil {
			return out, fmt.Errorf("failed to update %s: %w", t.DisplayName(), err)
		}
		out = append(out, Result{Target: t, Path: p, Changed: changed})
	}
	return out, nil
}

// AnyChanged reports whether at least one result changed its file.
func AnyChanged(results []Result) bool {
	for _, r := range results {
		if r.Changed {
			return true
		}
	}
	return false
}

// expandTilde expands a leading "~" or "~/" to the user's home directory.
func expandTilde(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}
	if len(path) > 1 && path[1] != '/' && path[1] != filepath.Separator {
		// "~user" is not expanded.
		return path, nil
	}
	home, err := userHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to expand home directory: %w", err)
	}
	if len(path) == 1 {
		return home, nil
	}
	return filepath.Join(home, path[2:]), nil
}
