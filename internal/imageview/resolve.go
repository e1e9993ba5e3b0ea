// Package imageview resolves page image references and renders them as
// terminal half-block previews.
package imageview

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned when no asset directory holds the referenced image.
var ErrNotFound = errors.New("image not found")

// Policy decides what happens when a page image cannot be loaded.
type Policy string

const (
	// PolicyAbort refuses to enter the page and keeps the prior state.
	PolicyAbort Policy = "abort"
	// PolicyIgnore shows a placeholder and enters the page anyway.
	PolicyIgnore Policy = "ignore"
)

// ParsePolicy validates a policy name.
func ParsePolicy(name string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(name))) {
	case PolicyAbort:
		return PolicyAbort, nil
	case PolicyIgnore:
		return PolicyIgnore, nil
	default:
		return "", fmt.Errorf("unknown image policy %q (use abort or ignore)", name)
	}
}

// DefaultPolicy is the policy used when none is configured. Aborting is only
// meaningful when an assets directory was named; without one the images are
// usually absent and every page would be refused.
func DefaultPolicy(assetsDir string) Policy {
	if strings.TrimSpace(assetsDir) == "" {
		return PolicyIgnore
	}
	return PolicyAbort
}

// Resolver maps image references to files, trying each base directory in order.
type Resolver struct {
	dirs []string
}

// NewResolver returns a resolver over the given directories. Empty entries are skipped.
func NewResolver(dirs ...string) *Resolver {
	r := &Resolver{}
	for _, d := range dirs {
		if strings.TrimSpace(d) != "" {
			r.dirs = append(r.dirs, d)
		}
	}
	return r
}

// DefaultDirs returns the configured assets dir followed by the executable's
// directory and the working directory.
func DefaultDirs(assetsDir string) []string {
	dirs := []string{assetsDir}
	if exe, err := os.Executable(); err == nil {
		dirs = append(dirs, filepath.Dir(exe))
	}
	if wd, err := os.Getwd(); err == nil {
		dirs = append(dirs, wd)
	}
	return dirs
}

// Resolve returns the first existing file for ref. References may use either
// slash style.
func (r *Resolver) Resolve(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", fmt.Errorf("empty image reference: %w", ErrNotFound)
	}
	rel := filepath.FromSlash(strings.ReplaceAll(ref, `\`, "/"))
	if filepath.IsAbs(rel) {
		if isFile(rel) {
			return rel, nil
		}
		return "", fmt.Errorf("%s: %w", rel, ErrNotFound)
	}
	for _, dir := range r.dirs {
		candidate := filepath.Join(dir, rel)
		if isFile(candidate) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%s (searched %s): %w", ref, strings.Join(r.dirs, ", "), ErrNotFound)
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
