package template

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/stamp-labs/stamp/internal/branding"
)

//go:embed all:templates
var templateFS embed.FS

// embeddedRoot is the subdirectory of templateFS holding the default template.
const embeddedRoot = "templates/default"

// ErrTemplateNotFound reports that an explicitly configured template
// directory does not exist or is not a directory.
var ErrTemplateNotFound = errors.New("template directory not found")

// Source is a resolved template location.
type Source struct {
	FS     fs.FS
	Origin string // directory path, or "embedded"
}

// Resolve locates the project template.
//
// Resolution order:
//  1. STAMP_TEMPLATE environment variable (explicit override)
//  2. <exe-dir>/../templates/default (bundled release layout)
//  3. the template embedded in the binary
//
// An explicit override pointing at a missing directory is an error; the
// embedded fallback otherwise always resolves.
func Resolve() (*Source, error) {
	if dir := os.Getenv(branding.EnvVar("TEMPLATE")); dir != "" {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			return nil, fmt.Errorf("%s=%s: %w", branding.EnvVar("TEMPLATE"), dir, ErrTemplateNotFound)
		}
		return &Source{FS: os.DirFS(dir), Origin: dir}, nil
	}

	// Try to find the template relative to the executable (bundled release).
	if exe, err := os.Executable(); err == nil {
		dir := filepath.Join(filepath.Dir(exe), "..", branding.TemplatesDir(), "default")
		if info, statErr := os.Stat(dir); statErr == nil && info.IsDir() {
			return &Source{FS: os.DirFS(dir), Origin: dir}, nil
		}
	}

	sub, err := fs.Sub(templateFS, embeddedRoot)
	if err != nil {
		return nil, fmt.Errorf("opening embedded template: %w", err)
	}
	return &Source{FS: sub, Origin: "embedded"}, nil
}
