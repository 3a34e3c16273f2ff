package template

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// excludedNames are files/directories excluded during template copy.
var excludedNames = map[string]bool{
	"node_modules": true,
	".git":         true,
	".DS_Store":    true,
}

// CopyTree recursively copies the template source into dst, creating dst
// and any missing parent directories. Pre-existing destination content is
// merge-overwritten. Symlinks and other non-regular files are skipped.
// Returns the slash-separated relative paths of the copied files.
func CopyTree(src *Source, dst string) ([]string, error) {
	if err := os.MkdirAll(dst, 0755); err != nil {
		return nil, fmt.Errorf("creating target directory %s: %w", dst, err)
	}

	var copied []string
	err := fs.WalkDir(src.FS, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == "." {
			return nil
		}
		if excludedNames[d.Name()] {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		target := filepath.Join(dst, filepath.FromSlash(path))

		if d.IsDir() {
			if err := os.MkdirAll(target, 0755); err != nil {
				return fmt.Errorf("creating directory %s: %w", target, err)
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		data, err := fs.ReadFile(src.FS, path)
		if err != nil {
			return fmt.Errorf("reading template file %s: %w", path, err)
		}

		// Embedded files carry no useful permission bits; keep the
		// executable bit when the source has one.
		mode := fs.FileMode(0644)
		if info, infoErr := d.Info(); infoErr == nil && info.Mode()&0111 != 0 {
			mode = 0755
		}

		if err := os.WriteFile(target, data, mode); err != nil {
			return fmt.Errorf("writing %s: %w", target, err)
		}

		copied = append(copied, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return copied, nil
}
