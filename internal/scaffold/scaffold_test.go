package scaffold

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stamp-labs/stamp/internal/manifest"
	"github.com/stamp-labs/stamp/internal/runtime"
)

// chdir is t.Chdir for toolchains older than Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Error(err)
		}
	})
}

// setupTemplate writes a minimal template tree to disk and points
// STAMP_TEMPLATE at it.
func setupTemplate(t *testing.T, pkgJSON string) string {
	t.Helper()
	dir := t.TempDir()

	files := map[string]string{
		"package.json": pkgJSON,
		"index.html":   "<!doctype html>",
		"src/main.js":  "console.log('hi');",
	}
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	t.Setenv("STAMP_TEMPLATE", dir)
	return dir
}

const validTemplateManifest = `{
  "name": "template",
  "private": true,
  "version": "0.0.0",
  "scripts": {
    "dev": "vite"
  }
}
`

// recordingInstaller captures the directory it was asked to install in.
type recordingInstaller struct {
	dir string
}

func (r *recordingInstaller) Install(_ context.Context, dir string) (*runtime.Output, error) {
	r.dir = dir
	return &runtime.Output{}, nil
}

// failingInstaller always reports a non-zero exit.
type failingInstaller struct{}

func (f *failingInstaller) Install(_ context.Context, _ string) (*runtime.Output, error) {
	return &runtime.Output{ExitCode: 1, Stderr: "E404 not found"},
		&runtime.InstallError{Command: "npm", ExitCode: 1, Stderr: "E404 not found"}
}

func TestRunCopiesAndPatches(t *testing.T) {
	setupTemplate(t, validTemplateManifest)
	target := filepath.Join(t.TempDir(), "demo")
	req := &Request{ProjectName: "demo", TargetDir: target}

	result, err := Run(context.Background(), req, Options{SkipInstall: true})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	for _, name := range []string{"package.json", "index.html", "src/main.js"} {
		if _, err := os.Stat(filepath.Join(target, filepath.FromSlash(name))); err != nil {
			t.Errorf("expected %s in target: %v", name, err)
		}
	}

	pkg, err := manifest.Load(filepath.Join(target, "package.json"))
	if err != nil {
		t.Fatal(err)
	}
	if pkg.Name() != "demo" {
		t.Errorf("patched name = %q, want %q", pkg.Name(), "demo")
	}

	if len(result.Warnings) > 0 {
		t.Errorf("unexpected warnings: %v", result.Warnings)
	}
}

func TestRunNameFollowsTargetBase(t *testing.T) {
	setupTemplate(t, validTemplateManifest)
	// The raw argument carries a path separator; the manifest name must be
	// the base name only.
	target := filepath.Join(t.TempDir(), "sub", "app")
	req := &Request{ProjectName: "sub/app", TargetDir: target}

	_, err := Run(context.Background(), req, Options{SkipInstall: true})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	pkg, err := manifest.Load(filepath.Join(target, "package.json"))
	if err != nil {
		t.Fatal(err)
	}
	if pkg.Name() != "app" {
		t.Errorf("patched name = %q, want %q", pkg.Name(), "app")
	}
}

func TestRunInstallerReceivesTargetDir(t *testing.T) {
	setupTemplate(t, validTemplateManifest)
	target := filepath.Join(t.TempDir(), "demo")
	req := &Request{ProjectName: "demo", TargetDir: target}

	rec := &recordingInstaller{}
	_, err := Run(context.Background(), req, Options{Installer: rec})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if rec.dir != target {
		t.Errorf("installer ran in %q, want %q", rec.dir, target)
	}
}

func TestRunInstallFailureLeavesFiles(t *testing.T) {
	setupTemplate(t, validTemplateManifest)
	target := filepath.Join(t.TempDir(), "demo")
	req := &Request{ProjectName: "demo", TargetDir: target}

	_, err := Run(context.Background(), req, Options{Installer: &failingInstaller{}})
	if err == nil {
		t.Fatal("expected error from failing install")
	}

	var installErr *runtime.InstallError
	if !errors.As(err, &installErr) {
		t.Errorf("expected *InstallError in chain, got: %v", err)
	}

	// No rollback: the copied tree and patched manifest stay on disk.
	pkg, loadErr := manifest.Load(filepath.Join(target, "package.json"))
	if loadErr != nil {
		t.Fatalf("copied files should remain after install failure: %v", loadErr)
	}
	if pkg.Name() != "demo" {
		t.Errorf("name = %q, want %q", pkg.Name(), "demo")
	}
}

func TestRunMissingTemplateFailsEarly(t *testing.T) {
	t.Setenv("STAMP_TEMPLATE", filepath.Join(t.TempDir(), "nope"))
	target := filepath.Join(t.TempDir(), "demo")
	req := &Request{ProjectName: "demo", TargetDir: target}

	_, err := Run(context.Background(), req, Options{SkipInstall: true})
	if err == nil {
		t.Fatal("expected error for missing template")
	}

	// Resolution fails before anything is created in the target.
	if _, statErr := os.Stat(target); statErr == nil {
		t.Error("target directory should not exist after early failure")
	}
}

func TestRunTemplateWithoutManifest(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("STAMP_TEMPLATE", dir)

	target := filepath.Join(t.TempDir(), "demo")
	req := &Request{ProjectName: "demo", TargetDir: target}

	_, err := Run(context.Background(), req, Options{SkipInstall: true})
	if err == nil {
		t.Fatal("expected error for template without package.json")
	}
	if !strings.Contains(err.Error(), "package.json") {
		t.Errorf("error should name the missing manifest: %v", err)
	}
}

func TestRunInvalidDerivedNameWarns(t *testing.T) {
	setupTemplate(t, validTemplateManifest)
	// A target base name the npm schema rejects: scaffolding still succeeds,
	// the schema finding surfaces as a warning.
	target := filepath.Join(t.TempDir(), "My App")
	req := &Request{ProjectName: "My App", TargetDir: target}

	result, err := Run(context.Background(), req, Options{SkipInstall: true})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if len(result.Warnings) == 0 {
		t.Error("expected a validation warning for the derived name")
	}

	pkg, err := manifest.Load(filepath.Join(target, "package.json"))
	if err != nil {
		t.Fatal(err)
	}
	if pkg.Name() != "My App" {
		t.Errorf("permissive behavior: name = %q, want %q", pkg.Name(), "My App")
	}
}

func TestNewRequest(t *testing.T) {
	t.Run("resolves against cwd", func(t *testing.T) {
		dir := t.TempDir()
		chdir(t, dir)

		req, err := NewRequest("demo")
		if err != nil {
			t.Fatalf("NewRequest() error: %v", err)
		}
		want, _ := filepath.EvalSymlinks(dir)
		got, _ := filepath.EvalSymlinks(filepath.Dir(req.TargetDir))
		if got != want {
			t.Errorf("TargetDir parent = %q, want %q", got, want)
		}
		if filepath.Base(req.TargetDir) != "demo" {
			t.Errorf("TargetDir base = %q, want demo", filepath.Base(req.TargetDir))
		}
	})

	t.Run("empty name rejected", func(t *testing.T) {
		if _, err := NewRequest(""); err == nil {
			t.Error("expected error for empty project name")
		}
	})
}
