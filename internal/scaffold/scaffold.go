package scaffold

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/stamp-labs/stamp/internal/manifest"
	"github.com/stamp-labs/stamp/internal/runtime"
	"github.com/stamp-labs/stamp/internal/template"
)

// Request describes one scaffold run. TargetDir is absolute and fixed for
// the run's duration.
type Request struct {
	ProjectName string
	TargetDir   string
}

// NewRequest builds a Request from the raw project-name argument, resolving
// the target directory against the current working directory. The argument
// may contain path separators ("sub/app"); the project is created at that
// relative path.
func NewRequest(projectName string) (*Request, error) {
	if projectName == "" {
		return nil, fmt.Errorf("project name must not be empty")
	}
	abs, err := filepath.Abs(projectName)
	if err != nil {
		return nil, fmt.Errorf("resolving target directory for %q: %w", projectName, err)
	}
	return &Request{ProjectName: projectName, TargetDir: abs}, nil
}

// Options configures a scaffold run.
type Options struct {
	// Installer runs the dependency install. Defaults to npm.
	Installer runtime.Installer
	// SkipInstall leaves the project uninstalled.
	SkipInstall bool
	// Progress receives step-by-step status lines. Defaults to io.Discard.
	Progress io.Writer
}

// Result holds the outcome of a successful scaffold run.
type Result struct {
	TargetDir string
	Origin    string   // where the template came from
	Files     []string // copied files, relative to TargetDir
	Warnings  []string
}

// Run executes the scaffold workflow. No step is retried, and nothing is
// rolled back on failure: an install error leaves the copied tree and the
// patched manifest on disk.
func Run(ctx context.Context, req *Request, opts Options) (*Result, error) {
	progress := opts.Progress
	if progress == nil {
		progress = io.Discard
	}

	src, err := template.Resolve()
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(progress, "Scaffolding %s from %s template...\n", req.ProjectName, src.Origin)

	files, err := template.CopyTree(src, req.TargetDir)
	if err != nil {
		return nil, fmt.Errorf("copying template to %s: %w", req.TargetDir, err)
	}

	result := &Result{
		TargetDir: req.TargetDir,
		Origin:    src.Origin,
		Files:     files,
	}

	// The manifest name follows the target directory, not the raw argument:
	// "sub/app" yields a project named "app".
	pkgPath := filepath.Join(req.TargetDir, "package.json")
	pkg, err := manifest.Load(pkgPath)
	if err != nil {
		return nil, err
	}
	pkg.SetName(filepath.Base(req.TargetDir))
	if err := pkg.Save(pkgPath); err != nil {
		return nil, err
	}

	// Schema validation is advisory; a derived name the schema rejects is
	// surfaced, never fatal.
	if data, bytesErr := pkg.Bytes(); bytesErr == nil {
		if valResult, valErr := manifest.Validate(data); valErr != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("could not validate package.json: %v", valErr))
		} else if !valResult.Valid {
			for _, issue := range valResult.Issues {
				msg := issue.Message
				if issue.Path != "" {
					msg = issue.Path + ": " + msg
				}
				result.Warnings = append(result.Warnings, msg)
			}
		}
	}

	// engines.node is advisory too: the install may still succeed.
	if constraint := pkg.EngineConstraint(); constraint != "" {
		if version, verErr := runtime.NodeVersion(); verErr == nil {
			if ok, checkErr := runtime.CheckEngines(constraint, version); checkErr == nil && !ok {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("local node %s does not satisfy engines.node %q", version, constraint))
			}
		}
	}

	if opts.SkipInstall {
		return result, nil
	}

	installer := opts.Installer
	if installer == nil {
		installer = runtime.Dispatch(runtime.ManagerNPM)
	}

	fmt.Fprintln(progress, "Installing dependencies...")
	if _, err := installer.Install(ctx, req.TargetDir); err != nil {
		return nil, fmt.Errorf("installing dependencies: %w", err)
	}

	return result, nil
}
