package runtime

import "context"

// Installer runs a dependency install inside a project directory.
type Installer interface {
	// Install runs the install command with dir as its working directory.
	Install(ctx context.Context, dir string) (*Output, error)
}

// Output captures the result of an install execution.
type Output struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Well-known package manager identifiers.
const (
	ManagerNPM  = "npm"
	ManagerYarn = "yarn"
	ManagerPNPM = "pnpm"
)

// Dispatch returns the Installer for the given package manager name.
// An empty name selects npm. Unrecognized names are treated as a command
// to run with an "install" argument, so users can configure any manager
// that follows the npm convention.
func Dispatch(name string) Installer {
	switch name {
	case "", ManagerNPM:
		return &CommandInstaller{Command: ManagerNPM, Args: []string{"install"}}
	case ManagerYarn:
		return &CommandInstaller{Command: ManagerYarn, Args: []string{"install"}}
	case ManagerPNPM:
		return &CommandInstaller{Command: ManagerPNPM, Args: []string{"install"}}
	default:
		return &CommandInstaller{Command: name, Args: []string{"install"}}
	}
}
