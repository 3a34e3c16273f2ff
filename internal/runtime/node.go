package runtime

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// NodeVersion returns the local Node.js version string (e.g., "v20.11.1").
func NodeVersion() (string, error) {
	bin, err := exec.LookPath("node")
	if err != nil {
		return "", fmt.Errorf("node not found on PATH: %w", err)
	}
	out, err := exec.Command(bin, "--version").Output()
	if err != nil {
		return "", fmt.Errorf("running node --version: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// CheckEngines reports whether version satisfies the semver constraint
// from a manifest's engines.node field (e.g., ">=18"). A leading "v" on
// the version is tolerated.
func CheckEngines(constraint, version string) (bool, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("parsing engines constraint %q: %w", constraint, err)
	}
	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return false, fmt.Errorf("parsing node version %q: %w", version, err)
	}
	return c.Check(v), nil
}
