package runtime

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// CommandInstaller runs a package manager binary found on PATH.
type CommandInstaller struct {
	Command string
	Args    []string

	// Stdout and Stderr can be set for testing; defaults to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

// InstallError reports an install command that ran but exited non-zero.
type InstallError struct {
	Command  string
	ExitCode int
	Stderr   string
}

func (e *InstallError) Error() string {
	msg := fmt.Sprintf("%s install exited with status %d", e.Command, e.ExitCode)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}

// Install runs the install command with dir as its working directory,
// streaming output to the configured writers while capturing it. A
// non-zero exit returns the Output alongside an *InstallError carrying
// the captured stderr.
func (c *CommandInstaller) Install(ctx context.Context, dir string) (*Output, error) {
	bin, err := exec.LookPath(c.Command)
	if err != nil {
		return nil, fmt.Errorf("dependency install requires %s on PATH: %w", c.Command, err)
	}

	cmd := exec.CommandContext(ctx, bin, c.Args...)
	cmd.Dir = dir

	stdout := c.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := c.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = io.MultiWriter(stdout, &stdoutBuf)
	cmd.Stderr = io.MultiWriter(stderr, &stderrBuf)

	err = cmd.Run()

	output := &Output{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			output.ExitCode = exitErr.ExitCode()
			return output, &InstallError{
				Command:  c.Command,
				ExitCode: output.ExitCode,
				Stderr:   output.Stderr,
			}
		}
		return output, fmt.Errorf("running %s install: %w", c.Command, err)
	}

	return output, nil
}
