// Package runtime detects the local Node.js toolchain and runs the
// package manager's install command inside a scaffolded project. The
// target directory is always passed to the child process explicitly; the
// CLI never changes its own working directory, so multiple scaffolds can
// run safely within one process.
package runtime
