// Package scaffold materializes a new project from the bundled template.
// It powers the root "stamp <project-name>" invocation: resolve the
// template, copy it into the target directory, rewrite the package.json
// name, and run the package manager's install command. Steps run strictly
// in sequence and a failed step aborts the run; files already copied are
// left on disk.
package scaffold
