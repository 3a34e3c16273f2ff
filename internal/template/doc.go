// Package template locates the bundled project template and copies it
// into a target directory. The template ships three ways: an explicit
// STAMP_TEMPLATE override, a templates/ directory next to the installed
// binary (release archives), or the copy embedded in the binary itself.
package template
