// Package manifest reads, patches, and validates package.json files.
// Loading keeps the manifest as a raw JSON object so fields the CLI does
// not know about survive a patch-and-save round trip unchanged.
package manifest
