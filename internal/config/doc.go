// Package config manages persistent user settings stored at
// ~/.stamp/config.yaml, with STAMP_* environment variable overrides.
package config
