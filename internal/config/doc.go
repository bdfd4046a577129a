// Package config loads, normalizes, and validates pgnsplit configuration.
//
// It supplies repository defaults, reads an optional TOML file, folds in a
// working-directory .env file and environment variables such as DATASET, and
// expands user paths (including tilde shortcuts). The Config type centralizes
// every knob the CLI and splitter need so input, output, and state locations
// are resolved in one pass.
//
// Always obtain settings through this package so downstream code receives
// absolute paths, canonical encoding names, and clear validation errors.
package config
