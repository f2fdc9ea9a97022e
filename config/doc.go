// Package config handles application configuration loading and
// validation.
//
// Configuration is loaded from a YAML file and validated using struct
// tags. It names position feeds, registers coordinate-reference-system
// aliases and optionally sets a default target projection for the CLI.
package config
