// Package config loads minifiles configuration from embedded defaults, TOML
// files and environment variables into a validated Config struct.
package config
