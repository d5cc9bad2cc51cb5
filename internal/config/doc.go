// Package config loads and validates application settings from NEWS_*
// environment variables and an optional YAML file.
package config
