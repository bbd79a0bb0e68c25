// Package config loads retailkit client settings from YAML files, .env
// files, and RETAIL_* environment variables, with struct-tag validation.
package config
