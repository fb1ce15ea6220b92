// Package config provides environment-based configuration.
//
// Loads from .env file (godotenv), reads env vars into a Config struct, and
// validates required fields. The process exits non-zero at startup if any
// required value is absent.
package config
