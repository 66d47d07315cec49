// Package config loads env-tagged configuration structs with caching,
// backed by caarlos0/env and a best-effort .env file via godotenv.
// Each configuration type is parsed once per process; later Load calls
// for the same type return the cached copy.
package config
