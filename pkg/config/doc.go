// Package config loads typed configuration structs from environment
// variables (and an optional .env file) through caarlos0/env, caching one
// parsed value per struct type.
package config
