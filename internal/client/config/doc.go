// Package config loads the client configuration from layered sources:
// built-in defaults, an optional JSON file named by -c/-config, REVISTA_*
// environment variables (optionally seeded from a .env file), and finally
// command-line flags. Later sources override earlier ones.
package config
