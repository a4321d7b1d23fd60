// Package config loads the pokex TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/pokex/config.toml
//  3. If the file doesn't exist, fall back to built-in defaults
//  4. If the file exists but fields are missing, blank or non-positive, use defaults
//
// # Configuration Fields
//
//	api_base        = "https://pokeapi.co/api/v2"  # PokeAPI root
//	limit           = 30                           # listing size
//	concurrency     = 8                            # parallel detail requests
//	timeout_seconds = 10                           # per-request HTTP timeout
//
// # Error Handling
//
// A missing file is not an error. Unreadable files and invalid TOML are
// reported with an "open config", "read config" or "parse config" prefix so
// main can print a useful message before exiting.
package config
