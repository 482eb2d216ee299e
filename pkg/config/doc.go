// Package config loads modulify's configuration.
//
// Sources are layered, later ones winning:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user config file, TOML
//  3. MODULIFY_ environment variables, "__" separating nested keys
//  4. explicit overrides, usually command-line flags
package config
