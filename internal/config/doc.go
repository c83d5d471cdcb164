// Package config loads, normalizes, and validates wordstat configuration.
//
// Configuration is optional. Load starts from repository defaults, overlays a
// TOML file when one is found (an explicit path, ~/.config/wordstat/config.toml,
// or ./wordstat.toml), then canonicalizes and validates the result so callers
// receive lowercase log settings and a sane report size. No environment
// variables are consulted.
package config
