// File: defaults.go
// Title: Default Configuration Values
// Description: Default settings and environment prefix of the hiext tools.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial defaults

package config

// EnvPrefix prefixes the environment overrides, e.g. HIEXT_LOG_LEVEL
const EnvPrefix = "HIEXT"

// Defaults returns a fresh copy of the default settings
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"log": map[string]interface{}{
			"level":    "info",
			"format":   "console",
			"no_color": false,
		},
		"text": map[string]interface{}{
			"trailing":        "...",
			"truncate_length": 10,
			"date_format":     "yyyy-MM-dd'T'HH:mm:ssZZZZ",
			"locale":          "und",
			"time_zone":       "Local",
		},
		"markup": map[string]interface{}{
			"renderer":     "html",
			"strong_size":  14.0,
			"strong_color": "#000000",
		},
	}
}

// LoadDefault loads filePath layered over Defaults with the HIEXT
// environment overrides. An empty path yields the defaults alone.
func LoadDefault(filePath string) (*Config, error) {
	options := LoadOptions{
		Format:    FormatAuto,
		EnvPrefix: EnvPrefix,
		Defaults:  Defaults(),
	}
	if filePath == "" {
		return New(options), nil
	}
	return LoadWithOptions(filePath, options)
}
