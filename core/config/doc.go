// File: doc.go
// Title: Package Documentation for config
// Description: Package config loads hiext settings from TOML or YAML.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial package documentation

// Package config loads configuration files and exposes their values by
// dotted key ("text.trailing").
//
// Overview
//
// The file format is chosen by extension (.yaml/.yml or TOML otherwise).
// Values are looked up in this order: environment variable, file, defaults.
// With the prefix HIEXT the key text.trailing is overridden by
// HIEXT_TEXT_TRAILING; an empty variable counts as unset.
//
//	cfg, err := config.LoadDefault("hiext.toml")
//	trailing := cfg.GetString("text.trailing")
//	size := cfg.GetFloat("markup.strong_size", 14)
//
// LoadDefault with an empty path returns the built-in defaults.
package config
