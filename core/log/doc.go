// File: doc.go
// Title: Package Documentation for log
// Description: Package log provides structured logging for hiext.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial package documentation

// Package log provides a structured logger with levels, fields and named
// components, written through zerolog as JSON lines or console output.
//
// Usage:
//
//	logger := hixlog.NewWithConfig(hixlog.Config{
//		Level:  hixlog.LevelDebug,
//		Format: hixlog.FormatConsole,
//	})
//	logger.WithName("markup").Debug("rendered", hixlog.Field("bytes", 42))
//	logger.LogError(err)
//
// A package-level default logger backs Debug, Info, Warn and Error;
// SetDefault replaces it.
package log
