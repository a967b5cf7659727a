// Package log provides structured logging for the rosetta library.
//
// Package: log
// Title: Rosetta Structured Logging
// Description: This package implements a lightweight structured logger with
//              levels, contextual fields, correlation IDs, and pluggable
//              text/JSON output. Loggers are explicit instances passed to
//              their consumers; there is no package-level default logger.
// Author: msto63
// Version: v0.1.0
// Created: 2026-02-12
// Modified: 2026-02-12
//
// Change History:
// - 2026-02-12 v0.1.0: Initial implementation
//
// Usage:
//   import "github.com/msto63/rosetta/core/log"
//
//   logger := log.NewWithConfig(log.Config{
//     Level:  log.LevelDebug,
//     Format: log.FormatJSON,
//     Name:   "rosetta-cli",
//   })
//
//   logger = logger.WithCorrelationID(correlationID)
//   logger.Info("dictionary loaded", log.Fields{
//     "system":   "sysA",
//     "dialects": 3,
//   })
package log
