// Package error provides structured error handling for the rosetta library.
//
// Package: error
// Title: Rosetta Error Handling Framework
// Description: This package implements a structured error handling system with
//              error codes, wrapped causes, operations, and key-value details.
//              It provides a foundation for consistent error handling across
//              the registry, the dictionary loader, and the CLI, and keeps
//              misconfigured dictionaries diagnosable from the error alone.
// Author: msto63
// Version: v0.1.0
// Created: 2026-02-10
// Modified: 2026-02-10
//
// Change History:
// - 2026-02-10 v0.1.0: Initial implementation with contextual errors and codes
//
// Features:
// - Contextual error wrapping with additional metadata
// - Structured error codes for consistent classification
// - Chainable builders for operation and detail context
// - JSON marshaling for structured logging
//
// Usage:
//   import "github.com/msto63/rosetta/core/error"
//
//   // Create a new error with context
//   err := error.New("dictionary file not found").
//     WithCode(error.CodeAssetNotFound).
//     WithOperation("dictionary.LoadFile").
//     WithDetail("path", "dictionaries.toml")
//
//   // Wrap an existing error with context
//   wrapped := error.Wrap(err, "registry load failed").
//     WithDetail("system", "sysA")
//
//   // Check error codes
//   if error.HasCode(err, error.CodeNoTranslation) {
//     // Supply a fallback term
//   }
package error
