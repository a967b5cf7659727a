// Package dictionary loads dictionary assets for the translation registry.
//
// Package: dictionary
// Title: Dictionary Asset Loader
// Description: This package locates and parses dictionary assets from TOML
//              and YAML documents into the nested mapping shape the registry
//              consumes (system → dialect → canonical term → ordered synonym
//              list). Discovery prefers a file on disk and falls back to the
//              assets packaged in the dictionaries package.
// Author: msto63
// Version: v0.1.0
// Created: 2026-02-16
// Modified: 2026-02-16
//
// Change History:
// - 2026-02-16 v0.1.0: Initial implementation with TOML/YAML support
//
// Canonical-term order in the parsed asset follows the document, not Go
// map iteration: forward lookups in the registry are first-match-in-order
// and the loader is where that order enters the process.
//
// Usage:
//   import "github.com/msto63/rosetta/core/dictionary"
//
//   registry, err := dictionary.NewRegistry("sysA", "dictionaries.toml")
//   if err != nil {
//     // CodeAssetNotFound, CodeAssetMalformed, or CodeConfigError
//   }
package dictionary
