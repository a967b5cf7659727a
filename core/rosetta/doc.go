// Package rosetta provides the bidirectional term-translation registry.
//
// Package: rosetta
// Title: Term Translation Registry
// Description: This package implements a registry that translates between
//              system-specific source terms and canonical terms across
//              dialects. A registry is loaded once with the dictionary of a
//              system and then serves many lookups; each successful
//              resolution is memoized per dialect so that reverse lookups
//              return the term actually observed rather than the dictionary
//              default.
// Author: msto63
// Version: v0.1.0
// Created: 2026-02-14
// Modified: 2026-02-14
//
// Change History:
// - 2026-02-14 v0.1.0: Initial implementation
//
// The registry is an explicitly constructed instance with a well-defined
// lifetime; callers that need shared process-wide translation state own
// that sharing themselves and pass the instance to its consumers.
//
// Usage:
//   import "github.com/msto63/rosetta/core/rosetta"
//
//   registry := rosetta.NewRegistry()
//   if err := registry.Load("sysA", asset); err != nil {
//     // asset missing the system, or empty
//   }
//
//   canonical, err := registry.Canonical("move", "en") // "go"
//   source, err := registry.Source("go", "en")         // "move", memoized
//
// Dictionary assets are produced by the core/dictionary package; the
// nested mapping shape (system → dialect → canonical → ordered synonym
// list) is the binding contract between the two packages.
package rosetta
