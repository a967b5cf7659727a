// Package stringx provides string utilities extending the standard library.
//
// Package: stringx
// Title: String Utility Functions
// Description: Implements the blank/empty predicates used across the rosetta
//              library for input validation, with Unicode-aware whitespace
//              handling.
// Author: msto63
// Version: v0.1.0
// Created: 2026-02-12
// Modified: 2026-02-12
//
// Change History:
// - 2026-02-12 v0.1.0: Initial implementation
package stringx
