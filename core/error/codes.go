// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error
//              classification across the rosetta library. Codes enable
//              structured error handling and make dictionary problems
//              diagnosable without source inspection.
// Author: msto63
// Version: v0.1.0
// Created: 2026-02-10
// Modified: 2026-02-10
//
// Change History:
// - 2026-02-10 v0.1.0: Initial implementation with core error codes

package error

// Code represents a structured error code for categorizing errors
type Code string

// Core error codes for the rosetta library
const (
	// Generic codes
	CodeUnknown          Code = "UNKNOWN"
	CodeInternal         Code = "INTERNAL"
	CodeNotFound         Code = "NOT_FOUND"
	CodeInvalidInput     Code = "INVALID_INPUT"
	CodeInvalidOperation Code = "INVALID_OPERATION"
	CodeValidationFailed Code = "VALIDATION_FAILED"

	// Dictionary assets
	CodeAssetNotFound  Code = "ASSET_NOT_FOUND"
	CodeAssetMalformed Code = "ASSET_MALFORMED"

	// Configuration and registry load
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"

	// Translation lookups
	CodeNoTranslation Code = "NO_TRANSLATION"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput, CodeInvalidOperation, CodeValidationFailed,
		CodeAssetNotFound, CodeAssetMalformed,
		CodeConfigError, CodeMissingConfig,
		CodeNoTranslation:
		return true
	default:
		return false
	}
}
