// File: codes_test.go
// Title: Error Code Tests
// Description: Tests for error code definitions and validation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-02-10
// Modified: 2026-02-10
//
// Change History:
// - 2026-02-10 v0.1.0: Initial test implementation

package error

import "testing"

func TestCodeString(t *testing.T) {
	if CodeNoTranslation.String() != "NO_TRANSLATION" {
		t.Errorf("String() = %q, want NO_TRANSLATION", CodeNoTranslation.String())
	}
}

func TestCodeIsValid(t *testing.T) {
	valid := []Code{
		CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeInvalidOperation, CodeValidationFailed,
		CodeAssetNotFound, CodeAssetMalformed,
		CodeConfigError, CodeMissingConfig,
		CodeNoTranslation,
	}

	for _, code := range valid {
		if !code.IsValid() {
			t.Errorf("IsValid() = false for known code %v", code)
		}
	}

	if Code("MADE_UP").IsValid() {
		t.Error("IsValid() = true for unknown code")
	}
}
