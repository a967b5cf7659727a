// File: error_test.go
// Title: Error Module Tests
// Description: Tests for the error module covering error creation, wrapping,
//              codes, details, and JSON marshaling.
// Author: msto63
// Version: v0.1.0
// Created: 2026-02-10
// Modified: 2026-02-10
//
// Change History:
// - 2026-02-10 v0.1.0: Initial test implementation

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}

	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}

	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}

	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}
}

func TestNewf(t *testing.T) {
	err := Newf("no translation for %q in %s[%s]", "xyz", "sysA", "en")
	want := `no translation for "xyz" in sysA[en]`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
		wantNil bool
		wantMsg string
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper message",
			wantNil: true,
		},
		{
			name:    "wrap standard error",
			err:     errors.New("original error"),
			message: "wrapper message",
			wantMsg: "wrapper message: original error",
		},
		{
			name:    "wrap structured error",
			err:     New("asset missing").WithCode(CodeAssetNotFound),
			message: "wrapper message",
			wantMsg: "wrapper message: asset missing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := Wrap(tt.err, tt.message)

			if tt.wantNil {
				if wrapped != nil {
					t.Errorf("Wrap() = %v, want nil", wrapped)
				}
				return
			}

			if wrapped == nil {
				t.Fatal("Wrap() returned nil")
			}

			if wrapped.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", wrapped.Error(), tt.wantMsg)
			}
		})
	}
}

func TestWrapPreservesCodeAndDetails(t *testing.T) {
	inner := New("asset missing").
		WithCode(CodeAssetNotFound).
		WithDetail("path", "dictionaries.toml")

	wrapped := Wrap(inner, "registry load failed")

	if wrapped.Code() != CodeAssetNotFound {
		t.Errorf("Code() = %v, want %v", wrapped.Code(), CodeAssetNotFound)
	}

	if wrapped.Details()["path"] != "dictionaries.toml" {
		t.Errorf("Details()[path] = %v, want dictionaries.toml", wrapped.Details()["path"])
	}

	if !errors.Is(wrapped, inner) {
		t.Error("errors.Is should find the wrapped cause")
	}
}

func TestWrapTruncatesDeepChains(t *testing.T) {
	var err error = errors.New("root")
	for i := 0; i < MaxChainDepth+5; i++ {
		err = Wrap(err, fmt.Sprintf("layer %d", i))
	}

	structured, ok := err.(*Error)
	if !ok {
		t.Fatal("expected *Error")
	}

	if structured.Unwrap() != nil && chainDepth(structured) > MaxChainDepth+1 {
		t.Errorf("chain depth %d exceeds limit", chainDepth(structured))
	}
}

func TestWithBuilders(t *testing.T) {
	err := New("no translation").
		WithCode(CodeNoTranslation).
		WithOperation("rosetta.Canonical").
		WithDetail("term", "xyz").
		WithDetails(map[string]interface{}{
			"system":  "sysA",
			"dialect": "en",
		})

	if err.Code() != CodeNoTranslation {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeNoTranslation)
	}

	if err.Operation() != "rosetta.Canonical" {
		t.Errorf("Operation() = %q, want %q", err.Operation(), "rosetta.Canonical")
	}

	details := err.Details()
	for _, key := range []string{"term", "system", "dialect"} {
		if _, ok := details[key]; !ok {
			t.Errorf("Details() missing key %q", key)
		}
	}
}

func TestDetailsReturnsCopy(t *testing.T) {
	err := New("test").WithDetail("key", "value")

	details := err.Details()
	details["key"] = "mutated"

	if err.Details()["key"] != "value" {
		t.Error("Details() should return a copy, not the internal map")
	}
}

func TestString(t *testing.T) {
	err := New("lookup failed").
		WithCode(CodeNoTranslation).
		WithOperation("rosetta.Source").
		WithDetail("term", "deep-sleep")

	s := err.String()

	for _, want := range []string{"lookup failed", "NO_TRANSLATION", "rosetta.Source", "term=deep-sleep"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q, missing %q", s, want)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	err := New("asset malformed").
		WithCode(CodeAssetMalformed).
		WithOperation("dictionary.Parse")

	data, jsonErr := json.Marshal(err)
	if jsonErr != nil {
		t.Fatalf("Marshal failed: %v", jsonErr)
	}

	var decoded map[string]interface{}
	if jsonErr := json.Unmarshal(data, &decoded); jsonErr != nil {
		t.Fatalf("Unmarshal failed: %v", jsonErr)
	}

	if decoded["message"] != "asset malformed" {
		t.Errorf("message = %v, want 'asset malformed'", decoded["message"])
	}

	if decoded["code"] != "ASSET_MALFORMED" {
		t.Errorf("code = %v, want ASSET_MALFORMED", decoded["code"])
	}
}

func TestHasCode(t *testing.T) {
	err := New("miss").WithCode(CodeNoTranslation)

	if !HasCode(err, CodeNoTranslation) {
		t.Error("HasCode should match the error's code")
	}

	if HasCode(err, CodeAssetNotFound) {
		t.Error("HasCode should not match a different code")
	}

	if HasCode(errors.New("plain"), CodeNoTranslation) {
		t.Error("HasCode should be false for plain errors")
	}

	wrapped := fmt.Errorf("outer: %w", err)
	if !HasCode(wrapped, CodeNoTranslation) {
		t.Error("HasCode should unwrap standard wrappers")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New("x").WithCode(CodeConfigError)); got != CodeConfigError {
		t.Errorf("GetCode() = %v, want %v", got, CodeConfigError)
	}

	if got := GetCode(errors.New("plain")); got != CodeUnknown {
		t.Errorf("GetCode() = %v, want %v", got, CodeUnknown)
	}
}

func TestRootCause(t *testing.T) {
	root := errors.New("root cause")
	wrapped := Wrap(Wrap(root, "middle"), "outer")

	if got := RootCause(wrapped); got != root {
		t.Errorf("RootCause() = %v, want %v", got, root)
	}
}
