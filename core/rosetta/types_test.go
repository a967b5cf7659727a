// File: types_test.go
// Title: Data Model Tests
// Description: Tests for synonym lists and dialect dictionaries, in
//              particular the definition-order guarantee.
// Author: msto63
// Version: v0.1.0
// Created: 2026-02-14
// Modified: 2026-02-14
//
// Change History:
// - 2026-02-14 v0.1.0: Initial test implementation

package rosetta

import (
	"fmt"
	"reflect"
	"testing"
)

func TestSynonyms(t *testing.T) {
	synonyms := Synonyms{"stop", "halt", "freeze"}

	if synonyms.Default() != "stop" {
		t.Errorf("Default() = %q, want stop", synonyms.Default())
	}

	if !synonyms.Contains("halt") {
		t.Error("Contains(halt) = false")
	}

	if synonyms.Contains("Halt") {
		t.Error("matching must be case-sensitive")
	}

	if Synonyms(nil).Default() != "" {
		t.Error("Default() of empty list should be empty")
	}
}

func TestDialectDictOrder(t *testing.T) {
	dd := NewDialectDict()
	for i := 0; i < 32; i++ {
		dd.Add(fmt.Sprintf("term-%02d", i), fmt.Sprintf("syn-%02d", i))
	}

	want := make([]string, 32)
	for i := range want {
		want[i] = fmt.Sprintf("term-%02d", i)
	}

	if got := dd.Canonicals(); !reflect.DeepEqual(got, want) {
		t.Errorf("Canonicals() = %v, want definition order", got)
	}

	if dd.Len() != 32 {
		t.Errorf("Len() = %d, want 32", dd.Len())
	}
}

func TestDialectDictReAddKeepsPosition(t *testing.T) {
	dd := NewDialectDict()
	dd.Add("first", "a")
	dd.Add("second", "b")
	dd.Add("first", "a", "a2")

	if got := dd.Canonicals(); !reflect.DeepEqual(got, []string{"first", "second"}) {
		t.Errorf("Canonicals() = %v, want [first second]", got)
	}

	synonyms, ok := dd.Synonyms("first")
	if !ok {
		t.Fatal("Synonyms(first) not found")
	}
	if !reflect.DeepEqual([]string(synonyms), []string{"a", "a2"}) {
		t.Errorf("Synonyms(first) = %v, want replaced list", synonyms)
	}
}

func TestCanonicalsReturnsCopy(t *testing.T) {
	dd := NewDialectDict()
	dd.Add("term", "syn")

	canonicals := dd.Canonicals()
	canonicals[0] = "mutated"

	if dd.Canonicals()[0] != "term" {
		t.Error("Canonicals() must return a copy")
	}
}

func TestSystemTypeShortName(t *testing.T) {
	if SystemType("sysA").ShortName() != "sysA" {
		t.Errorf("ShortName() = %q, want sysA", SystemType("sysA").ShortName())
	}
}
