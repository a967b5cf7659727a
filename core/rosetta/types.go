// File: types.go
// Title: Translation Data Model
// Description: Defines the identifiers and dictionary structures consumed by
//              the translation registry. Dialect dictionaries keep canonical
//              terms in definition order because forward lookups resolve
//              first-match-in-order.
// Author: msto63
// Version: v0.1.0
// Created: 2026-02-14
// Modified: 2026-02-14
//
// Change History:
// - 2026-02-14 v0.1.0: Initial implementation

package rosetta

// SystemType identifies which sub-dictionary of an asset applies,
// e.g. a product or platform short name.
type SystemType string

// ShortName returns the stable key under which the system's dictionary
// is stored in an asset
func (s SystemType) ShortName() string {
	return string(s)
}

// String returns the string form of the system type
func (s SystemType) String() string {
	return string(s)
}

// Dialect selects a vocabulary variant within a system, e.g. a locale
// or a sub-protocol naming convention.
type Dialect string

// String returns the string form of the dialect
func (d Dialect) String() string {
	return string(d)
}

// Synonyms is the ordered list of source terms for a canonical term.
// The first entry is the dialect default returned by reverse lookups
// that have no memoized resolution.
type Synonyms []string

// Default returns the first synonym, or "" for an empty list
func (s Synonyms) Default() string {
	if len(s) == 0 {
		return ""
	}
	return s[0]
}

// Contains reports whether term appears in the list.
// Matching is exact and case-sensitive.
func (s Synonyms) Contains(term string) bool {
	for _, candidate := range s {
		if candidate == term {
			return true
		}
	}
	return false
}

// DialectDict holds the canonical → synonyms table of one dialect.
// Canonical terms are kept in definition order; forward lookups scan
// them in this order and the first match wins, so the order carried
// from the asset file is load-bearing.
type DialectDict struct {
	order    []string
	synonyms map[string]Synonyms
}

// NewDialectDict creates an empty dialect dictionary
func NewDialectDict() *DialectDict {
	return &DialectDict{
		synonyms: make(map[string]Synonyms),
	}
}

// Add appends a canonical term with its synonyms. Re-adding an existing
// canonical term replaces its synonyms but keeps its original position.
func (d *DialectDict) Add(canonical string, synonyms ...string) {
	if _, exists := d.synonyms[canonical]; !exists {
		d.order = append(d.order, canonical)
	}
	d.synonyms[canonical] = Synonyms(synonyms)
}

// Synonyms returns the synonym list for a canonical term
func (d *DialectDict) Synonyms(canonical string) (Synonyms, bool) {
	synonyms, ok := d.synonyms[canonical]
	return synonyms, ok
}

// Canonicals returns the canonical terms in definition order
func (d *DialectDict) Canonicals() []string {
	result := make([]string, len(d.order))
	copy(result, d.order)
	return result
}

// Len returns the number of canonical terms
func (d *DialectDict) Len() int {
	return len(d.order)
}

// Dictionary maps dialect identifiers to their term tables
type Dictionary map[Dialect]*DialectDict

// Asset maps system short names to dictionaries. This is the binding
// output contract of the dictionary loader.
type Asset map[string]Dictionary
