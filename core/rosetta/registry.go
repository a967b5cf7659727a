// File: registry.go
// Title: Translation Registry Implementation
// Description: Implements the bidirectional term-translation registry.
//              Forward lookups resolve a dialect-specific source term to its
//              canonical form; reverse lookups resolve a canonical term back
//              to a source term, preferring the term observed by the most
//              recent forward resolution over the dictionary default.
// Author: msto63
// Version: v0.1.0
// Created: 2026-02-14
// Modified: 2026-02-14
//
// Change History:
// - 2026-02-14 v0.1.0: Initial implementation

package rosetta

import (
	"sort"
	"sync"

	roserror "github.com/msto63/rosetta/core/error"
	"github.com/msto63/rosetta/utils/stringx"
)

// Registry translates terms between dialect-specific source forms and
// canonical forms for one system. Memoization of resolutions is part of
// the lookup contract, not an incidental cache: a successful forward
// resolution pins the source term that later reverse lookups for the
// same canonical term and dialect return.
//
// A Registry is safe for concurrent use. Lookups mutate the memo, so
// they take the write lock; Load is mutually exclusive with in-flight
// lookups.
type Registry struct {
	mu         sync.RWMutex
	system     SystemType
	dictionary Dictionary
	translated map[Dialect]map[string]string
}

// NewRegistry creates an empty registry. Load must be called before
// any lookup.
func NewRegistry() *Registry {
	return &Registry{}
}

// Load configures the registry for a system from a parsed asset.
// Any previously loaded dictionary and all memoized resolutions are
// discarded: this is a full reset, not a merge.
func (r *Registry) Load(system SystemType, asset Asset) error {
	if stringx.IsBlank(system.ShortName()) {
		return roserror.New("system type cannot be empty").
			WithCode(roserror.CodeInvalidInput).
			WithOperation("rosetta.Load")
	}

	if len(asset) == 0 {
		return roserror.New("dictionary asset is empty").
			WithCode(roserror.CodeInvalidInput).
			WithOperation("rosetta.Load").
			WithDetail("system", system.ShortName())
	}

	dictionary, ok := asset[system.ShortName()]
	if !ok {
		return roserror.Newf("no dictionary for system %q in asset", system.ShortName()).
			WithCode(roserror.CodeConfigError).
			WithOperation("rosetta.Load").
			WithDetail("system", system.ShortName())
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.system = system
	r.dictionary = dictionary
	r.translated = make(map[Dialect]map[string]string)

	return nil
}

// Canonical resolves a dialect-specific source term to its canonical
// form. An empty source term passes through unchanged without touching
// the dictionary or the memo; optional fields stay optional.
//
// On a match the resolution is memoized, so a subsequent Source call
// for the same canonical term and dialect returns exactly this source
// term rather than the dictionary default.
func (r *Registry) Canonical(source string, dialect Dialect) (string, error) {
	if source == "" {
		return "", nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.dictionary == nil {
		return "", r.notLoaded("rosetta.Canonical")
	}

	dialectDict, ok := r.dictionary[dialect]
	if !ok {
		return "", r.noTranslation("rosetta.Canonical", source, dialect)
	}

	// First match in definition order wins, also when a term appears
	// as a synonym of more than one canonical entry.
	for _, canonical := range dialectDict.order {
		if dialectDict.synonyms[canonical].Contains(source) {
			r.memoize(dialect, canonical, source)
			return canonical, nil
		}
	}

	return "", r.noTranslation("rosetta.Canonical", source, dialect)
}

// Source resolves a canonical term to a dialect-specific source term.
// A memoized resolution takes priority; otherwise the first synonym of
// the canonical term is returned and memoized as the sticky default.
func (r *Registry) Source(canonical string, dialect Dialect) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.dictionary == nil {
		return "", r.notLoaded("rosetta.Source")
	}

	if memo, ok := r.translated[dialect]; ok {
		if source, ok := memo[canonical]; ok {
			return source, nil
		}
	}

	if dialectDict, ok := r.dictionary[dialect]; ok {
		if synonyms, ok := dialectDict.Synonyms(canonical); ok && len(synonyms) > 0 {
			source := synonyms.Default()
			r.memoize(dialect, canonical, source)
			return source, nil
		}
	}

	return "", roserror.Newf("no source term for %q in %s[%s]", canonical, r.system.ShortName(), dialect).
		WithCode(roserror.CodeNoTranslation).
		WithOperation("rosetta.Source").
		WithDetail("term", canonical).
		WithDetail("system", r.system.ShortName()).
		WithDetail("dialect", dialect.String())
}

// CanonicalOr resolves a source term and falls back to the given term
// when no translation exists. Errors other than a translation miss are
// still returned.
func (r *Registry) CanonicalOr(source string, dialect Dialect, fallback string) (string, error) {
	canonical, err := r.Canonical(source, dialect)
	if err != nil {
		if IsNoTranslation(err) {
			return fallback, nil
		}
		return "", err
	}
	return canonical, nil
}

// SourceOr resolves a canonical term and falls back to the given term
// when no translation exists. Errors other than a translation miss are
// still returned.
func (r *Registry) SourceOr(canonical string, dialect Dialect, fallback string) (string, error) {
	source, err := r.Source(canonical, dialect)
	if err != nil {
		if IsNoTranslation(err) {
			return fallback, nil
		}
		return "", err
	}
	return source, nil
}

// System returns the system type the registry was loaded for
func (r *Registry) System() SystemType {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.system
}

// Loaded reports whether a dictionary has been loaded
func (r *Registry) Loaded() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.dictionary != nil
}

// Dialects returns the dialects of the loaded dictionary, sorted
func (r *Registry) Dialects() []Dialect {
	r.mu.RLock()
	defer r.mu.RUnlock()

	dialects := make([]Dialect, 0, len(r.dictionary))
	for dialect := range r.dictionary {
		dialects = append(dialects, dialect)
	}

	sort.Slice(dialects, func(i, j int) bool { return dialects[i] < dialects[j] })
	return dialects
}

// HasDialect reports whether the loaded dictionary knows a dialect
func (r *Registry) HasDialect(dialect Dialect) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.dictionary[dialect]
	return ok
}

// Memoized returns a copy of the memoized resolutions for a dialect.
// The copy reflects the memo at call time; mutating it has no effect
// on the registry.
func (r *Registry) Memoized(dialect Dialect) map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	memo := r.translated[dialect]
	result := make(map[string]string, len(memo))
	for canonical, source := range memo {
		result[canonical] = source
	}
	return result
}

// memoize records a resolution; caller must hold the write lock
func (r *Registry) memoize(dialect Dialect, canonical, source string) {
	if r.translated[dialect] == nil {
		r.translated[dialect] = make(map[string]string)
	}
	r.translated[dialect][canonical] = source
}

// noTranslation builds the forward-lookup miss error; caller must hold a lock
func (r *Registry) noTranslation(operation, term string, dialect Dialect) error {
	return roserror.Newf("no translation for %q in %s[%s]", term, r.system.ShortName(), dialect).
		WithCode(roserror.CodeNoTranslation).
		WithOperation(operation).
		WithDetail("term", term).
		WithDetail("system", r.system.ShortName()).
		WithDetail("dialect", dialect.String())
}

// notLoaded builds the lookup-before-Load error
func (r *Registry) notLoaded(operation string) error {
	return roserror.New("registry has no dictionary loaded").
		WithCode(roserror.CodeInvalidOperation).
		WithOperation(operation)
}

// IsNoTranslation reports whether an error is a translation miss, as
// opposed to a load or configuration failure
func IsNoTranslation(err error) bool {
	return roserror.HasCode(err, roserror.CodeNoTranslation)
}
