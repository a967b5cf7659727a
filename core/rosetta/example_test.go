// File: example_test.go
// Title: Translation Registry Examples
// Description: Example usage patterns for the translation registry,
//              demonstrating forward/reverse lookups and memoization.
// Author: msto63
// Version: v0.1.0
// Created: 2026-02-14
// Modified: 2026-02-14
//
// Change History:
// - 2026-02-14 v0.1.0: Initial implementation

package rosetta

import "fmt"

// ExampleRegistry demonstrates the forward-then-reverse lookup contract
func ExampleRegistry() {
	en := NewDialectDict()
	en.Add("go", "go", "move")

	registry := NewRegistry()
	if err := registry.Load("sysA", Asset{"sysA": Dictionary{"en": en}}); err != nil {
		fmt.Println("load failed:", err)
		return
	}

	canonical, _ := registry.Canonical("move", "en")
	fmt.Println("canonical:", canonical)

	// The forward resolution above pinned "move"; without it the
	// reverse lookup would return the default "go".
	source, _ := registry.Source("go", "en")
	fmt.Println("source:", source)

	// Output:
	// canonical: go
	// source: move
}

// ExampleRegistry_Source demonstrates the dictionary default
func ExampleRegistry_Source() {
	en := NewDialectDict()
	en.Add("stop", "stop", "halt", "freeze")

	registry := NewRegistry()
	if err := registry.Load("sysA", Asset{"sysA": Dictionary{"en": en}}); err != nil {
		fmt.Println("load failed:", err)
		return
	}

	source, _ := registry.Source("stop", "en")
	fmt.Println("source:", source)

	// Output:
	// source: stop
}
