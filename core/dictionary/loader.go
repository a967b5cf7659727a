// File: loader.go
// Title: Dictionary Asset Loader
// Description: Parses dictionary assets from TOML and YAML documents into
//              the nested mapping the translation registry consumes.
//              Canonical-term definition order is carried from the document
//              because forward lookups resolve first-match-in-order.
// Author: msto63
// Version: v0.1.0
// Created: 2026-02-16
// Modified: 2026-02-16
//
// Change History:
// - 2026-02-16 v0.1.0: Initial implementation with TOML/YAML support

package dictionary

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	roserror "github.com/msto63/rosetta/core/error"
	"github.com/msto63/rosetta/core/rosetta"
)

// Format represents the dictionary file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto auto-detects format from the file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// FormatForPath returns the format implied by a file extension.
// Unrecognized extensions default to TOML.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// LoadFile reads and parses a dictionary file, detecting the format
// from the file extension
func LoadFile(path string) (rosetta.Asset, error) {
	return LoadFileWithFormat(path, FormatAuto)
}

// LoadFileWithFormat reads and parses a dictionary file with an
// explicit format
func LoadFileWithFormat(path string, format Format) (rosetta.Asset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, roserror.Newf("dictionary file %s not found", path).
				WithCode(roserror.CodeAssetNotFound).
				WithOperation("dictionary.LoadFile").
				WithDetail("path", path)
		}
		return nil, roserror.Wrap(err, "failed to read dictionary file").
			WithCode(roserror.CodeAssetNotFound).
			WithOperation("dictionary.LoadFile").
			WithDetail("path", path)
	}

	if format == FormatAuto {
		format = FormatForPath(path)
	}

	asset, err := Parse(data, format)
	if err != nil {
		return nil, roserror.Wrap(err, "failed to parse dictionary file").
			WithDetail("path", path)
	}

	return asset, nil
}

// Parse parses a dictionary document into an asset. The document shape
// is system → dialect → canonical term → ordered synonym list.
func Parse(data []byte, format Format) (rosetta.Asset, error) {
	switch format {
	case FormatYAML:
		return parseYAML(data)
	default:
		return parseTOML(data)
	}
}

// parseTOML parses a TOML dictionary document. toml.MetaData keeps keys
// in order of appearance; that order becomes the canonical-term order.
func parseTOML(data []byte) (rosetta.Asset, error) {
	var raw map[string]map[string]map[string][]string
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, roserror.Wrap(err, "malformed TOML dictionary").
			WithCode(roserror.CodeAssetMalformed).
			WithOperation("dictionary.Parse")
	}

	asset := make(rosetta.Asset, len(raw))

	for _, key := range md.Keys() {
		// Only system.dialect.canonical keys carry entries; shorter
		// keys are the enclosing table headers.
		if len(key) != 3 {
			continue
		}

		system, dialect, canonical := key[0], key[1], key[2]
		synonyms := raw[system][dialect][canonical]

		if err := validateEntry(system, dialect, canonical, synonyms); err != nil {
			return nil, err
		}

		dictionary, ok := asset[system]
		if !ok {
			dictionary = make(rosetta.Dictionary)
			asset[system] = dictionary
		}

		dialectDict, ok := dictionary[rosetta.Dialect(dialect)]
		if !ok {
			dialectDict = rosetta.NewDialectDict()
			dictionary[rosetta.Dialect(dialect)] = dialectDict
		}

		dialectDict.Add(canonical, synonyms...)
	}

	return asset, nil
}

// parseYAML parses a YAML dictionary document. The yaml.Node tree keeps
// mapping keys in document order; decoding into plain maps would lose it.
func parseYAML(data []byte) (rosetta.Asset, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, roserror.Wrap(err, "malformed YAML dictionary").
			WithCode(roserror.CodeAssetMalformed).
			WithOperation("dictionary.Parse")
	}

	asset := make(rosetta.Asset)

	if doc.Kind == 0 || len(doc.Content) == 0 {
		// Empty document parses to an empty asset
		return asset, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, malformedYAML("top level must be a mapping of systems", root)
	}

	for i := 0; i < len(root.Content)-1; i += 2 {
		systemNode, dictNode := root.Content[i], root.Content[i+1]
		if dictNode.Kind != yaml.MappingNode {
			return nil, malformedYAML("system value must be a mapping of dialects", dictNode)
		}

		dictionary := make(rosetta.Dictionary)
		asset[systemNode.Value] = dictionary

		for j := 0; j < len(dictNode.Content)-1; j += 2 {
			dialectNode, termsNode := dictNode.Content[j], dictNode.Content[j+1]
			if termsNode.Kind != yaml.MappingNode {
				return nil, malformedYAML("dialect value must be a mapping of canonical terms", termsNode)
			}

			dialectDict := rosetta.NewDialectDict()
			dictionary[rosetta.Dialect(dialectNode.Value)] = dialectDict

			for k := 0; k < len(termsNode.Content)-1; k += 2 {
				canonicalNode, synonymsNode := termsNode.Content[k], termsNode.Content[k+1]
				if synonymsNode.Kind != yaml.SequenceNode {
					return nil, malformedYAML("synonyms must be a sequence of strings", synonymsNode)
				}

				var synonyms []string
				if err := synonymsNode.Decode(&synonyms); err != nil {
					return nil, roserror.Wrap(err, "malformed synonym list").
						WithCode(roserror.CodeAssetMalformed).
						WithOperation("dictionary.Parse").
						WithDetail("line", synonymsNode.Line)
				}

				if err := validateEntry(systemNode.Value, dialectNode.Value, canonicalNode.Value, synonyms); err != nil {
					return nil, err
				}

				dialectDict.Add(canonicalNode.Value, synonyms...)
			}
		}
	}

	return asset, nil
}

// validateEntry rejects canonical terms with empty synonym lists; such
// entries have no default and would break reverse lookups
func validateEntry(system, dialect, canonical string, synonyms []string) error {
	if len(synonyms) == 0 {
		return roserror.Newf("empty synonym list for %q in %s[%s]", canonical, system, dialect).
			WithCode(roserror.CodeValidationFailed).
			WithOperation("dictionary.Parse").
			WithDetail("term", canonical).
			WithDetail("system", system).
			WithDetail("dialect", dialect)
	}
	return nil
}

// malformedYAML builds a structural error carrying the document line
func malformedYAML(message string, node *yaml.Node) error {
	return roserror.New(message).
		WithCode(roserror.CodeAssetMalformed).
		WithOperation("dictionary.Parse").
		WithDetail("line", node.Line)
}
