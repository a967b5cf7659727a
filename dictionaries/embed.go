// Package dictionaries embeds the default dictionary assets shipped with
// the library. The loader falls back to these packaged assets when no
// dictionary file is found on disk.
//
// Usage:
//
//	asset, err := dictionary.Discover("")
package dictionaries

import "embed"

//go:embed *.toml
var FS embed.FS
