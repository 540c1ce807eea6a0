// Package assetpath resolves asset references found inside definition files.
package assetpath

import "path/filepath"

// Sibling resolves rel against the directory containing base and appends
// suffix. Definition files reference their assets this way: a font pack
// names its fonts without the ".toml" extension, a font names its glyph
// images without the ".png" extension, always relative to the referencing
// file. The result is cleaned lexically; the filesystem is not consulted.
func Sibling(base string, rel string, suffix string) string {
	return filepath.Join(filepath.Dir(base), rel) + suffix
}
