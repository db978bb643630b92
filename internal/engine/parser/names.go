package parser

import (
	"path/filepath"
	"strings"
)

// ComponentName derives the component name from a file path: the base name
// with its final extension removed. Files sharing a base name in different
// directories map to the same component.
func ComponentName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// NewComponentFile builds the file record for path.
func NewComponentFile(path string) ComponentFile {
	return ComponentFile{Path: path, Name: ComponentName(path)}
}
