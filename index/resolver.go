package index

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mage2-ls/mage2-ls/m2"
)

// candidatePathLocked maps a qualified name to the file expected to define
// it. Segments are stripped off the right one at a time, so the longest
// registered prefix wins and the suffix grows only when no module matches.
// Callers hold ix.mu.
func (ix *Indexer) candidatePathLocked(name m2.Name) (string, error) {
	segments := name.Segments()
	var suffix []string

	for end := len(segments) - 1; end >= 0; end-- {
		suffix = append(suffix, segments[end])
		prefix := strings.Join(segments[:end], m2.Separator)
		dir, ok := ix.modules[prefix]
		if !ok {
			continue
		}
		// suffix accumulated right-to-left; restore document order
		parts := make([]string, 0, len(suffix)+1)
		parts = append(parts, dir)
		for i := len(suffix) - 1; i >= 0; i-- {
			parts = append(parts, suffix[i])
		}
		return forceExtension(filepath.Join(parts...), ix.classExt), nil
	}
	return "", fmt.Errorf("%w: %s", ErrNoModule, name)
}

// forceExtension replaces whatever extension the last path segment carries
// with ext: Widget -> Widget.php, but also Foo.bar -> Foo.php.
func forceExtension(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
