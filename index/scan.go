package index

import (
	"log"
	"os"
	"path/filepath"

	"github.com/gobwas/glob"
	ignore "github.com/sabhiram/go-gitignore"

	"github.com/mage2-ls/mage2-ls/m2"
	"github.com/mage2-ls/mage2-ls/php"
)

// RegistrationFile declares a module and pins its base directory.
const RegistrationFile = "registration.php"

var skipDirs = map[string]struct{}{
	".git":         {},
	"node_modules": {},
	"var":          {},
	"generated":    {},
}

// ScanOptions tune one workspace-root scan.
type ScanOptions struct {
	Ignore []glob.Glob
}

// ScanRoot walks one workspace root and registers every module it declares.
// Entries are inserted as they are found, so queries racing the scan see a
// partial but growing registry. Unreadable entries are skipped, not fatal.
func (ix *Indexer) ScanRoot(root string, opts ScanOptions) error {
	gi := loadGitignore(root)

	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil // skip unreadable entries
		}

		name := d.Name()
		if d.IsDir() {
			if path == root {
				return nil
			}
			if _, skip := skipDirs[name]; skip {
				return filepath.SkipDir
			}
			// vendor holds installed modules even when gitignored
			if name == "vendor" {
				return nil
			}
			if rel := relSlash(root, path); rel != "" && ignored(rel, gi, opts.Ignore) {
				return filepath.SkipDir
			}
			return nil
		}

		if name != RegistrationFile {
			return nil
		}
		if rel := relSlash(root, path); rel != "" && ignored(rel, gi, opts.Ignore) {
			return nil
		}

		source, err := os.ReadFile(path)
		if err != nil {
			log.Printf("scan: read %s: %v", path, err)
			return nil
		}
		module, ok := php.RegistrationModule(source)
		if !ok {
			return nil
		}
		prefix, ok := m2.ParseName(module)
		if !ok {
			return nil
		}
		dir := filepath.Dir(path)
		ix.AddModule(prefix, dir)
		log.Printf("scan: module %s -> %s", prefix, dir)
		return nil
	})
}

func relSlash(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return ""
	}
	return filepath.ToSlash(rel)
}

func ignored(rel string, gi *ignore.GitIgnore, globs []glob.Glob) bool {
	if gi != nil && gi.MatchesPath(rel) {
		return true
	}
	for _, g := range globs {
		if g.Match(rel) {
			return true
		}
	}
	return false
}

func loadGitignore(root string) *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		return nil
	}
	return gi
}
