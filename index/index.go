// Package index owns the shared state behind definition queries: the module
// registry mapping namespace prefixes to directories, and the memoizing class
// index mapping qualified names to parsed symbol tables.
package index

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/mage2-ls/mage2-ls/common"
	"github.com/mage2-ls/mage2-ls/m2"
	"github.com/mage2-ls/mage2-ls/php"
)

var (
	// ErrNoModule means no registered module prefix is an ancestor of the
	// requested name.
	ErrNoModule = errors.New("no module owns namespace")
	// ErrFileMissing means a module matched but the candidate class file does
	// not exist.
	ErrFileMissing = errors.New("class file missing")
	// ErrParseFailed means the candidate file exists but does not declare the
	// expected class.
	ErrParseFailed = errors.New("class file did not parse")
)

// DefaultClassExtension is the extension forced onto candidate class files.
const DefaultClassExtension = ".php"

// Indexer is shared between the scan workers and the request loop. One mutex
// guards both maps; Resolve holds it across the parse so the same name is
// never parsed twice concurrently.
type Indexer struct {
	mu       sync.Mutex
	modules  map[string]string // namespace prefix -> module base directory
	classes  map[string]*m2.SymbolTable
	classExt string
}

func New() *Indexer {
	return &Indexer{
		modules:  make(map[string]string),
		classes:  make(map[string]*m2.SymbolTable),
		classExt: DefaultClassExtension,
	}
}

func (ix *Indexer) SetClassExtension(ext string) {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	ix.classExt = ext
}

// AddModule records that the module rooted at dir owns the namespace prefix.
// Insertion is additive; entries are never removed.
func (ix *Indexer) AddModule(prefix m2.Name, dir string) {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	ix.modules[prefix.String()] = dir
}

// Modules returns a snapshot of the registry.
func (ix *Indexer) Modules() map[string]string {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	out := make(map[string]string, len(ix.modules))
	for prefix, dir := range ix.modules {
		out[prefix] = dir
	}
	return out
}

// Resolve returns the symbol table for name, parsing its class file on first
// use. Successes are cached for the process lifetime; failures are not.
func (ix *Indexer) Resolve(name m2.Name) (*m2.SymbolTable, error) {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	key := name.String()
	if table, ok := ix.classes[key]; ok {
		return table, nil
	}

	path, err := ix.candidatePathLocked(name)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFileMissing, path)
	}
	table, err := php.Parse(path, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseFailed, err)
	}
	ix.classes[key] = table
	return table, nil
}

// Definition resolves a reference to the span of its definition. A resolved
// class whose requested member is unknown still answers with the class span.
func (ix *Indexer) Definition(ref m2.Reference) (common.Span, bool) {
	table, err := ix.Resolve(ref.Class)
	if err != nil {
		return common.Span{}, false
	}
	ix.reinsert(ref.Class, table)

	switch ref.Kind {
	case m2.RefClass:
		return table.Span, true
	case m2.RefMethod:
		if sym, ok := table.Method(ref.Member); ok {
			return sym.Span, true
		}
		return table.Span, true
	case m2.RefConst:
		if sym, ok := table.Constant(ref.Member); ok {
			return sym.Span, true
		}
		return table.Span, true
	}
	return common.Span{}, false
}

// reinsert commits a resolved table under its name. Today the cache never
// evicts, so this overwrites an equal entry.
func (ix *Indexer) reinsert(name m2.Name, table *m2.SymbolTable) {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	ix.classes[name.String()] = table
}
