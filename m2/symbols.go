package m2

import "github.com/mage2-ls/mage2-ls/common"

// Symbol is a named member of a class together with its definition span.
type Symbol struct {
	Name string
	Span common.Span
}

// SymbolTable is the parsed shape of one class-like definition: where the
// definition lives and where each of its methods and constants is declared.
// Tables are built once by the PHP parser and never mutated afterwards.
type SymbolTable struct {
	Path      string
	Span      common.Span
	Methods   map[string]Symbol
	Constants map[string]Symbol
}

func NewSymbolTable(path string, span common.Span) *SymbolTable {
	return &SymbolTable{
		Path:      path,
		Span:      span,
		Methods:   make(map[string]Symbol),
		Constants: make(map[string]Symbol),
	}
}

func (t *SymbolTable) Method(name string) (Symbol, bool) {
	sym, ok := t.Methods[name]
	return sym, ok
}

func (t *SymbolTable) Constant(name string) (Symbol, bool) {
	sym, ok := t.Constants[name]
	return sym, ok
}
