// Package script finds class references inside JavaScript and TypeScript
// string literals, where PHP class names appear with escaped backslashes,
// e.g. 'Vendor\\Module\\Model\\Product'.
package script

import (
	protocol "github.com/gluax-lang/lsp"
	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
	tree_sitter_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"

	"github.com/mage2-ls/mage2-ls/m2"
)

var (
	jsLanguage = sitter.NewLanguage(tree_sitter_javascript.Language())
	tsLanguage = sitter.NewLanguage(tree_sitter_typescript.LanguageTypescript())
)

func ExtractJS(source []byte, pos protocol.Position) (m2.Reference, bool) {
	return extract(jsLanguage, source, pos)
}

func ExtractTS(source []byte, pos protocol.Position) (m2.Reference, bool) {
	return extract(tsLanguage, source, pos)
}

func extract(language *sitter.Language, source []byte, pos protocol.Position) (m2.Reference, bool) {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(language)

	tree := parser.Parse(source, nil)
	if tree == nil {
		return m2.Reference{}, false
	}
	defer tree.Close()

	point := sitter.Point{Row: uint(pos.Line), Column: uint(pos.Character)}
	node := tree.RootNode().NamedDescendantForPointRange(point, point)

	for n := node; n != nil; n = n.Parent() {
		switch n.Kind() {
		case "string_fragment", "string", "template_string":
			return m2.ParseEmbeddedReference(nodeText(n, source))
		case "statement_block", "program":
			return m2.Reference{}, false
		}
	}
	return m2.Reference{}, false
}

func nodeText(n *sitter.Node, source []byte) string {
	return string(source[n.StartByte():n.EndByte()])
}
