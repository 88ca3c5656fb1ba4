// Package xml finds class references in Magento XML configuration: attribute
// values like class="Vendor\Module\Block\Widget" and element text like
// <backend_model>Vendor\Module\Model\Config::getValue</backend_model>.
package xml

import (
	protocol "github.com/gluax-lang/lsp"
	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_xml "github.com/tree-sitter-grammars/tree-sitter-xml/bindings/go"

	"github.com/mage2-ls/mage2-ls/m2"
)

var xmlLanguage = sitter.NewLanguage(tree_sitter_xml.LanguageXML())

// Extract returns the reference under the cursor, if the cursor sits on an
// attribute value or text node carrying a qualified class name.
func Extract(source []byte, pos protocol.Position) (m2.Reference, bool) {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(xmlLanguage)

	tree := parser.Parse(source, nil)
	if tree == nil {
		return m2.Reference{}, false
	}
	defer tree.Close()

	point := sitter.Point{Row: uint(pos.Line), Column: uint(pos.Character)}
	node := tree.RootNode().NamedDescendantForPointRange(point, point)

	for n := node; n != nil; n = n.Parent() {
		switch n.Kind() {
		case "AttValue", "CharData":
			return m2.ParseEmbeddedReference(nodeText(n, source))
		case "element", "document":
			return m2.Reference{}, false
		}
	}
	return m2.Reference{}, false
}

func nodeText(n *sitter.Node, source []byte) string {
	return string(source[n.StartByte():n.EndByte()])
}
