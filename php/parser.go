// Package php parses PHP sources with tree-sitter: class files into symbol
// tables, registration.php files into module declarations, and open documents
// into the class references sitting under a cursor.
package php

import (
	"fmt"
	"os"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_php "github.com/tree-sitter/tree-sitter-php/bindings/go"

	"github.com/mage2-ls/mage2-ls/common"
	"github.com/mage2-ls/mage2-ls/m2"
)

var phpLanguage = sitter.NewLanguage(tree_sitter_php.LanguagePHP())

func parseSource(source []byte) (*sitter.Tree, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(phpLanguage)

	tree := parser.Parse(source, nil)
	if tree == nil {
		return nil, fmt.Errorf("tree-sitter returned no tree")
	}
	return tree, nil
}

// Parse reads a class file and extracts the symbol table of the class-like
// declaration (class, interface, trait or enum) named by want. The primary
// declaration must match want exactly; anything else is a parse failure.
func Parse(path string, want m2.Name) (*m2.SymbolTable, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	tree, err := parseSource(source)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	decl := findClassLike(tree.RootNode(), source, want)
	if decl == nil {
		return nil, fmt.Errorf("%s does not declare %s", path, want)
	}

	table := m2.NewSymbolTable(path, spanOf(decl, path))
	body := decl.ChildByFieldName("body")
	if body == nil {
		return table, nil
	}

	for i := uint(0); i < body.NamedChildCount(); i++ {
		member := body.NamedChild(i)
		switch member.Kind() {
		case "method_declaration":
			name := member.ChildByFieldName("name")
			if name == nil {
				continue
			}
			table.Methods[nodeText(name, source)] = m2.Symbol{
				Name: nodeText(name, source),
				Span: spanOf(member, path),
			}
		case "const_declaration":
			for j := uint(0); j < member.NamedChildCount(); j++ {
				elem := member.NamedChild(j)
				if elem.Kind() != "const_element" {
					continue
				}
				name := elem.NamedChild(0)
				if name == nil {
					continue
				}
				table.Constants[nodeText(name, source)] = m2.Symbol{
					Name: nodeText(name, source),
					Span: spanOf(elem, path),
				}
			}
		}
	}
	return table, nil
}

// findClassLike walks the tree in document order, tracking the namespace in
// effect, and returns the class-like declaration whose qualified name is want.
func findClassLike(root *sitter.Node, source []byte, want m2.Name) *sitter.Node {
	wantNamespace := strings.Join(want.Segments()[:want.Len()-1], m2.Separator)
	wantClass := want.Last()

	namespace := ""
	var found *sitter.Node

	var walk func(n *sitter.Node)
	walk = func(n *sitter.Node) {
		if found != nil {
			return
		}
		switch n.Kind() {
		case "namespace_definition":
			if name := n.ChildByFieldName("name"); name != nil {
				namespace = nodeText(name, source)
			}
		case "class_declaration", "interface_declaration", "trait_declaration", "enum_declaration":
			name := n.ChildByFieldName("name")
			if name != nil && nodeText(name, source) == wantClass && namespace == wantNamespace {
				found = n
				return
			}
		}
		for i := uint(0); i < n.NamedChildCount(); i++ {
			walk(n.NamedChild(i))
		}
	}
	walk(root)
	return found
}

// RegistrationModule extracts the declared module name (Vendor_Module form)
// from a registration.php source: the second argument of the
// ComponentRegistrar::register call.
func RegistrationModule(source []byte) (string, bool) {
	tree, err := parseSource(source)
	if err != nil {
		return "", false
	}
	defer tree.Close()

	var module string
	var walk func(n *sitter.Node)
	walk = func(n *sitter.Node) {
		if module != "" {
			return
		}
		if n.Kind() == "scoped_call_expression" {
			name := n.ChildByFieldName("name")
			args := n.ChildByFieldName("arguments")
			if name != nil && args != nil && nodeText(name, source) == "register" {
				if arg := stringArgument(args, source, 1); arg != "" {
					module = arg
					return
				}
			}
		}
		for i := uint(0); i < n.NamedChildCount(); i++ {
			walk(n.NamedChild(i))
		}
	}
	walk(tree.RootNode())

	if module == "" {
		return "", false
	}
	if _, ok := m2.ParseName(module); !ok {
		return "", false
	}
	return module, true
}

// stringArgument returns the unquoted value of the idx-th argument when that
// argument is a plain string literal.
func stringArgument(args *sitter.Node, source []byte, idx uint) string {
	count := uint(0)
	for i := uint(0); i < args.NamedChildCount(); i++ {
		arg := args.NamedChild(i)
		if arg.Kind() == "comment" {
			continue
		}
		if count != idx {
			count++
			continue
		}
		return stringValue(arg, source)
	}
	return ""
}

// stringValue unwraps a string or encapsed_string node to its content.
func stringValue(n *sitter.Node, source []byte) string {
	if n.Kind() == "argument" && n.NamedChildCount() > 0 {
		n = n.NamedChild(0)
	}
	switch n.Kind() {
	case "string", "encapsed_string":
		for i := uint(0); i < n.NamedChildCount(); i++ {
			if child := n.NamedChild(i); child.Kind() == "string_content" {
				return nodeText(child, source)
			}
		}
		return strings.Trim(nodeText(n, source), `'"`)
	case "string_content":
		return nodeText(n, source)
	}
	return ""
}

func nodeText(n *sitter.Node, source []byte) string {
	return string(source[n.StartByte():n.EndByte()])
}

func spanOf(n *sitter.Node, path string) common.Span {
	start := n.StartPosition()
	end := n.EndPosition()
	return common.Span{
		LineStart:   uint32(start.Row),
		LineEnd:     uint32(end.Row),
		ColumnStart: uint32(start.Column),
		ColumnEnd:   uint32(end.Column),
		Source:      path,
	}
}
