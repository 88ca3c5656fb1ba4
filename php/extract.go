package php

import (
	"strings"

	protocol "github.com/gluax-lang/lsp"
	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/mage2-ls/mage2-ls/m2"
)

// Extract finds the class, method or constant reference under the cursor in a
// PHP or PHTML document. Relative class names are absolutized against the
// file's namespace and use declarations.
func Extract(source []byte, pos protocol.Position) (m2.Reference, bool) {
	tree, err := parseSource(source)
	if err != nil {
		return m2.Reference{}, false
	}
	defer tree.Close()

	point := sitter.Point{Row: uint(pos.Line), Column: uint(pos.Character)}
	node := tree.RootNode().NamedDescendantForPointRange(point, point)
	if node == nil {
		return m2.Reference{}, false
	}

	// a cursor inside a string literal always means the string, even when
	// the literal sits in the arguments of a scoped call
	switch node.Kind() {
	case "string", "string_content", "encapsed_string":
		return m2.ParseEmbeddedReference(nodeText(node, source))
	}

	scope := newFileScope(tree.RootNode(), source)

	var qualified *sitter.Node
	for n := node; n != nil; n = n.Parent() {
		switch n.Kind() {
		case "scoped_call_expression":
			return scopedCallRef(n, source, scope)
		case "class_constant_access_expression":
			return constAccessRef(n, source, scope)
		case "qualified_name", "namespace_use_clause":
			qualified = n
		}
	}

	if qualified != nil {
		if qualified.Kind() == "namespace_use_clause" {
			// The clause text may carry an alias; the imported name is the
			// first named child.
			if name := qualified.NamedChild(0); name != nil {
				qualified = name
			}
		}
		if class, ok := scope.resolve(nodeText(qualified, source)); ok {
			return m2.ClassRef(class), true
		}
		return m2.Reference{}, false
	}

	if node.Kind() == "name" && classNamePosition(node) {
		if class, ok := scope.resolve(nodeText(node, source)); ok {
			return m2.ClassRef(class), true
		}
	}
	return m2.Reference{}, false
}

// classNamePosition reports whether a bare name node stands where a class
// name is expected, so that variable and function names do not turn into
// bogus class lookups.
func classNamePosition(n *sitter.Node) bool {
	parent := n.Parent()
	if parent == nil {
		return false
	}
	switch parent.Kind() {
	case "object_creation_expression", "base_clause", "class_interface_clause",
		"named_type", "attribute", "instanceof_expression", "catch_clause",
		"use_declaration", "namespace_use_clause", "type_list":
		return true
	}
	return false
}

func scopedCallRef(call *sitter.Node, source []byte, scope *fileScope) (m2.Reference, bool) {
	scopeNode := call.ChildByFieldName("scope")
	nameNode := call.ChildByFieldName("name")
	if scopeNode == nil || nameNode == nil {
		return m2.Reference{}, false
	}
	class, ok := scope.resolveScope(scopeNode, source)
	if !ok {
		return m2.Reference{}, false
	}
	return m2.MethodRef(class, nodeText(nameNode, source)), true
}

func constAccessRef(access *sitter.Node, source []byte, scope *fileScope) (m2.Reference, bool) {
	if access.NamedChildCount() < 2 {
		return m2.Reference{}, false
	}
	scopeNode := access.NamedChild(0)
	nameNode := access.NamedChild(access.NamedChildCount() - 1)
	class, ok := scope.resolveScope(scopeNode, source)
	if !ok {
		return m2.Reference{}, false
	}
	member := nodeText(nameNode, source)
	if member == "class" {
		return m2.ClassRef(class), true
	}
	return m2.ConstRef(class, member), true
}

// fileScope carries the namespace and use map needed to absolutize the class
// names appearing in one file.
type fileScope struct {
	source    []byte
	namespace string
	uses      map[string]string // alias or last segment -> fully qualified name
}

func newFileScope(root *sitter.Node, source []byte) *fileScope {
	fs := &fileScope{source: source, uses: make(map[string]string)}
	var walk func(n *sitter.Node)
	walk = func(n *sitter.Node) {
		switch n.Kind() {
		case "namespace_definition":
			if name := n.ChildByFieldName("name"); name != nil {
				fs.namespace = nodeText(name, source)
			}
		case "namespace_use_clause":
			fs.addUse(n)
			return
		}
		for i := uint(0); i < n.NamedChildCount(); i++ {
			walk(n.NamedChild(i))
		}
	}
	walk(root)
	return fs
}

func (fs *fileScope) addUse(clause *sitter.Node) {
	name := clause.NamedChild(0)
	if name == nil {
		return
	}
	full := strings.TrimPrefix(nodeText(name, fs.source), m2.Separator)
	alias := full
	if i := strings.LastIndex(full, m2.Separator); i >= 0 {
		alias = full[i+1:]
	}
	for i := uint(1); i < clause.NamedChildCount(); i++ {
		child := clause.NamedChild(i)
		if child.Kind() == "namespace_aliasing_clause" && child.NamedChildCount() > 0 {
			alias = nodeText(child.NamedChild(0), fs.source)
		}
	}
	fs.uses[alias] = full
}

// resolve turns possibly-relative class text into an absolute Name.
func (fs *fileScope) resolve(text string) (m2.Name, bool) {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, m2.Separator) {
		return m2.ParseName(text)
	}
	head, rest, _ := strings.Cut(text, m2.Separator)
	if full, ok := fs.uses[head]; ok {
		if rest != "" {
			full += m2.Separator + rest
		}
		return m2.ParseName(full)
	}
	if fs.namespace != "" && !strings.Contains(text, m2.Separator) {
		return m2.ParseName(fs.namespace + m2.Separator + text)
	}
	return m2.ParseName(text)
}

// resolveScope handles the left side of :: including self and static, which
// name the enclosing class.
func (fs *fileScope) resolveScope(scopeNode *sitter.Node, source []byte) (m2.Name, bool) {
	if scopeNode.Kind() == "relative_scope" {
		switch nodeText(scopeNode, source) {
		case "self", "static":
			return fs.enclosingClass(scopeNode)
		}
		return m2.Name{}, false
	}
	return fs.resolve(nodeText(scopeNode, source))
}

func (fs *fileScope) enclosingClass(n *sitter.Node) (m2.Name, bool) {
	for ; n != nil; n = n.Parent() {
		if n.Kind() != "class_declaration" && n.Kind() != "trait_declaration" && n.Kind() != "enum_declaration" {
			continue
		}
		name := n.ChildByFieldName("name")
		if name == nil {
			return m2.Name{}, false
		}
		text := nodeText(name, fs.source)
		if fs.namespace != "" {
			text = fs.namespace + m2.Separator + text
		}
		return m2.ParseName(text)
	}
	return m2.Name{}, false
}
