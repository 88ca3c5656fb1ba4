package m2

import "strings"

// RefKind discriminates the three shapes a document reference can take.
type RefKind int

const (
	RefClass RefKind = iota
	RefMethod
	RefConst
)

// Reference is a request-scoped description of the symbol under the cursor:
// a class, a (class, method) pair, or a (class, constant) pair.
type Reference struct {
	Kind   RefKind
	Class  Name
	Member string
}

func ClassRef(class Name) Reference {
	return Reference{Kind: RefClass, Class: class}
}

func MethodRef(class Name, method string) Reference {
	return Reference{Kind: RefMethod, Class: class, Member: method}
}

func ConstRef(class Name, constant string) Reference {
	return Reference{Kind: RefConst, Class: class, Member: constant}
}

// ParseReference reads a reference out of raw document text, e.g.
// "Vendor\Module\Model\Product" or "Vendor\Module\Helper\Data::getValue".
// Members in SCREAMING_CASE are taken for constants, anything else for
// methods; the ::class pseudo-constant refers to the class itself.
func ParseReference(text string) (Reference, bool) {
	text = strings.TrimSpace(text)
	text = strings.Trim(text, `'"`+"`")

	classPart, member, hasMember := strings.Cut(text, "::")
	class, ok := ParseName(classPart)
	if !ok {
		return Reference{}, false
	}
	if !hasMember {
		return ClassRef(class), true
	}

	member = strings.TrimSuffix(strings.TrimSpace(member), "()")
	if member == "class" {
		return ClassRef(class), true
	}
	if !validSegment(member) {
		return Reference{}, false
	}
	if isConstantName(member) {
		return ConstRef(class, member), true
	}
	return MethodRef(class, member), true
}

// ParseEmbeddedReference reads a reference out of free-form text such as an
// XML attribute value or a JS string literal. Unlike ParseReference it
// rejects plain words: the text must be namespace-qualified, carry a member
// accessor, or look like a Vendor_Module module name.
func ParseEmbeddedReference(text string) (Reference, bool) {
	text = strings.Trim(strings.TrimSpace(text), `'"`+"`")
	if !strings.Contains(text, Separator) && !strings.Contains(text, "::") && !looksLikeModuleName(text) {
		return Reference{}, false
	}
	return ParseReference(text)
}

func looksLikeModuleName(text string) bool {
	vendor, module, ok := strings.Cut(text, "_")
	if !ok || vendor == "" || module == "" {
		return false
	}
	return vendor[0] >= 'A' && vendor[0] <= 'Z' && module[0] >= 'A' && module[0] <= 'Z' &&
		!strings.ContainsAny(text, `/. `)
}

func isConstantName(member string) bool {
	hasLetter := false
	for _, r := range member {
		if r >= 'a' && r <= 'z' {
			return false
		}
		if r >= 'A' && r <= 'Z' {
			hasLetter = true
		}
	}
	return hasLetter
}
