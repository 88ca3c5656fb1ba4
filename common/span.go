package common

import (
	"fmt"

	protocol "github.com/gluax-lang/lsp"
)

// Span represents a range in a source file. Lines and columns are zero-based,
// matching both tree-sitter points and LSP positions.
type Span struct {
	LineStart, LineEnd     uint32
	ColumnStart, ColumnEnd uint32
	Source                 string // file path; "" == unknown
}

func SpanNew(lineStart, lineEnd, columnStart, columnEnd uint32) Span {
	return Span{
		LineStart:   lineStart,
		LineEnd:     lineEnd,
		ColumnStart: columnStart,
		ColumnEnd:   columnEnd,
	}
}

func (s Span) ToRange() protocol.Range {
	return protocol.Range{
		Start: protocol.Position{
			Line:      s.LineStart,
			Character: s.ColumnStart,
		},
		End: protocol.Position{
			Line:      s.LineEnd,
			Character: s.ColumnEnd,
		},
	}
}

func (s Span) ToLocation() protocol.Location {
	return protocol.Location{
		URI:   FilePathToURI(s.Source),
		Range: s.ToRange(),
	}
}

// Contains reports whether pos falls inside the span, end-inclusive so that a
// cursor sitting on the last character still hits.
func (s Span) Contains(pos protocol.Position) bool {
	if pos.Line < s.LineStart || pos.Line > s.LineEnd {
		return false
	}
	if pos.Line == s.LineStart && pos.Character < s.ColumnStart {
		return false
	}
	if pos.Line == s.LineEnd && pos.Character > s.ColumnEnd {
		return false
	}
	return true
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d:%d (%s)", s.LineStart, s.ColumnStart, s.LineEnd, s.ColumnEnd, s.Source)
}
