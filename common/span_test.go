package common

import (
	"testing"

	protocol "github.com/gluax-lang/lsp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpanToRange(t *testing.T) {
	span := SpanNew(4, 12, 0, 1)
	rng := span.ToRange()
	assert.Equal(t, protocol.Position{Line: 4, Character: 0}, rng.Start)
	assert.Equal(t, protocol.Position{Line: 12, Character: 1}, rng.End)
}

func TestSpanToLocation(t *testing.T) {
	span := Span{LineStart: 1, LineEnd: 2, Source: "/src/Catalog/Model/Product.php"}
	loc := span.ToLocation()
	assert.Equal(t, "file:///src/Catalog/Model/Product.php", loc.URI)
	assert.Equal(t, uint32(1), loc.Range.Start.Line)
}

func TestSpanContains(t *testing.T) {
	span := SpanNew(2, 2, 5, 10)
	assert.True(t, span.Contains(protocol.Position{Line: 2, Character: 5}))
	assert.True(t, span.Contains(protocol.Position{Line: 2, Character: 10}))
	assert.False(t, span.Contains(protocol.Position{Line: 2, Character: 4}))
	assert.False(t, span.Contains(protocol.Position{Line: 2, Character: 11}))
	assert.False(t, span.Contains(protocol.Position{Line: 1, Character: 7}))
}

func TestURIRoundTrip(t *testing.T) {
	path := "/src/Catalog/Model/Product.php"
	uri := FilePathToURI(path)
	back, err := URIToFilePath(uri)
	require.NoError(t, err)
	assert.Equal(t, path, back)
}

func TestURIToFilePathRejectsOtherSchemes(t *testing.T) {
	_, err := URIToFilePath("https://example.com/x.php")
	require.Error(t, err)
}
