package script

import (
	"testing"

	protocol "github.com/gluax-lang/lsp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mage2-ls/mage2-ls/m2"
)

const jsSource = `define(['App_Catalog/js/view'], function () {
    var model = 'App\\Catalog\\Model\\Product';
    var helper = 'App\\Catalog\\Helper\\Data::getValue';
});
`

func at(line, character uint32) protocol.Position {
	return protocol.Position{Line: line, Character: character}
}

func TestExtractJSClassString(t *testing.T) {
	ref, ok := ExtractJS([]byte(jsSource), at(1, 25))
	require.True(t, ok)
	assert.Equal(t, m2.RefClass, ref.Kind)
	assert.Equal(t, `App\Catalog\Model\Product`, ref.Class.String())
}

func TestExtractJSMethodString(t *testing.T) {
	ref, ok := ExtractJS([]byte(jsSource), at(2, 30))
	require.True(t, ok)
	assert.Equal(t, m2.RefMethod, ref.Kind)
	assert.Equal(t, `App\Catalog\Helper\Data`, ref.Class.String())
	assert.Equal(t, "getValue", ref.Member)
}

func TestExtractJSComponentPathRejected(t *testing.T) {
	// requirejs component paths are files, not classes
	_, ok := ExtractJS([]byte(jsSource), at(0, 15))
	assert.False(t, ok)
}

func TestExtractTSClassString(t *testing.T) {
	source := "const model: string = 'App\\\\Catalog\\\\Model\\\\Product';\n"
	ref, ok := ExtractTS([]byte(source), at(0, 30))
	require.True(t, ok)
	assert.Equal(t, m2.RefClass, ref.Kind)
	assert.Equal(t, `App\Catalog\Model\Product`, ref.Class.String())
}

func TestExtractOutsideStrings(t *testing.T) {
	_, ok := ExtractJS([]byte(jsSource), at(1, 8))
	assert.False(t, ok)
}
