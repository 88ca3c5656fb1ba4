package php

import (
	"testing"

	protocol "github.com/gluax-lang/lsp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mage2-ls/mage2-ls/m2"
)

const cartSource = `<?php

namespace App\Checkout\Block;

use App\Catalog\Model\Product;

class Cart
{
    public function product()
    {
        $p = new Product();
        return Product::load(Product::TYPE_SIMPLE);
    }
}
`

func at(line, character uint32) protocol.Position {
	return protocol.Position{Line: line, Character: character}
}

func TestExtractUseClause(t *testing.T) {
	ref, ok := Extract([]byte(cartSource), at(4, 12))
	require.True(t, ok)
	assert.Equal(t, m2.RefClass, ref.Kind)
	assert.Equal(t, `App\Catalog\Model\Product`, ref.Class.String())
}

func TestExtractNewExpressionResolvesImport(t *testing.T) {
	ref, ok := Extract([]byte(cartSource), at(10, 19))
	require.True(t, ok)
	assert.Equal(t, m2.RefClass, ref.Kind)
	assert.Equal(t, `App\Catalog\Model\Product`, ref.Class.String())
}

func TestExtractScopedCall(t *testing.T) {
	// cursor on the method name
	ref, ok := Extract([]byte(cartSource), at(11, 25))
	require.True(t, ok)
	assert.Equal(t, m2.RefMethod, ref.Kind)
	assert.Equal(t, `App\Catalog\Model\Product`, ref.Class.String())
	assert.Equal(t, "load", ref.Member)

	// cursor on the class part of the call lands on the same target
	ref, ok = Extract([]byte(cartSource), at(11, 17))
	require.True(t, ok)
	assert.Equal(t, m2.RefMethod, ref.Kind)
	assert.Equal(t, "load", ref.Member)
}

func TestExtractConstantAccess(t *testing.T) {
	ref, ok := Extract([]byte(cartSource), at(11, 40))
	require.True(t, ok)
	assert.Equal(t, m2.RefConst, ref.Kind)
	assert.Equal(t, `App\Catalog\Model\Product`, ref.Class.String())
	assert.Equal(t, "TYPE_SIMPLE", ref.Member)
}

func TestExtractSelfScope(t *testing.T) {
	source := `<?php

namespace App\Catalog\Model;

class Product
{
    const TYPE = 'x';

    public function type()
    {
        return self::TYPE;
    }
}
`
	ref, ok := Extract([]byte(source), at(10, 22))
	require.True(t, ok)
	assert.Equal(t, m2.RefConst, ref.Kind)
	assert.Equal(t, `App\Catalog\Model\Product`, ref.Class.String())
	assert.Equal(t, "TYPE", ref.Member)
}

func TestExtractStringLiteral(t *testing.T) {
	source := `<?php
$block = $this->getLayout()->createBlock('App\Catalog\Block\Widget');
`
	ref, ok := Extract([]byte(source), at(1, 50))
	require.True(t, ok)
	assert.Equal(t, m2.RefClass, ref.Kind)
	assert.Equal(t, `App\Catalog\Block\Widget`, ref.Class.String())
}

func TestExtractNothingOnKeyword(t *testing.T) {
	_, ok := Extract([]byte(cartSource), at(9, 4))
	assert.False(t, ok)
}
