package m2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseName(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{`Vendor\Module\Model\Product`, `Vendor\Module\Model\Product`, true},
		{`\Vendor\Module\Model\Product`, `Vendor\Module\Model\Product`, true},
		{`Vendor\\Module\\Model\\Product`, `Vendor\Module\Model\Product`, true},
		{`'Vendor\Module\Helper\Data'`, `Vendor\Module\Helper\Data`, true},
		{`Vendor_Module`, `Vendor\Module`, true},
		{`Product`, `Product`, true},
		{``, ``, false},
		{`Vendor\\`, ``, false},
		{`Vendor\9Module`, ``, false},
		{`Vendor\Mod ule`, ``, false},
	}
	for _, tc := range cases {
		name, ok := ParseName(tc.in)
		require.Equal(t, tc.ok, ok, "input %q", tc.in)
		if ok {
			assert.Equal(t, tc.want, name.String(), "input %q", tc.in)
		}
	}
}

func TestNameSegments(t *testing.T) {
	name, ok := ParseName(`App\Catalog\Model\Product`)
	require.True(t, ok)
	assert.Equal(t, []string{"App", "Catalog", "Model", "Product"}, name.Segments())
	assert.Equal(t, "Product", name.Last())
	assert.Equal(t, 4, name.Len())
	assert.False(t, name.IsEmpty())
}

func TestNameFromSegmentsCopies(t *testing.T) {
	segments := []string{"App", "Catalog"}
	name := NameFromSegments(segments)
	segments[0] = "Mutated"
	assert.Equal(t, `App\Catalog`, name.String())
}
