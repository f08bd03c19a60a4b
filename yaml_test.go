package omenu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmenu/omenu"
)

const sampleYAML = `
oms_version: "1.0"
metadata:
  created: "2026-08-01T10:30:00Z"
  source: test-suite
  locale: en-US
vendor:
  id: cafe-1
  name: Corner Cafe
  type: cafe
items:
  - id: latte
    name: Latte
    category: coffee
    base_price: 4.5
    currency: USD
    customizations:
      - id: size
        name: Size
        type: single_select
        required: true
        default: medium
        options:
          - id: small
            name: Small
          - id: medium
            name: Medium
          - id: large
            name: Large
            price_adjustment: 0.5
`

func TestParseYAML(t *testing.T) {
	doc, err := omenu.ParseYAML([]byte(sampleYAML))
	require.NoError(t, err)
	assert.Equal(t, "cafe-1", doc.Vendor.ID)
	require.Len(t, doc.Items, 1)
	assert.Equal(t, 4.5, *doc.Items[0].BasePrice)

	require.Len(t, doc.Items[0].Customizations, 1)
	def := doc.Items[0].Customizations[0].Default
	require.NotNil(t, def)
	s, ok := def.String()
	require.True(t, ok)
	assert.Equal(t, "medium", s)

	assert.False(t, omenu.Validate(doc).HasErrors())
}

func TestParseYAMLMissingVendor(t *testing.T) {
	const input = `
oms_version: "1.0"
metadata:
  created: "2026-08-01T10:30:00Z"
  source: s
  locale: en-US
items:
  - {id: a, name: A, category: c}
`
	_, err := omenu.ParseYAML([]byte(input))
	var malformed *omenu.MalformedDocumentError
	require.ErrorAs(t, err, &malformed)
}

func TestParseYAMLInvalidSyntax(t *testing.T) {
	_, err := omenu.ParseYAML([]byte("items: [\n  - broken"))
	var malformed *omenu.MalformedDocumentError
	assert.ErrorAs(t, err, &malformed)
}
