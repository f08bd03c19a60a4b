package qr_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmenu/omenu"
	"github.com/openmenu/omenu/codec"
	"github.com/openmenu/omenu/qr"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G'}

func TestPNGGenerator(t *testing.T) {
	png, err := qr.PNGGenerator{}.Generate("omenu://order?v=cafe-1&i=latte")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngHeader))
}

func TestForIntent(t *testing.T) {
	png, err := qr.ForIntent(qr.PNGGenerator{Size: 128}, codec.OrderIntent{
		Action: codec.ActionOrder, VendorID: "cafe-1", ItemID: "latte",
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngHeader))

	_, err = qr.ForIntent(qr.PNGGenerator{}, codec.OrderIntent{Action: "bogus"})
	assert.Error(t, err)
}

func TestForDocument(t *testing.T) {
	doc := omenu.MinimalDocument("cafe-1", "Cafe", "cafe")
	png, err := qr.ForDocument(qr.PNGGenerator{}, doc)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngHeader))
}
