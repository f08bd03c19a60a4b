package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmenu/omenu/codec"
)

func TestDecodeURLOrder(t *testing.T) {
	intent, err := codec.DecodeURL("omenu://order?v=subway-usa&l=store-1234&i=italian-bmt")
	require.NoError(t, err)
	assert.Equal(t, codec.ActionOrder, intent.Action)
	assert.Equal(t, "subway-usa", intent.VendorID)
	assert.Equal(t, "store-1234", intent.LocationID)
	assert.Equal(t, "italian-bmt", intent.ItemID)
	assert.Empty(t, intent.PresetID)
}

func TestEncodeDecodeURLRoundTrip(t *testing.T) {
	cases := []codec.OrderIntent{
		{Action: codec.ActionView, VendorID: "cafe-1"},
		{Action: codec.ActionView, VendorID: "cafe-1", LocationID: "loc-2", ItemID: "latte"},
		{Action: codec.ActionOrder, VendorID: "cafe-1", ItemID: "latte"},
		{Action: codec.ActionCustomize, VendorID: "cafe-1", ItemID: "latte", PresetID: "my-usual"},
		{Action: codec.ActionShare, VendorID: "vendor with spaces", ItemID: "item/slash"},
	}
	for _, intent := range cases {
		raw, err := codec.EncodeURL(intent)
		require.NoError(t, err)
		decoded, err := codec.DecodeURL(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, intent, decoded, raw)
	}
}

func TestEncodeURLKeyOrder(t *testing.T) {
	raw, err := codec.EncodeURL(codec.OrderIntent{
		Action: codec.ActionCustomize, VendorID: "v1", LocationID: "l1",
		ItemID: "i1", PresetID: "c1",
	})
	require.NoError(t, err)
	assert.Equal(t, "omenu://customize?v=v1&l=l1&i=i1&c=c1", raw)
}

func TestDecodeURLUnrecognizedAction(t *testing.T) {
	_, err := codec.DecodeURL("omenu://purchase?v=v1&i=i1")
	var unrec *codec.UnrecognizedActionError
	require.ErrorAs(t, err, &unrec)
	assert.Equal(t, "purchase", unrec.Action)
}

func TestDecodeURLMissingRequired(t *testing.T) {
	var missing *codec.MissingRequiredParameterError

	_, err := codec.DecodeURL("omenu://order?i=italian-bmt")
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "v", missing.Parameter)

	_, err = codec.DecodeURL("omenu://order?v=subway-usa")
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "i", missing.Parameter)

	// a bare vendor-level view needs no item
	_, err = codec.DecodeURL("omenu://view?v=subway-usa")
	assert.NoError(t, err)
}

func TestDecodeURLMalformed(t *testing.T) {
	var malformed *codec.MalformedEncodingError

	_, err := codec.DecodeURL("https://example.com/order?v=v1")
	require.ErrorAs(t, err, &malformed)

	_, err = codec.DecodeURL("omenu://order?v=bad%zz&i=i1")
	require.ErrorAs(t, err, &malformed)
}

func TestDecodeURLIgnoresUnknownKeys(t *testing.T) {
	intent, err := codec.DecodeURL("omenu://order?v=v1&i=i1&utm_source=flyer")
	require.NoError(t, err)
	assert.Equal(t, "v1", intent.VendorID)
	assert.Equal(t, "i1", intent.ItemID)
}

func TestEncodeURLRejectsBadIntent(t *testing.T) {
	_, err := codec.EncodeURL(codec.OrderIntent{Action: "teleport", VendorID: "v1", ItemID: "i1"})
	var unrec *codec.UnrecognizedActionError
	assert.ErrorAs(t, err, &unrec)

	_, err = codec.EncodeURL(codec.OrderIntent{Action: codec.ActionOrder, VendorID: "v1"})
	var missing *codec.MissingRequiredParameterError
	assert.ErrorAs(t, err, &missing)
}

func TestURLHelpers(t *testing.T) {
	raw, err := codec.OrderURL("v1", "l1", "i1")
	require.NoError(t, err)
	assert.Equal(t, "omenu://order?v=v1&l=l1&i=i1", raw)

	raw, err = codec.ViewURL("v1", "", "")
	require.NoError(t, err)
	assert.Equal(t, "omenu://view?v=v1", raw)

	raw, err = codec.CustomizeURL("v1", "", "i1", "preset-9")
	require.NoError(t, err)
	assert.Equal(t, "omenu://customize?v=v1&i=i1&c=preset-9", raw)

	raw, err = codec.ShareURL("v1", "", "i1")
	require.NoError(t, err)
	assert.Equal(t, "omenu://share?v=v1&i=i1", raw)
}
