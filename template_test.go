package omenu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmenu/omenu"
)

func TestTemplateKnownTypes(t *testing.T) {
	for _, vt := range []string{"restaurant", "cafe", "fast_food", "coffee_shop", "pizzeria"} {
		doc, err := omenu.Template(vt)
		require.NoError(t, err, vt)
		assert.Equal(t, omenu.Version, doc.OMSVersion)
		assert.Equal(t, vt, doc.Vendor.Type)
		assert.NotEmpty(t, doc.Items, vt)
	}
}

func TestTemplateUnknownType(t *testing.T) {
	doc, err := omenu.Template("submarine")
	assert.Nil(t, doc)
	var unknown *omenu.ErrUnknownTemplate
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "submarine", unknown.VendorType)
}

func TestTemplateCoffeeShopShots(t *testing.T) {
	doc, err := omenu.Template("coffee_shop")
	require.NoError(t, err)
	espresso := doc.FindItem("espresso")
	require.NotNil(t, espresso)

	var shots *omenu.Customization
	for i := range espresso.Customizations {
		if espresso.Customizations[i].ID == "shots" {
			shots = &espresso.Customizations[i]
		}
	}
	require.NotNil(t, shots)
	assert.Equal(t, omenu.Quantity, shots.Type)
	assert.True(t, shots.Required)
	require.NotNil(t, shots.Default)
	n, ok := shots.Default.Number()
	require.True(t, ok)
	assert.Equal(t, 2.0, n)
	assert.Equal(t, 0.75, *shots.UnitPriceAdjustment)
}

func TestTemplateFastFoodCombo(t *testing.T) {
	doc, err := omenu.Template("fast_food")
	require.NoError(t, err)
	combo := doc.FindItem("burger-combo")
	require.NotNil(t, combo)
	assert.Len(t, combo.Components, 3)
}

func TestMinimalDocumentIsConformant(t *testing.T) {
	doc := omenu.MinimalDocument("v1", "Vendor", "cafe")
	assert.False(t, omenu.Validate(doc).HasErrors())
}
