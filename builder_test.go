package omenu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmenu/omenu"
)

func TestDocumentBuilder(t *testing.T) {
	latte := omenu.NewItemBuilder("latte", "Latte", "coffee").
		Description("Espresso with steamed milk").
		Price(4.50, "USD").
		Nutrition(omenu.Nutrition{Calories: fptr(190), Allergens: []string{"milk"}}).
		Customization(omenu.Customization{
			ID: "size", Name: "Size", Type: omenu.SingleSelect,
			Options: []omenu.CustomizationOption{
				{ID: "small", Name: "Small"},
				{ID: "large", Name: "Large", PriceAdjustment: fptr(0.50)},
			},
		}).
		Select("size", omenu.StringValue("large")).
		Quantity(2).
		Note("no foam").
		Build()

	doc := omenu.NewDocumentBuilder(omenu.Vendor{ID: "cafe-1", Name: "Cafe", Type: "cafe"}).
		Source("builder-test").
		Locale("en-GB").
		Item(latte).
		Extension("com.example.flags", map[string]bool{"beta": true}).
		Build()

	assert.Equal(t, omenu.Version, doc.OMSVersion)
	assert.Equal(t, "builder-test", doc.Metadata.Source)
	assert.Equal(t, "en-GB", doc.Metadata.Locale)
	assert.False(t, doc.Metadata.Created.IsZero())
	require.Len(t, doc.Items, 1)
	assert.Equal(t, "no foam", doc.Items[0].ItemNote)
	assert.Equal(t, 2, *doc.Items[0].Quantity)
	_, ok := doc.Extension("com.example.flags")
	assert.True(t, ok)

	assert.False(t, omenu.Validate(doc).HasErrors())

	priced, err := omenu.ResolveAndPrice(&doc.Items[0], doc.Items[0].SelectedCustomizations)
	require.NoError(t, err)
	assert.Equal(t, 5.00, priced.UnitPrice)
	assert.Equal(t, 10.00, priced.TotalPrice)
}

func TestItemBuilderComponent(t *testing.T) {
	side := omenu.NewItemBuilder("fries", "Fries", "sides").Price(2.50, "USD").Build()
	combo := omenu.NewItemBuilder("combo", "Combo", "combos").
		Price(8.00, "USD").
		Component(side).
		Build()
	require.Len(t, combo.Components, 1)
	assert.Equal(t, "fries", combo.Components[0].ID)
}
