package omenu_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmenu/omenu"
)

func validDoc() *omenu.Document {
	return omenu.NewDocument(
		omenu.Metadata{Created: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC), Source: "test", Locale: "en-US"},
		omenu.Vendor{ID: "v1", Name: "Vendor", Type: "cafe"},
		[]omenu.Item{{ID: "a", Name: "A", Category: "drinks", BasePrice: fptr(3.0), Currency: "USD"}},
	)
}

func findIssue(iss omenu.Issues, code string) *omenu.Issue {
	for i := range iss {
		if iss[i].Code == code {
			return &iss[i]
		}
	}
	return nil
}

func TestValidateCleanDocument(t *testing.T) {
	iss := omenu.Validate(validDoc())
	assert.False(t, iss.HasErrors(), "unexpected issues: %v", iss)
}

func TestValidateTemplates(t *testing.T) {
	for _, vt := range []string{"restaurant", "cafe", "fast_food", "coffee_shop", "pizzeria"} {
		doc, err := omenu.Template(vt)
		require.NoError(t, err)
		iss := omenu.Validate(doc)
		assert.False(t, iss.HasErrors(), "%s template: %v", vt, iss)
	}
}

func TestValidateVersion(t *testing.T) {
	doc := validDoc()
	doc.OMSVersion = "2.0"
	iss := omenu.Validate(doc)
	found := findIssue(iss, omenu.CodeUnsupportedVersion)
	require.NotNil(t, found)
	assert.Equal(t, omenu.SeverityError, found.Severity)
	assert.Equal(t, "/oms_version", found.Path)

	doc.OMSVersion = "1.1"
	assert.Nil(t, findIssue(omenu.Validate(doc), omenu.CodeUnsupportedVersion))
}

func TestValidateMissingVendorFields(t *testing.T) {
	doc := validDoc()
	doc.Vendor = omenu.Vendor{}
	iss := omenu.Validate(doc)
	assert.True(t, iss.HasErrors())

	paths := map[string]bool{}
	for _, is := range iss {
		if is.Code == omenu.CodeRequired {
			paths[is.Path] = true
		}
	}
	assert.True(t, paths["/vendor/id"])
	assert.True(t, paths["/vendor/name"])
	assert.True(t, paths["/vendor/type"])
}

func TestValidateUnknownVendorTypeIsAdvisory(t *testing.T) {
	doc := validDoc()
	doc.Vendor.Type = "spaceship"
	iss := omenu.Validate(doc)
	found := findIssue(iss, omenu.CodeInvalidEnum)
	require.NotNil(t, found)
	assert.Equal(t, omenu.SeverityWarn, found.Severity)
	assert.False(t, iss.HasErrors())
}

func TestValidateNoItems(t *testing.T) {
	doc := validDoc()
	doc.Items = nil
	iss := omenu.Validate(doc)
	found := findIssue(iss, omenu.CodeRequired)
	require.NotNil(t, found)
	assert.Equal(t, "/items", found.Path)
}

func TestValidateDuplicateItemIDsAreAdvisory(t *testing.T) {
	doc := validDoc()
	doc.AddItem(omenu.Item{ID: "a", Name: "A2", Category: "drinks"})
	iss := omenu.Validate(doc)
	found := findIssue(iss, omenu.CodeDuplicateID)
	require.NotNil(t, found)
	assert.Equal(t, omenu.SeverityWarn, found.Severity)
}

func TestValidateCurrency(t *testing.T) {
	doc := validDoc()
	doc.Items[0].Currency = "usd"
	iss := omenu.Validate(doc)
	found := findIssue(iss, omenu.CodeInvalidCurrency)
	require.NotNil(t, found)
	assert.Equal(t, "/items/0/currency", found.Path)
}

func TestValidateCustomizationBounds(t *testing.T) {
	doc := validDoc()
	doc.Items[0].Customizations = []omenu.Customization{
		{
			ID: "extras", Name: "Extras", Type: omenu.MultiSelect,
			MinSelections: iptr(3), MaxSelections: iptr(1),
			Options: []omenu.CustomizationOption{{ID: "x", Name: "X"}},
		},
		{
			ID: "shots", Name: "Shots", Type: omenu.Quantity,
			Min: fptr(5), Max: fptr(1), Step: fptr(0),
		},
	}
	iss := omenu.Validate(doc)
	assert.NotNil(t, findIssue(iss, omenu.CodeInvalidBounds))
	assert.NotNil(t, findIssue(iss, omenu.CodeInvalidStep))
}

func TestValidateMissingOptions(t *testing.T) {
	doc := validDoc()
	doc.Items[0].Customizations = []omenu.Customization{
		{ID: "size", Name: "Size", Type: omenu.SingleSelect},
	}
	iss := omenu.Validate(doc)
	found := findIssue(iss, omenu.CodeMissingOptions)
	require.NotNil(t, found)
	assert.Equal(t, "/items/0/customizations/0/options", found.Path)
}

func TestValidateUnknownCustomizationType(t *testing.T) {
	doc := validDoc()
	doc.Items[0].Customizations = []omenu.Customization{
		{ID: "x", Name: "X", Type: "dropdown"},
	}
	iss := omenu.Validate(doc)
	found := findIssue(iss, omenu.CodeInvalidEnum)
	require.NotNil(t, found)
	assert.Equal(t, omenu.SeverityError, found.Severity)
}

func TestValidateDefaultShape(t *testing.T) {
	doc := validDoc()
	doc.Items[0].Customizations = []omenu.Customization{{
		ID: "size", Name: "Size", Type: omenu.SingleSelect,
		Default: vptr(omenu.NumberValue(2)),
		Options: []omenu.CustomizationOption{{ID: "s", Name: "S"}},
	}}
	iss := omenu.Validate(doc)
	assert.NotNil(t, findIssue(iss, omenu.CodeDefaultMismatch))

	// a default naming a missing option is flagged too
	doc.Items[0].Customizations[0].Default = vptr(omenu.StringValue("xl"))
	iss = omenu.Validate(doc)
	assert.NotNil(t, findIssue(iss, omenu.CodeUnknownOption))
}

func TestValidateStoredSelections(t *testing.T) {
	doc := validDoc()
	doc.Items[0].Customizations = []omenu.Customization{{
		ID: "size", Name: "Size", Type: omenu.SingleSelect,
		Options: []omenu.CustomizationOption{{ID: "s", Name: "S"}},
	}}
	doc.Items[0].SelectedCustomizations = []omenu.SelectedCustomization{
		{CustomizationID: "nope", Selection: omenu.StringValue("s")},
	}
	iss := omenu.Validate(doc)
	found := findIssue(iss, omenu.CodeUnknownCustomization)
	require.NotNil(t, found)
	assert.Equal(t, omenu.SeverityError, found.Severity)
}

func TestValidateOrder(t *testing.T) {
	doc := validDoc()
	doc.SetOrder(omenu.Order{
		Status: "in_flight",
		Type:   omenu.Delivery,
		Payment: &omenu.Payment{
			Subtotal: fptr(10.00),
			Tax:      fptr(0.80),
			Total:    12.00,
			Currency: "USD",
		},
	})
	iss := omenu.Validate(doc)
	assert.NotNil(t, findIssue(iss, omenu.CodeInvalidEnum))
	assert.NotNil(t, findIssue(iss, omenu.CodePaymentMismatch))
	assert.NotNil(t, findIssue(iss, omenu.CodeDeliveryMismatch))
}

func TestValidateHours(t *testing.T) {
	doc := validDoc()
	doc.Vendor.Hours = []omenu.BusinessHours{{
		Day:    omenu.Monday,
		Ranges: []omenu.TimeRange{{Open: "08:00", Close: "25:00"}},
	}}
	iss := omenu.Validate(doc)
	found := findIssue(iss, omenu.CodeInvalidTimestamp)
	require.NotNil(t, found)
	assert.Equal(t, "/vendor/hours/0/ranges/0/close", found.Path)
}

func TestValidatorConcurrentUse(t *testing.T) {
	v := omenu.NewValidator()
	doc := validDoc()
	done := make(chan omenu.Issues, 4)
	for i := 0; i < 4; i++ {
		go func() { done <- v.Validate(doc) }()
	}
	for i := 0; i < 4; i++ {
		assert.False(t, (<-done).HasErrors())
	}
}

func TestIssuesErrorSummary(t *testing.T) {
	iss := omenu.Issues{
		{Path: "/a", Code: "required", Severity: omenu.SeverityError},
		{Path: "/b", Code: "empty_id", Severity: omenu.SeverityError},
		{Path: "/c", Code: "invalid_enum", Severity: omenu.SeverityWarn},
		{Path: "/d", Code: "out_of_range", Severity: omenu.SeverityWarn},
	}
	msg := iss.Error()
	assert.Contains(t, msg, "required at /a")
	assert.Contains(t, msg, "(total 4)")
	assert.True(t, iss.HasErrors())
	assert.False(t, omenu.Issues{iss[2]}.HasErrors())
}
