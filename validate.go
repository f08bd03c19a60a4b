package omenu

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"
)

// paymentEpsilon is the allowed drift between a payment's declared total and
// the sum of its parts.
const paymentEpsilon = 0.01

// knownVendorTypes are the vendor types documents commonly use. An unlisted
// type is advisory only.
var knownVendorTypes = map[string]bool{
	"restaurant":  true,
	"cafe":        true,
	"fast_food":   true,
	"coffee_shop": true,
	"pizzeria":    true,
	"bakery":      true,
	"food_truck":  true,
	"bar":         true,
	"other":       true,
}

// Validator checks a document against the format's conformance rules. It is
// a pure function of its input: no I/O, no shared state, safe for concurrent
// use once constructed.
type Validator struct {
	currencyRe *regexp.Regexp
	clockRe    *regexp.Regexp
}

// NewValidator compiles the validator's patterns.
func NewValidator() *Validator {
	return &Validator{
		currencyRe: regexp.MustCompile(`^[A-Z]{3}$`),
		clockRe:    regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`),
	}
}

// Validate runs every conformance check and reports all findings in one
// pass; it never fails fast. An empty result (or one with only warnings)
// means the document meets minimum conformance.
func Validate(doc *Document) Issues {
	return NewValidator().Validate(doc)
}

// Validate reports every rule violation found in the document.
func (v *Validator) Validate(doc *Document) Issues {
	iss := Issues{}
	root := Path{}

	iss = v.checkVersion(iss, root.Field("oms_version"), doc.OMSVersion)
	iss = v.checkMetadata(iss, root.Field("metadata"), &doc.Metadata)
	iss = v.checkVendor(iss, root.Field("vendor"), &doc.Vendor)

	itemsPath := root.Field("items")
	if len(doc.Items) == 0 {
		iss = append(iss, itemsPath.Issue(SeverityError, CodeRequired,
			"document must contain at least one item"))
	}
	seenItems := map[string]bool{}
	for i := range doc.Items {
		it := &doc.Items[i]
		p := itemsPath.Index(i)
		if it.ID != "" && seenItems[it.ID] {
			iss = append(iss, p.Field("id").Issue(SeverityWarn, CodeDuplicateID,
				fmt.Sprintf("item id %q appears more than once", it.ID), "id", it.ID))
		}
		seenItems[it.ID] = true
		iss = v.checkItem(iss, p, it)
	}

	if doc.Order != nil {
		iss = v.checkOrder(iss, root.Field("order"), doc.Order)
	}
	return iss
}

func (v *Validator) checkVersion(iss Issues, p Path, version string) Issues {
	if version == "" {
		return append(iss, p.Issue(SeverityError, CodeRequired, "oms_version is required"))
	}
	major, _, _ := strings.Cut(version, ".")
	if major != "1" {
		iss = append(iss, p.Issue(SeverityError, CodeUnsupportedVersion,
			fmt.Sprintf("unsupported format version %q", version), "version", version))
	}
	return iss
}

func (v *Validator) checkMetadata(iss Issues, p Path, m *Metadata) Issues {
	if m.Created.IsZero() {
		iss = append(iss, p.Field("created").Issue(SeverityError, CodeInvalidTimestamp,
			"created must be a valid timestamp"))
	}
	if m.Source == "" {
		iss = append(iss, p.Field("source").Issue(SeverityWarn, CodeRequired,
			"source should identify the generating system"))
	}
	if m.Locale == "" {
		iss = append(iss, p.Field("locale").Issue(SeverityWarn, CodeRequired,
			"locale should be set"))
	}
	return iss
}

func (v *Validator) checkVendor(iss Issues, p Path, vendor *Vendor) Issues {
	if vendor.ID == "" {
		iss = append(iss, p.Field("id").Issue(SeverityError, CodeRequired, "vendor id is required"))
	}
	if vendor.Name == "" {
		iss = append(iss, p.Field("name").Issue(SeverityError, CodeRequired, "vendor name is required"))
	}
	if vendor.Type == "" {
		iss = append(iss, p.Field("type").Issue(SeverityError, CodeRequired, "vendor type is required"))
	} else if !knownVendorTypes[vendor.Type] {
		iss = append(iss, p.Field("type").Issue(SeverityWarn, CodeInvalidEnum,
			fmt.Sprintf("unrecognized vendor type %q", vendor.Type), "type", vendor.Type))
	}
	for i, h := range vendor.Hours {
		hp := p.Field("hours").Index(i)
		switch h.Day {
		case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		default:
			iss = append(iss, hp.Field("day").Issue(SeverityError, CodeInvalidEnum,
				fmt.Sprintf("unrecognized day %q", h.Day), "day", string(h.Day)))
		}
		for j, r := range h.Ranges {
			rp := hp.Field("ranges").Index(j)
			if !v.clockRe.MatchString(r.Open) {
				iss = append(iss, rp.Field("open").Issue(SeverityError, CodeInvalidTimestamp,
					fmt.Sprintf("%q is not a valid HH:MM time", r.Open), "got", r.Open))
			}
			if !v.clockRe.MatchString(r.Close) {
				iss = append(iss, rp.Field("close").Issue(SeverityError, CodeInvalidTimestamp,
					fmt.Sprintf("%q is not a valid HH:MM time", r.Close), "got", r.Close))
			}
		}
	}
	return iss
}

func (v *Validator) checkItem(iss Issues, p Path, it *Item) Issues {
	if it.ID == "" {
		iss = append(iss, p.Field("id").Issue(SeverityError, CodeEmptyID, "item id must be non-empty"))
	}
	if it.Name == "" {
		iss = append(iss, p.Field("name").Issue(SeverityError, CodeRequired, "item name is required"))
	}
	if it.Category == "" {
		iss = append(iss, p.Field("category").Issue(SeverityError, CodeRequired, "item category is required"))
	}
	if it.Currency != "" && !v.currencyRe.MatchString(it.Currency) {
		iss = append(iss, p.Field("currency").Issue(SeverityError, CodeInvalidCurrency,
			fmt.Sprintf("%q is not a 3-letter uppercase currency code", it.Currency), "got", it.Currency))
	}
	if it.BasePrice != nil && *it.BasePrice < 0 {
		iss = append(iss, p.Field("base_price").Issue(SeverityWarn, CodeOutOfRange,
			"base price is negative", "got", *it.BasePrice))
	}
	if it.Quantity != nil && *it.Quantity < 1 {
		iss = append(iss, p.Field("quantity").Issue(SeverityWarn, CodeOutOfRange,
			"quantity should be at least 1", "got", *it.Quantity))
	}

	seen := map[string]bool{}
	custPath := p.Field("customizations")
	for i := range it.Customizations {
		c := &it.Customizations[i]
		cp := custPath.Index(i)
		if c.ID != "" && seen[c.ID] {
			iss = append(iss, cp.Field("id").Issue(SeverityError, CodeDuplicateID,
				fmt.Sprintf("customization id %q appears more than once", c.ID), "id", c.ID))
		}
		seen[c.ID] = true
		iss = v.checkCustomization(iss, cp, c)
	}

	iss = v.checkSelections(iss, p, it)

	if it.Availability != nil {
		iss = v.checkAvailability(iss, p.Field("availability"), it.Availability)
	}
	compPath := p.Field("components")
	for i := range it.Components {
		iss = v.checkItem(iss, compPath.Index(i), &it.Components[i])
	}
	return iss
}

func (v *Validator) checkCustomization(iss Issues, p Path, c *Customization) Issues {
	if c.ID == "" {
		iss = append(iss, p.Field("id").Issue(SeverityError, CodeEmptyID,
			"customization id must be non-empty"))
	}
	if c.Name == "" {
		iss = append(iss, p.Field("name").Issue(SeverityError, CodeRequired,
			"customization name is required"))
	}
	if !c.Type.Valid() {
		iss = append(iss, p.Field("type").Issue(SeverityError, CodeInvalidEnum,
			fmt.Sprintf("unrecognized customization type %q", c.Type), "type", string(c.Type)))
		return iss
	}

	switch c.Type {
	case SingleSelect, MultiSelect:
		if len(c.Options) == 0 {
			iss = append(iss, p.Field("options").Issue(SeverityError, CodeMissingOptions,
				fmt.Sprintf("%s customizations require options", c.Type)))
		}
		seen := map[string]bool{}
		for i, opt := range c.Options {
			op := p.Field("options").Index(i)
			if opt.ID == "" {
				iss = append(iss, op.Field("id").Issue(SeverityError, CodeEmptyID,
					"option id must be non-empty"))
			} else if seen[opt.ID] {
				iss = append(iss, op.Field("id").Issue(SeverityError, CodeDuplicateID,
					fmt.Sprintf("option id %q appears more than once", opt.ID), "id", opt.ID))
			}
			seen[opt.ID] = true
		}
		if c.Type == MultiSelect && c.MinSelections != nil && c.MaxSelections != nil &&
			*c.MinSelections > *c.MaxSelections {
			iss = append(iss, p.Field("min_selections").Issue(SeverityError, CodeInvalidBounds,
				"min_selections exceeds max_selections",
				"min", *c.MinSelections, "max", *c.MaxSelections))
		}
	case Quantity, Range:
		if c.Min != nil && c.Max != nil && *c.Min > *c.Max {
			iss = append(iss, p.Field("min").Issue(SeverityError, CodeInvalidBounds,
				"min exceeds max", "min", *c.Min, "max", *c.Max))
		}
		if c.Step != nil && *c.Step <= 0 {
			iss = append(iss, p.Field("step").Issue(SeverityError, CodeInvalidStep,
				"step must be positive", "got", *c.Step))
		}
	}

	if c.Default != nil && !c.Default.IsAbsent() {
		if err := checkSelection(c, *c.Default); err != nil {
			iss = append(iss, selectionIssue(p.Field("default"), err, *c.Default))
		}
	}
	return iss
}

// checkSelections validates an item's stored selections against its own and
// its components' customization definitions.
func (v *Validator) checkSelections(iss Issues, p Path, it *Item) Issues {
	if len(it.SelectedCustomizations) == 0 {
		return iss
	}
	defs := map[string]*Customization{}
	for i := range it.Customizations {
		defs[it.Customizations[i].ID] = &it.Customizations[i]
	}
	for i := range it.Components {
		comp := &it.Components[i]
		for j := range comp.Customizations {
			defs[comp.ID+"/"+comp.Customizations[j].ID] = &comp.Customizations[j]
		}
	}
	selPath := p.Field("selected_customizations")
	for i, sel := range it.SelectedCustomizations {
		sp := selPath.Index(i)
		def, ok := defs[sel.CustomizationID]
		if !ok {
			iss = append(iss, sp.Field("customization_id").Issue(SeverityError, CodeUnknownCustomization,
				fmt.Sprintf("no customization %q on this item", sel.CustomizationID),
				"id", sel.CustomizationID))
			continue
		}
		if err := checkSelection(def, sel.Selection); err != nil {
			iss = append(iss, selectionIssue(sp.Field("selection"), err, sel.Selection))
		}
	}
	return iss
}

func (v *Validator) checkAvailability(iss Issues, p Path, a *Availability) Issues {
	check := func(field, value string) {
		if value == "" {
			return
		}
		if !validDate(value) {
			iss = append(iss, p.Field(field).Issue(SeverityWarn, CodeInvalidTimestamp,
				fmt.Sprintf("%q is not a date or timestamp", value), "got", value))
		}
	}
	check("start_date", a.StartDate)
	check("end_date", a.EndDate)
	return iss
}

func (v *Validator) checkOrder(iss Issues, p Path, o *Order) Issues {
	if o.Status != "" && !o.Status.Valid() {
		iss = append(iss, p.Field("status").Issue(SeverityError, CodeInvalidEnum,
			fmt.Sprintf("unrecognized order status %q", o.Status), "status", string(o.Status)))
	}
	if o.Type != "" && !o.Type.Valid() {
		iss = append(iss, p.Field("type").Issue(SeverityError, CodeInvalidEnum,
			fmt.Sprintf("unrecognized order type %q", o.Type), "type", string(o.Type)))
	}

	if o.Payment != nil {
		pp := p.Field("payment")
		pay := o.Payment
		if pay.Currency != "" && !v.currencyRe.MatchString(pay.Currency) {
			iss = append(iss, pp.Field("currency").Issue(SeverityError, CodeInvalidCurrency,
				fmt.Sprintf("%q is not a 3-letter uppercase currency code", pay.Currency), "got", pay.Currency))
		}
		if pay.Total <= 0 {
			iss = append(iss, pp.Field("total").Issue(SeverityError, CodeOutOfRange,
				"payment total must be positive", "got", pay.Total))
		}
		if pay.Subtotal != nil {
			sum := *pay.Subtotal
			if pay.Tax != nil {
				sum += *pay.Tax
			}
			if pay.Tip != nil {
				sum += *pay.Tip
			}
			if math.Abs(sum-pay.Total) > paymentEpsilon {
				iss = append(iss, pp.Field("total").Issue(SeverityError, CodePaymentMismatch,
					fmt.Sprintf("subtotal+tax+tip (%.2f) does not match total (%.2f)", sum, pay.Total),
					"sum", sum, "total", pay.Total))
			}
		}
	}

	if o.Type == Delivery && o.Delivery == nil {
		iss = append(iss, p.Field("delivery").Issue(SeverityWarn, CodeDeliveryMismatch,
			"delivery orders should carry delivery information"))
	}
	if o.Type != "" && o.Type != Delivery && o.Delivery != nil {
		iss = append(iss, p.Field("delivery").Issue(SeverityWarn, CodeDeliveryMismatch,
			fmt.Sprintf("delivery information present on a %s order", o.Type)))
	}
	return iss
}

// selectionIssue converts a resolver selection error into a validation issue
// at the given path.
func selectionIssue(p Path, err error, val Value) Issue {
	var inv *InvalidSelectionError
	if !errors.As(err, &inv) {
		return p.Issue(SeverityError, CodeDefaultMismatch, err.Error())
	}
	code := CodeDefaultMismatch
	switch inv.Rule {
	case RuleUnknownOption:
		code = CodeUnknownOption
	case RuleOutOfRange:
		code = CodeOutOfRange
	case RuleCardinality:
		code = CodeCardinality
	case RuleStep:
		code = CodeInvalidStep
	}
	return p.Issue(SeverityError, code,
		fmt.Sprintf("value %s breaks rule %s of customization %q", val.GoString(), inv.Rule, inv.CustomizationID),
		"rule", string(inv.Rule), "customization_id", inv.CustomizationID)
}

// validDate accepts RFC 3339 timestamps and plain YYYY-MM-DD dates.
func validDate(s string) bool {
	if _, err := time.Parse(time.RFC3339, s); err == nil {
		return true
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
