package omenu

import (
	"math"
	"strings"
)

// stepTolerance absorbs floating-point error when checking that a value sits
// on a step multiple.
const stepTolerance = 1e-6

// PricedItem is the result of resolving an item's selections: the effective
// per-unit and total price and nutrient profile. The underlying item is
// never mutated.
type PricedItem struct {
	Item     *Item
	Quantity int
	Currency string

	// UnitPrice and UnitNutrition are per-unit values kept for display;
	// the totals are unit values multiplied by the item quantity.
	UnitPrice      float64
	TotalPrice     float64
	UnitNutrition  NutrientTotals
	TotalNutrition NutrientTotals

	// Allergens and DietaryFlags are the case-insensitive union of the base
	// nutrition's tokens and every chosen option's tokens.
	Allergens    []string
	DietaryFlags []string
}

// CalculatedValues projects the result into the document model's calculated
// block for embedding alongside the item.
func (p *PricedItem) CalculatedValues() *CalculatedValues {
	cv := &CalculatedValues{ItemPrice: p.UnitPrice}
	if len(p.UnitNutrition) > 0 {
		cv.AdjustedNutrition = map[string]float64(p.UnitNutrition.Clone())
	}
	return cv
}

// ResolveAndPrice resolves the caller's selections against the item's
// customization definitions and computes the effective price and nutrient
// profile. Required customizations without a selection fall back to their
// declared default. Combo components are resolved recursively against
// selections namespaced "componentID/customizationID".
//
// Any resolution failure aborts the whole calculation for the item; there
// are no partial totals. Rounding to minor-unit precision happens only at
// the final aggregation step.
func ResolveAndPrice(item *Item, selections []SelectedCustomization) (*PricedItem, error) {
	acc, err := resolveItem(item, selections)
	if err != nil {
		return nil, &ResolutionError{ItemID: item.ID, Err: err}
	}
	qty := itemQuantity(item)
	return &PricedItem{
		Item:           item,
		Quantity:       qty,
		Currency:       item.Currency,
		UnitPrice:      roundMinorUnit(acc.price),
		TotalPrice:     roundMinorUnit(acc.price * float64(qty)),
		UnitNutrition:  acc.nutrition,
		TotalNutrition: acc.nutrition.Clone().Scale(float64(qty)),
		Allergens:      acc.allergens.slice(),
		DietaryFlags:   acc.flags.slice(),
	}, nil
}

// ApplyCalculated resolves each item's stored selections and attaches the
// result as its calculated block, leaving base values untouched.
func (d *Document) ApplyCalculated() error {
	for i := range d.Items {
		it := &d.Items[i]
		priced, err := ResolveAndPrice(it, it.SelectedCustomizations)
		if err != nil {
			return err
		}
		it.Calculated = priced.CalculatedValues()
	}
	return nil
}

type accumulator struct {
	price     float64
	nutrition NutrientTotals
	allergens *tokenSet
	flags     *tokenSet
}

func resolveItem(item *Item, selections []SelectedCustomization) (*accumulator, error) {
	acc := &accumulator{
		nutrition: baseTotals(item.Nutrition),
		allergens: newTokenSet(nil),
		flags:     newTokenSet(nil),
	}
	if item.BasePrice != nil {
		acc.price = *item.BasePrice
	}
	if item.Nutrition != nil {
		acc.allergens.addAll(item.Nutrition.Allergens)
		acc.flags.addAll(item.Nutrition.DietaryFlags)
	}

	own, byComponent := splitSelections(item, selections)

	defs := make(map[string]*Customization, len(item.Customizations))
	for i := range item.Customizations {
		defs[item.Customizations[i].ID] = &item.Customizations[i]
	}

	resolved := map[string]bool{}
	for _, sel := range own {
		def, ok := defs[sel.CustomizationID]
		if !ok {
			return nil, &UnknownCustomizationError{CustomizationID: sel.CustomizationID}
		}
		if err := checkSelection(def, sel.Selection); err != nil {
			return nil, err
		}
		acc.apply(def, sel.Selection)
		resolved[def.ID] = true
	}

	// Required customizations without a caller selection resolve through
	// their declared default, which must satisfy the same constraints.
	for i := range item.Customizations {
		def := &item.Customizations[i]
		if !def.Required || resolved[def.ID] {
			continue
		}
		if def.Default == nil || def.Default.IsAbsent() {
			return nil, &MissingRequiredSelectionError{CustomizationID: def.ID}
		}
		if err := checkSelection(def, *def.Default); err != nil {
			return nil, err
		}
		acc.apply(def, *def.Default)
	}

	for i := range item.Components {
		comp := &item.Components[i]
		sub, err := resolveItem(comp, byComponent[comp.ID])
		if err != nil {
			return nil, &ResolutionError{ItemID: comp.ID, Err: err}
		}
		scale := float64(itemQuantity(comp))
		acc.price += sub.price * scale
		acc.nutrition.add(totalsAsAdjustment(sub.nutrition), scale)
		acc.allergens.union(sub.allergens)
		acc.flags.union(sub.flags)
	}

	return acc, nil
}

// splitSelections partitions selections into the item's own and those
// namespaced to one of its components. A "component/customization" ID only
// counts as namespaced when the prefix names an actual component.
func splitSelections(item *Item, selections []SelectedCustomization) ([]SelectedCustomization, map[string][]SelectedCustomization) {
	if len(item.Components) == 0 {
		return selections, nil
	}
	components := make(map[string]bool, len(item.Components))
	for _, c := range item.Components {
		components[c.ID] = true
	}
	var own []SelectedCustomization
	nested := map[string][]SelectedCustomization{}
	for _, sel := range selections {
		if comp, rest, ok := strings.Cut(sel.CustomizationID, "/"); ok && components[comp] {
			nested[comp] = append(nested[comp], SelectedCustomization{
				CustomizationID: rest,
				Selection:       sel.Selection,
			})
			continue
		}
		own = append(own, sel)
	}
	return own, nested
}

func totalsAsAdjustment(t NutrientTotals) map[string]Nutrient {
	adj := make(map[string]Nutrient, len(t))
	for k, v := range t {
		adj[k] = Nutrient{Value: v}
	}
	return adj
}

// checkSelection type-checks a selection value against its definition and
// enforces the definition's constraints. A nil return means the value is
// resolvable.
func checkSelection(def *Customization, v Value) error {
	invalid := func(rule SelectionRule) error {
		return &InvalidSelectionError{CustomizationID: def.ID, Rule: rule, Value: v}
	}
	switch def.Type {
	case SingleSelect:
		id, ok := v.String()
		if !ok {
			return invalid(RuleWrongType)
		}
		if def.findOption(id) == nil {
			return invalid(RuleUnknownOption)
		}
	case MultiSelect:
		ids, ok := v.StringList()
		if !ok {
			return invalid(RuleWrongType)
		}
		distinct := distinctIDs(ids)
		for _, id := range distinct {
			if def.findOption(id) == nil {
				return invalid(RuleUnknownOption)
			}
		}
		// Absent bounds default to 0 and unbounded.
		min := 0
		if def.MinSelections != nil {
			min = *def.MinSelections
		}
		if len(distinct) < min {
			return invalid(RuleCardinality)
		}
		if def.MaxSelections != nil && len(distinct) > *def.MaxSelections {
			return invalid(RuleCardinality)
		}
	case Quantity, Range:
		n, ok := v.Number()
		if !ok {
			return invalid(RuleWrongType)
		}
		if def.Min != nil && n < *def.Min {
			return invalid(RuleOutOfRange)
		}
		if def.Max != nil && n > *def.Max {
			return invalid(RuleOutOfRange)
		}
		if def.Step != nil && *def.Step > 0 {
			origin := 0.0
			if def.Min != nil {
				origin = *def.Min
			}
			steps := (n - origin) / *def.Step
			if math.Abs(steps-math.Round(steps)) > stepTolerance {
				return invalid(RuleStep)
			}
		}
	case Boolean:
		if _, ok := v.Bool(); !ok {
			return invalid(RuleWrongType)
		}
	case Text:
		if _, ok := v.String(); !ok {
			return invalid(RuleWrongType)
		}
	default:
		return invalid(RuleWrongType)
	}
	return nil
}

// apply folds a checked selection's price and nutrition contribution into
// the accumulator. Absent adjustment fields contribute zero delta, leaving
// present base values unchanged.
func (acc *accumulator) apply(def *Customization, v Value) {
	switch def.Type {
	case SingleSelect:
		id, _ := v.String()
		acc.applyOption(def.findOption(id))
	case MultiSelect:
		ids, _ := v.StringList()
		for _, id := range distinctIDs(ids) {
			acc.applyOption(def.findOption(id))
		}
	case Quantity:
		// Adjustments scale linearly with the value itself, from zero.
		n, _ := v.Number()
		acc.applyUnitAdjustments(def, n)
	case Range:
		n, _ := v.Number()
		acc.applyUnitAdjustments(def, n)
	case Boolean:
		if on, _ := v.Bool(); on {
			acc.applyUnitAdjustments(def, 1)
		}
	case Text:
		// Free text carries no numeric contribution.
	}
}

func (acc *accumulator) applyOption(opt *CustomizationOption) {
	if opt == nil {
		return
	}
	if opt.PriceAdjustment != nil {
		acc.price += *opt.PriceAdjustment
	}
	acc.nutrition.add(opt.NutritionAdjustments, 1)
	acc.allergens.addAll(opt.Allergens)
	acc.flags.addAll(opt.DietaryFlags)
}

func (acc *accumulator) applyUnitAdjustments(def *Customization, factor float64) {
	if def.UnitPriceAdjustment != nil {
		acc.price += *def.UnitPriceAdjustment * factor
	}
	acc.nutrition.add(def.UnitNutritionAdjustments, factor)
}

func (c *Customization) findOption(id string) *CustomizationOption {
	for i := range c.Options {
		if c.Options[i].ID == id {
			return &c.Options[i]
		}
	}
	return nil
}

// distinctIDs applies set semantics to a multi_select list, preserving the
// first occurrence order.
func distinctIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
