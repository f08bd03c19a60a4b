package omenu

import "strings"

// NutrientTotals is an aggregated nutrient profile keyed by nutrient name.
// Nested nutrients use dotted keys ("fat.saturated"). Values carry the
// document's units; no conversion is performed.
type NutrientTotals map[string]float64

// Clone returns an independent copy of the totals.
func (t NutrientTotals) Clone() NutrientTotals {
	out := make(NutrientTotals, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

// Scale multiplies every total by f in place and returns the receiver.
func (t NutrientTotals) Scale(f float64) NutrientTotals {
	for k := range t {
		t[k] *= f
	}
	return t
}

// add folds a nutrient adjustment map into the totals, scaled by factor.
// The walk is a depth-first fold over each node and its details; a parent
// value and its children are both recorded as reported, never reconciled,
// since subtree totals are not required to sum to the parent.
func (t NutrientTotals) add(adj map[string]Nutrient, factor float64) {
	for name, n := range adj {
		t.addNutrient(name, n, factor)
	}
}

func (t NutrientTotals) addNutrient(key string, n Nutrient, factor float64) {
	t[key] += n.Value * factor
	for child, cn := range n.Details {
		t.addNutrient(key+"."+child, cn, factor)
	}
}

// baseTotals flattens an item's declared nutrition into totals. An absent
// block yields empty totals: absent means zero delta, not unknown.
func baseTotals(n *Nutrition) NutrientTotals {
	t := NutrientTotals{}
	if n == nil {
		return t
	}
	if n.Calories != nil {
		t["calories"] = *n.Calories
	}
	if n.Protein != nil {
		t["protein"] = n.Protein.Value
	}
	if n.Fat != nil {
		t.addNutrient("fat", *n.Fat, 1)
	}
	if n.Carbohydrates != nil {
		t.addNutrient("carbohydrates", *n.Carbohydrates, 1)
	}
	if n.Sodium != nil {
		t["sodium"] = n.Sodium.Value
	}
	if n.Cholesterol != nil {
		t["cholesterol"] = n.Cholesterol.Value
	}
	return t
}

// tokenSet accumulates allergen/dietary-flag tokens with case-insensitive
// set semantics, keeping the first-seen casing of each token.
type tokenSet struct {
	order []string
	seen  map[string]struct{}
}

func newTokenSet(initial []string) *tokenSet {
	s := &tokenSet{seen: map[string]struct{}{}}
	s.addAll(initial)
	return s
}

func (s *tokenSet) addAll(tokens []string) {
	for _, tok := range tokens {
		key := strings.ToLower(tok)
		if _, ok := s.seen[key]; ok {
			continue
		}
		s.seen[key] = struct{}{}
		s.order = append(s.order, tok)
	}
}

func (s *tokenSet) union(o *tokenSet) {
	s.addAll(o.order)
}

func (s *tokenSet) slice() []string {
	if len(s.order) == 0 {
		return nil
	}
	return append([]string(nil), s.order...)
}
