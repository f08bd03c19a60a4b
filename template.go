package omenu

import (
	"fmt"
	"time"
)

// ErrUnknownTemplate reports a vendor type Template has no starter for.
type ErrUnknownTemplate struct {
	VendorType string
}

func (e *ErrUnknownTemplate) Error() string {
	return fmt.Sprintf("omenu: no template for vendor type %q", e.VendorType)
}

// MinimalDocument builds the smallest conformant document: a vendor and one
// placeholder item.
func MinimalDocument(vendorID, vendorName, vendorType string) *Document {
	return NewDocument(
		Metadata{Created: time.Now().UTC(), Source: "omenu-go", Locale: "en-US"},
		Vendor{ID: vendorID, Name: vendorName, Type: vendorType},
		[]Item{{ID: "item-1", Name: "Sample Item", Category: "general"}},
	)
}

// Template builds a starter document for a vendor type, pre-populated with
// representative items and customizations. Supported types: restaurant,
// cafe, fast_food, coffee_shop, pizzeria.
func Template(vendorType string) (*Document, error) {
	var items []Item
	var name string
	switch vendorType {
	case "restaurant":
		name = "Sample Restaurant"
		items = restaurantItems()
	case "cafe":
		name = "Sample Cafe"
		items = cafeItems()
	case "fast_food":
		name = "Sample Fast Food"
		items = fastFoodItems()
	case "coffee_shop":
		name = "Sample Coffee Shop"
		items = coffeeShopItems()
	case "pizzeria":
		name = "Sample Pizzeria"
		items = pizzeriaItems()
	default:
		return nil, &ErrUnknownTemplate{VendorType: vendorType}
	}
	return NewDocument(
		Metadata{Created: time.Now().UTC(), Source: "omenu-go", Locale: "en-US"},
		Vendor{ID: "vendor-" + vendorType, Name: name, Type: vendorType},
		items,
	), nil
}

func restaurantItems() []Item {
	return []Item{
		{
			ID: "house-salad", Name: "House Salad", Category: "starters",
			BasePrice: f64(8.50), Currency: "USD",
			Nutrition: &Nutrition{
				Calories: f64(180),
				Protein:  &Measurement{Value: 4, Unit: "g"},
				Fat:      &Nutrient{Value: 12, Unit: "g"},
				Allergens: []string{
					"tree nuts",
				},
				DietaryFlags: []string{"vegetarian", "gluten-free"},
			},
			Customizations: []Customization{{
				ID: "dressing", Name: "Dressing", Type: SingleSelect, Required: true,
				Default: vp(StringValue("vinaigrette")),
				Options: []CustomizationOption{
					{ID: "vinaigrette", Name: "Balsamic Vinaigrette"},
					{ID: "ranch", Name: "Ranch", PriceAdjustment: f64(0.50)},
					{ID: "none", Name: "No Dressing"},
				},
			}},
		},
		{
			ID: "grilled-salmon", Name: "Grilled Salmon", Category: "mains",
			BasePrice: f64(21.00), Currency: "USD",
			Nutrition: &Nutrition{
				Calories:  f64(520),
				Protein:   &Measurement{Value: 38, Unit: "g"},
				Allergens: []string{"fish"},
			},
			Customizations: []Customization{{
				ID: "side", Name: "Side", Type: SingleSelect, Required: true,
				Default: vp(StringValue("rice")),
				Options: []CustomizationOption{
					{ID: "rice", Name: "Steamed Rice"},
					{ID: "fries", Name: "Fries", PriceAdjustment: f64(1.00)},
					{ID: "vegetables", Name: "Seasonal Vegetables"},
				},
			}},
		},
	}
}

func cafeItems() []Item {
	return []Item{
		{
			ID: "avocado-toast", Name: "Avocado Toast", Category: "breakfast",
			BasePrice: f64(9.00), Currency: "USD",
			Nutrition: &Nutrition{
				Calories:     f64(340),
				Allergens:    []string{"wheat"},
				DietaryFlags: []string{"vegetarian"},
			},
			Customizations: []Customization{{
				ID: "extras", Name: "Extras", Type: MultiSelect,
				MinSelections: ip(0), MaxSelections: ip(2),
				Options: []CustomizationOption{
					{ID: "egg", Name: "Poached Egg", PriceAdjustment: f64(1.50),
						NutritionAdjustments: map[string]Nutrient{"calories": {Value: 70, Unit: "kcal"}},
						Allergens:            []string{"egg"}},
					{ID: "feta", Name: "Feta", PriceAdjustment: f64(1.00),
						Allergens: []string{"milk"}},
					{ID: "chili", Name: "Chili Flakes"},
				},
			}},
		},
		{
			ID: "iced-tea", Name: "Iced Tea", Category: "drinks",
			BasePrice: f64(3.50), Currency: "USD",
			Customizations: []Customization{{
				ID: "sweetened", Name: "Sweetened", Type: Boolean,
				Default: vp(BoolValue(false)),
			}},
		},
	}
}

func fastFoodItems() []Item {
	burger := Item{
		ID: "classic-burger", Name: "Classic Burger", Category: "burgers",
		BasePrice: f64(5.99), Currency: "USD",
		Nutrition: &Nutrition{
			Calories:  f64(550),
			Allergens: []string{"wheat", "sesame"},
		},
		Customizations: []Customization{{
			ID: "toppings", Name: "Toppings", Type: MultiSelect,
			MaxSelections: ip(4),
			Options: []CustomizationOption{
				{ID: "cheese", Name: "Cheese", PriceAdjustment: f64(0.50),
					Allergens: []string{"milk"}},
				{ID: "bacon", Name: "Bacon", PriceAdjustment: f64(1.00)},
				{ID: "lettuce", Name: "Lettuce"},
				{ID: "tomato", Name: "Tomato"},
				{ID: "pickles", Name: "Pickles"},
			},
		}},
	}
	fries := Item{
		ID: "fries", Name: "Fries", Category: "sides",
		BasePrice: f64(2.49), Currency: "USD",
		Customizations: []Customization{{
			ID: "size", Name: "Size", Type: SingleSelect, Required: true,
			Default: vp(StringValue("medium")),
			Options: []CustomizationOption{
				{ID: "small", Name: "Small", PriceAdjustment: f64(-0.50)},
				{ID: "medium", Name: "Medium"},
				{ID: "large", Name: "Large", PriceAdjustment: f64(0.70)},
			},
		}},
	}
	drink := Item{
		ID: "soft-drink", Name: "Soft Drink", Category: "drinks",
		BasePrice: f64(1.99), Currency: "USD",
	}
	combo := Item{
		ID: "burger-combo", Name: "Burger Combo", Category: "combos",
		BasePrice:  f64(0),
		Currency:   "USD",
		Components: []Item{burger, fries, drink},
	}
	return []Item{burger, fries, drink, combo}
}

func coffeeShopItems() []Item {
	return []Item{
		{
			ID: "espresso", Name: "Espresso", Category: "coffee",
			BasePrice: f64(3.00), Currency: "USD",
			Nutrition: &Nutrition{Calories: f64(5)},
			Customizations: []Customization{
				{
					ID: "size", Name: "Size", Type: SingleSelect, Required: true,
					Default: vp(StringValue("medium")),
					Options: []CustomizationOption{
						{ID: "small", Name: "Small", PriceAdjustment: f64(-0.50)},
						{ID: "medium", Name: "Medium"},
						{ID: "large", Name: "Large", PriceAdjustment: f64(0.50)},
					},
				},
				{
					ID: "milk", Name: "Milk", Type: SingleSelect,
					Default: vp(StringValue("none")),
					Options: []CustomizationOption{
						{ID: "none", Name: "No Milk"},
						{ID: "whole", Name: "Whole Milk", Allergens: []string{"milk"}},
						{ID: "oat", Name: "Oat Milk", PriceAdjustment: f64(0.60),
							DietaryFlags: []string{"vegan"}},
					},
				},
				{
					ID: "shots", Name: "Espresso Shots", Type: Quantity, Required: true,
					Default:             vp(NumberValue(2)),
					Min:                 f64(1),
					Max:                 f64(6),
					Step:                f64(1),
					UnitPriceAdjustment: f64(0.75),
					UnitNutritionAdjustments: map[string]Nutrient{
						"calories": {Value: 3, Unit: "kcal"},
					},
				},
				{
					ID: "flavor", Name: "Flavor Syrups", Type: MultiSelect,
					MaxSelections: ip(3),
					Options: []CustomizationOption{
						{ID: "vanilla", Name: "Vanilla", PriceAdjustment: f64(0.50)},
						{ID: "caramel", Name: "Caramel", PriceAdjustment: f64(0.50)},
						{ID: "hazelnut", Name: "Hazelnut", PriceAdjustment: f64(0.50),
							Allergens: []string{"tree nuts"}},
					},
				},
			},
		},
		{
			ID: "croissant", Name: "Butter Croissant", Category: "pastries",
			BasePrice: f64(3.75), Currency: "USD",
			Nutrition: &Nutrition{
				Calories:  f64(280),
				Allergens: []string{"wheat", "milk", "egg"},
			},
		},
	}
}

func pizzeriaItems() []Item {
	return []Item{{
		ID: "margherita", Name: "Margherita", Category: "pizza",
		BasePrice: f64(12.00), Currency: "USD",
		Nutrition: &Nutrition{
			Calories:     f64(980),
			Allergens:    []string{"wheat", "milk"},
			DietaryFlags: []string{"vegetarian"},
		},
		Customizations: []Customization{
			{
				ID: "size", Name: "Size", Type: SingleSelect, Required: true,
				Default: vp(StringValue("12in")),
				Options: []CustomizationOption{
					{ID: "10in", Name: `10"`, PriceAdjustment: f64(-2.00)},
					{ID: "12in", Name: `12"`},
					{ID: "16in", Name: `16"`, PriceAdjustment: f64(4.00)},
				},
			},
			{
				ID: "toppings", Name: "Extra Toppings", Type: MultiSelect,
				MaxSelections: ip(5),
				Options: []CustomizationOption{
					{ID: "mushroom", Name: "Mushroom", PriceAdjustment: f64(1.50)},
					{ID: "olive", Name: "Olives", PriceAdjustment: f64(1.50)},
					{ID: "pepperoni", Name: "Pepperoni", PriceAdjustment: f64(2.00)},
					{ID: "basil", Name: "Fresh Basil", PriceAdjustment: f64(1.00)},
				},
			},
			{
				ID: "note", Name: "Kitchen Note", Type: Text,
			},
		},
	}}
}

func f64(v float64) *float64 { return &v }
func ip(v int) *int          { return &v }
func vp(v Value) *Value      { return &v }
