package omenu

import (
	"time"

	json "github.com/goccy/go-json"
)

// Document is the root aggregate of the OpenMenu format: one vendor, its
// items, and optionally an in-progress order plus namespaced extensions.
type Document struct {
	OMSVersion string     `json:"oms_version"`
	Metadata   Metadata   `json:"metadata"`
	Vendor     Vendor     `json:"vendor"`
	Items      []Item     `json:"items"`
	Order      *Order     `json:"order,omitempty"`
	Extensions Extensions `json:"extensions,omitempty"`
}

// Extensions maps reverse-DNS namespaces to opaque payloads. Values are kept
// as raw JSON so foreign content survives a round-trip byte-for-byte.
type Extensions map[string]json.RawMessage

// Metadata describes the document itself rather than its contents.
type Metadata struct {
	Created time.Time `json:"created"`
	Source  string    `json:"source"`
	Locale  string    `json:"locale"`
}

// Vendor identifies the food service provider.
type Vendor struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Type         string          `json:"type"`
	LocationID   string          `json:"location_id,omitempty"`
	LocationName string          `json:"location_name,omitempty"`
	Address      *Address        `json:"address,omitempty"`
	Contact      *Contact        `json:"contact,omitempty"`
	Hours        []BusinessHours `json:"hours,omitempty"`
	Cuisine      []string        `json:"cuisine,omitempty"`
	Services     []string        `json:"services,omitempty"`
}

// Address is a physical street address.
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	Region     string `json:"region"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// Contact carries optional vendor contact details.
type Contact struct {
	Phone   string `json:"phone,omitempty"`
	Website string `json:"website,omitempty"`
}

// BusinessHours lists the open ranges for one day of the week.
type BusinessHours struct {
	Day    DayOfWeek   `json:"day"`
	Ranges []TimeRange `json:"ranges"`
}

// DayOfWeek is a lowercase weekday token.
type DayOfWeek string

const (
	Monday    DayOfWeek = "monday"
	Tuesday   DayOfWeek = "tuesday"
	Wednesday DayOfWeek = "wednesday"
	Thursday  DayOfWeek = "thursday"
	Friday    DayOfWeek = "friday"
	Saturday  DayOfWeek = "saturday"
	Sunday    DayOfWeek = "sunday"
)

// TimeRange is an open/close pair in 24-hour HH:MM form.
type TimeRange struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// Item is a purchasable product. An item may own component items (combo
// meals); components form a strict tree and never reference an ancestor.
type Item struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	VendorID    string `json:"vendor_id,omitempty"`
	Description string `json:"description,omitempty"`
	Subcategory string `json:"subcategory,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`

	BasePrice *float64 `json:"base_price,omitempty"`
	Currency  string   `json:"currency,omitempty"`

	Nutrition              *Nutrition               `json:"nutrition,omitempty"`
	Customizations         []Customization          `json:"customizations,omitempty"`
	SelectedCustomizations []SelectedCustomization  `json:"selected_customizations,omitempty"`

	Quantity   *int              `json:"quantity,omitempty"`
	ItemNote   string            `json:"item_note,omitempty"`
	Calculated *CalculatedValues `json:"calculated,omitempty"`

	Components   []Item        `json:"components,omitempty"`
	Availability *Availability `json:"availability,omitempty"`
	Popularity   *Popularity   `json:"popularity,omitempty"`
}

// Measurement is a numeric value with its unit. No unit conversion is ever
// performed; adjustments only add to a same-unit base.
type Measurement struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// Nutrient is a node in the recursive nutrient tree. Details hold child
// nutrients of the same shape (for example fat -> saturated/trans). Child
// values are not required to sum to the parent; aggregation never assumes
// summation consistency.
type Nutrient struct {
	Value   float64             `json:"value"`
	Unit    string              `json:"unit"`
	Details map[string]Nutrient `json:"details,omitempty"`
}

// VitaminMineral is one entry in the flat vitamin/mineral lists.
type VitaminMineral struct {
	Name              string   `json:"name"`
	Value             float64  `json:"value"`
	Unit              string   `json:"unit"`
	DailyValuePercent *float64 `json:"daily_value_percent,omitempty"`
}

// IngredientGroup names a compound ingredient and its sub-ingredients.
type IngredientGroup struct {
	Name        string   `json:"name"`
	Ingredients []string `json:"ingredients"`
}

// NutritionStandards records regulatory labeling context.
type NutritionStandards struct {
	USFDA        *USFDAInfo        `json:"us_fda,omitempty"`
	EURegulation *EURegulationInfo `json:"eu_regulation,omitempty"`
}

// USFDAInfo is US FDA labeling context.
type USFDAInfo struct {
	ServingSizeDescription string `json:"serving_size_description"`
	DailyValueYear         int    `json:"daily_value_year"`
}

// EURegulationInfo is EU regulation labeling context.
type EURegulationInfo struct {
	ReferenceIntakeDescription string `json:"reference_intake_description"`
}

// Nutrition is the per-item nutrition block: a handful of well-known
// nutrients, flat vitamin/mineral lists, and free-text token sets.
type Nutrition struct {
	ServingSize   *Measurement `json:"serving_size,omitempty"`
	Calories      *float64     `json:"calories,omitempty"`
	Protein       *Measurement `json:"protein,omitempty"`
	Fat           *Nutrient    `json:"fat,omitempty"`
	Carbohydrates *Nutrient    `json:"carbohydrates,omitempty"`
	Sodium        *Measurement `json:"sodium,omitempty"`
	Cholesterol   *Measurement `json:"cholesterol,omitempty"`

	Vitamins []VitaminMineral `json:"vitamins,omitempty"`
	Minerals []VitaminMineral `json:"minerals,omitempty"`

	Allergens    []string `json:"allergens,omitempty"`
	DietaryFlags []string `json:"dietary_flags,omitempty"`
	HealthClaims []string `json:"health_claims,omitempty"`

	Ingredients []IngredientGroup   `json:"ingredients,omitempty"`
	Standards   *NutritionStandards `json:"nutrition_standards,omitempty"`
}

// CustomizationType is the closed set of customization kinds.
type CustomizationType string

const (
	SingleSelect CustomizationType = "single_select"
	MultiSelect  CustomizationType = "multi_select"
	Quantity     CustomizationType = "quantity"
	Boolean      CustomizationType = "boolean"
	Text         CustomizationType = "text"
	Range        CustomizationType = "range"
)

// Valid reports whether t is one of the closed set of customization types.
func (t CustomizationType) Valid() bool {
	switch t {
	case SingleSelect, MultiSelect, Quantity, Boolean, Text, Range:
		return true
	}
	return false
}

// Customization is one modification axis on an item. Constraint fields apply
// per type: MinSelections/MaxSelections to multi_select, Min/Max/Step and the
// unit adjustments to quantity and range, Options to the select-like types.
type Customization struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Type     CustomizationType `json:"type"`
	Required bool              `json:"required,omitempty"`
	Default  *Value            `json:"default,omitempty"`

	MinSelections *int `json:"min_selections,omitempty"`
	MaxSelections *int `json:"max_selections,omitempty"`

	Min  *float64 `json:"min,omitempty"`
	Max  *float64 `json:"max,omitempty"`
	Step *float64 `json:"step,omitempty"`

	UnitPriceAdjustment      *float64            `json:"unit_price_adjustment,omitempty"`
	UnitNutritionAdjustments map[string]Nutrient `json:"unit_nutrition_adjustments,omitempty"`

	Options []CustomizationOption `json:"options,omitempty"`
}

// CustomizationOption is one selectable entry of a select-like customization.
type CustomizationOption struct {
	ID                   string              `json:"id"`
	Name                 string              `json:"name"`
	PriceAdjustment      *float64            `json:"price_adjustment,omitempty"`
	NutritionAdjustments map[string]Nutrient `json:"nutrition_adjustments,omitempty"`
	Allergens            []string            `json:"allergens,omitempty"`
	DietaryFlags         []string            `json:"dietary_flags,omitempty"`
}

// SelectedCustomization pairs a customization ID with a chosen value. For
// combo items, the ID may be namespaced "componentID/customizationID" to
// address a component's customization.
type SelectedCustomization struct {
	CustomizationID string `json:"customization_id"`
	Selection       Value  `json:"selection"`
}

// CalculatedValues carries computed results attached to an item. The base
// price and nutrition are never overwritten.
type CalculatedValues struct {
	ItemPrice         float64            `json:"item_price"`
	AdjustedNutrition map[string]float64 `json:"adjusted_nutrition,omitempty"`
}

// Availability is an optional availability window for seasonal or
// time-of-day items. Dates are RFC 3339 timestamps or plain dates.
type Availability struct {
	StartDate  string   `json:"start_date,omitempty"`
	EndDate    string   `json:"end_date,omitempty"`
	TimesOfDay []string `json:"times_of_day,omitempty"`
	DaysOfWeek []string `json:"days_of_week,omitempty"`
}

// Popularity is an optional popularity metric block.
type Popularity struct {
	Rank *int     `json:"rank,omitempty"`
	Tags []string `json:"tags,omitempty"`
}

// OrderStatus is the order lifecycle state.
type OrderStatus string

const (
	StatusDraft     OrderStatus = "draft"
	StatusSubmitted OrderStatus = "submitted"
	StatusConfirmed OrderStatus = "confirmed"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

// Valid reports whether s is a recognized order status.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusSubmitted, StatusConfirmed, StatusPreparing,
		StatusReady, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// OrderType is the fulfillment type.
type OrderType string

const (
	Pickup   OrderType = "pickup"
	Delivery OrderType = "delivery"
	DineIn   OrderType = "dine_in"
)

// Valid reports whether t is a recognized fulfillment type.
func (t OrderType) Valid() bool {
	switch t {
	case Pickup, Delivery, DineIn:
		return true
	}
	return false
}

// PaymentStatus is the payment state of an order.
type PaymentStatus string

const (
	Unpaid PaymentStatus = "unpaid"
	Paid   PaymentStatus = "paid"
)

// Order references the document's item list; it does not own items.
type Order struct {
	ID           string        `json:"id,omitempty"`
	Status       OrderStatus   `json:"status,omitempty"`
	Created      *time.Time    `json:"created,omitempty"`
	PickupTime   *time.Time    `json:"pickup_time,omitempty"`
	DeliveryTime *time.Time    `json:"delivery_time,omitempty"`
	Type         OrderType     `json:"type,omitempty"`
	CustomerNote string        `json:"customer_notes,omitempty"`
	Payment      *Payment      `json:"payment,omitempty"`
	Customer     *Customer     `json:"customer,omitempty"`
	Delivery     *DeliveryInfo `json:"delivery,omitempty"`
}

// Payment summarizes the monetary state of an order. All amounts share one
// currency; no multi-currency arithmetic is defined.
type Payment struct {
	Status   PaymentStatus `json:"status,omitempty"`
	Method   string        `json:"method,omitempty"`
	Subtotal *float64      `json:"subtotal,omitempty"`
	Tax      *float64      `json:"tax,omitempty"`
	Tip      *float64      `json:"tip,omitempty"`
	Total    float64       `json:"total"`
	Currency string        `json:"currency"`
}

// Customer identifies the ordering customer.
type Customer struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

// DeliveryInfo carries the destination for delivery orders.
type DeliveryInfo struct {
	Address      Address `json:"address"`
	Instructions string  `json:"instructions,omitempty"`
}
