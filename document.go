package omenu

import (
	"fmt"
	"math"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/lucsky/cuid"
	"github.com/mitchellh/mapstructure"
)

// documentWire mirrors Document with pointer fields so Parse can tell a
// missing MUST field apart from a present-but-empty one.
type documentWire struct {
	OMSVersion *string    `json:"oms_version"`
	Metadata   *Metadata  `json:"metadata"`
	Vendor     *Vendor    `json:"vendor"`
	Items      *[]Item    `json:"items"`
	Order      *Order     `json:"order"`
	Extensions Extensions `json:"extensions"`
}

// Parse decodes a canonical UTF-8 JSON document. It fails with
// *MalformedDocumentError when the top level is not an object or a MUST
// field (oms_version, metadata, vendor, items) is absent or mistyped.
// Unrecognized fields outside extensions are dropped; extensions payloads
// are retained byte-for-byte.
//
// Parse does not run conformance validation; use Validate for that.
func Parse(data []byte) (*Document, error) {
	var w documentWire
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, &MalformedDocumentError{Reason: err.Error(), cause: err}
	}
	switch {
	case w.OMSVersion == nil:
		return nil, &MalformedDocumentError{Reason: `missing required field "oms_version"`}
	case w.Metadata == nil:
		return nil, &MalformedDocumentError{Reason: `missing required field "metadata"`}
	case w.Vendor == nil:
		return nil, &MalformedDocumentError{Reason: `missing required field "vendor"`}
	case w.Items == nil:
		return nil, &MalformedDocumentError{Reason: `missing required field "items"`}
	}
	return &Document{
		OMSVersion: *w.OMSVersion,
		Metadata:   *w.Metadata,
		Vendor:     *w.Vendor,
		Items:      *w.Items,
		Order:      w.Order,
		Extensions: w.Extensions,
	}, nil
}

// Marshal serializes the document as compact JSON, suitable for tag payloads.
func (d *Document) Marshal() ([]byte, error) {
	return json.Marshal(d)
}

// MarshalIndent serializes the document as indented JSON for files and humans.
func (d *Document) MarshalIndent() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// NewDocument assembles a document with the current format version.
func NewDocument(meta Metadata, vendor Vendor, items []Item) *Document {
	return &Document{
		OMSVersion: Version,
		Metadata:   meta,
		Vendor:     vendor,
		Items:      items,
	}
}

// FindItem returns the item with the given ID, or nil. Components are not
// searched; they are addressed through their parent.
func (d *Document) FindItem(id string) *Item {
	for i := range d.Items {
		if d.Items[i].ID == id {
			return &d.Items[i]
		}
	}
	return nil
}

// AddItem appends an item to the document.
func (d *Document) AddItem(item Item) {
	d.Items = append(d.Items, item)
}

// RemoveItem deletes the item with the given ID and reports whether anything
// was removed.
func (d *Document) RemoveItem(id string) bool {
	kept := d.Items[:0]
	for _, it := range d.Items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	removed := len(kept) < len(d.Items)
	d.Items = kept
	return removed
}

// SetOrder attaches order information to the document.
func (d *Document) SetOrder(order Order) {
	d.Order = &order
}

// UpdateOrderStatus changes the status of the attached order, failing when
// the document has none.
func (d *Document) UpdateOrderStatus(status OrderStatus) error {
	if d.Order == nil {
		return fmt.Errorf("omenu: document has no order")
	}
	d.Order.Status = status
	return nil
}

// SelectionsByItem extracts each item's selected customizations keyed by
// item ID. Items without selections are omitted.
func (d *Document) SelectionsByItem() map[string][]SelectedCustomization {
	out := map[string][]SelectedCustomization{}
	for _, it := range d.Items {
		if len(it.SelectedCustomizations) > 0 {
			out[it.ID] = it.SelectedCustomizations
		}
	}
	return out
}

// AddExtension stores a namespaced payload, replacing any previous value for
// the namespace. The namespace should be a reverse-DNS string.
func (d *Document) AddExtension(namespace string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("omenu: encoding extension %q: %w", namespace, err)
	}
	if d.Extensions == nil {
		d.Extensions = Extensions{}
	}
	d.Extensions[namespace] = raw
	return nil
}

// Extension returns the raw payload for a namespace.
func (d *Document) Extension(namespace string) (json.RawMessage, bool) {
	raw, ok := d.Extensions[namespace]
	return raw, ok
}

// DecodeExtension decodes a namespaced payload into out, which is typically
// a pointer to a caller-defined struct with mapstructure tags.
func (d *Document) DecodeExtension(namespace string, out any) error {
	raw, ok := d.Extensions[namespace]
	if !ok {
		return fmt.Errorf("omenu: no extension %q", namespace)
	}
	var m any
	if err := json.Unmarshal(raw, &m); err != nil {
		return fmt.Errorf("omenu: decoding extension %q: %w", namespace, err)
	}
	return mapstructure.Decode(m, out)
}

// CalculateTotalPrice sums each item's effective price times its quantity.
// Items with calculated values use those; others fall back to base price.
// A document with no priced items totals 0.
func (d *Document) CalculateTotalPrice() float64 {
	total := 0.0
	for _, it := range d.Items {
		price := 0.0
		if it.BasePrice != nil {
			price = *it.BasePrice
		}
		if it.Calculated != nil {
			price = it.Calculated.ItemPrice
		}
		total += price * float64(itemQuantity(&it))
	}
	return roundMinorUnit(total)
}

// DeepLink builds the order URL for the document's first item, or a bare
// vendor view URL when the document has no items.
func (d *Document) DeepLink() string {
	var b strings.Builder
	b.WriteString(URLScheme)
	if len(d.Items) > 0 {
		b.WriteString("order")
	} else {
		b.WriteString("view")
	}
	b.WriteString("?v=")
	b.WriteString(d.Vendor.ID)
	if d.Vendor.LocationID != "" {
		b.WriteString("&l=")
		b.WriteString(d.Vendor.LocationID)
	}
	if len(d.Items) > 0 {
		b.WriteString("&i=")
		b.WriteString(d.Items[0].ID)
	}
	return b.String()
}

// GenerateOrderOptions configures GenerateOrder.
type GenerateOrderOptions struct {
	TaxRate    float64       // fraction of the subtotal, e.g. 0.08
	Currency   string        // defaults to "USD"
	Type       OrderType     // defaults to Pickup
	PickupIn   time.Duration // requested pickup delay; 0 means 30 minutes
	CustomerID string        // optional
}

// GenerateOrder attaches a draft order priced from the document's items.
// The order ID is a generated cuid.
func (d *Document) GenerateOrder(opts GenerateOrderOptions) {
	if opts.Currency == "" {
		opts.Currency = "USD"
	}
	if opts.Type == "" {
		opts.Type = Pickup
	}
	if opts.PickupIn == 0 {
		opts.PickupIn = 30 * time.Minute
	}

	subtotal := d.CalculateTotalPrice()
	tax := roundMinorUnit(subtotal * opts.TaxRate)
	total := roundMinorUnit(subtotal + tax)

	now := time.Now().UTC()
	pickup := now.Add(opts.PickupIn)
	order := Order{
		ID:         "order-" + cuid.New(),
		Status:     StatusDraft,
		Created:    &now,
		PickupTime: &pickup,
		Type:       opts.Type,
		Payment: &Payment{
			Status:   Unpaid,
			Subtotal: &subtotal,
			Tax:      &tax,
			Total:    total,
			Currency: opts.Currency,
		},
	}
	if opts.CustomerID != "" {
		order.Customer = &Customer{ID: opts.CustomerID}
	}
	d.Order = &order
}

// ValidTapToOrder reports whether the document can drive a tap-to-order
// flow: a vendor ID, at least one item, and a base price on every item.
func (d *Document) ValidTapToOrder() bool {
	if d.Vendor.ID == "" || len(d.Items) == 0 {
		return false
	}
	for _, it := range d.Items {
		if it.BasePrice == nil {
			return false
		}
	}
	return true
}

func itemQuantity(it *Item) int {
	if it.Quantity == nil || *it.Quantity < 1 {
		return 1
	}
	return *it.Quantity
}

// roundMinorUnit rounds to the currency's minor-unit precision (2 decimal
// places). It is applied only at final aggregation steps, never to
// intermediate additions.
func roundMinorUnit(v float64) float64 {
	return math.Round(v*100) / 100
}
