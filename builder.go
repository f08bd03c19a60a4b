package omenu

import "time"

// DocumentBuilder assembles a document in one pass. Builders are not safe
// for concurrent use; build once and share the resulting document instead.
type DocumentBuilder struct {
	doc Document
}

// NewDocumentBuilder starts a document for the given vendor with the current
// format version and freshly stamped metadata.
func NewDocumentBuilder(vendor Vendor) *DocumentBuilder {
	return &DocumentBuilder{doc: Document{
		OMSVersion: Version,
		Metadata: Metadata{
			Created: time.Now().UTC(),
			Source:  "omenu-go",
			Locale:  "en-US",
		},
		Vendor: vendor,
	}}
}

// Metadata replaces the default metadata.
func (b *DocumentBuilder) Metadata(m Metadata) *DocumentBuilder {
	b.doc.Metadata = m
	return b
}

// Source sets the generating-source identifier.
func (b *DocumentBuilder) Source(source string) *DocumentBuilder {
	b.doc.Metadata.Source = source
	return b
}

// Locale sets the document locale.
func (b *DocumentBuilder) Locale(locale string) *DocumentBuilder {
	b.doc.Metadata.Locale = locale
	return b
}

// Item appends a finished item.
func (b *DocumentBuilder) Item(item Item) *DocumentBuilder {
	b.doc.Items = append(b.doc.Items, item)
	return b
}

// Order attaches order information.
func (b *DocumentBuilder) Order(order Order) *DocumentBuilder {
	b.doc.Order = &order
	return b
}

// Extension attaches a namespaced payload, silently skipping values that do
// not encode; use Document.AddExtension when the error matters.
func (b *DocumentBuilder) Extension(namespace string, v any) *DocumentBuilder {
	_ = b.doc.AddExtension(namespace, v)
	return b
}

// Build returns the assembled document. The builder must not be reused.
func (b *DocumentBuilder) Build() *Document {
	return &b.doc
}

// ItemBuilder assembles a single item.
type ItemBuilder struct {
	item Item
}

// NewItemBuilder starts an item with its required identity fields.
func NewItemBuilder(id, name, category string) *ItemBuilder {
	return &ItemBuilder{item: Item{ID: id, Name: name, Category: category}}
}

// Description sets the free-text description.
func (b *ItemBuilder) Description(d string) *ItemBuilder {
	b.item.Description = d
	return b
}

// Price sets the base price and currency.
func (b *ItemBuilder) Price(amount float64, currency string) *ItemBuilder {
	b.item.BasePrice = &amount
	b.item.Currency = currency
	return b
}

// Nutrition attaches the nutrition block.
func (b *ItemBuilder) Nutrition(n Nutrition) *ItemBuilder {
	b.item.Nutrition = &n
	return b
}

// Customization appends a customization definition.
func (b *ItemBuilder) Customization(c Customization) *ItemBuilder {
	b.item.Customizations = append(b.item.Customizations, c)
	return b
}

// Select records a chosen value for one of the item's customizations.
func (b *ItemBuilder) Select(customizationID string, v Value) *ItemBuilder {
	b.item.SelectedCustomizations = append(b.item.SelectedCustomizations,
		SelectedCustomization{CustomizationID: customizationID, Selection: v})
	return b
}

// Quantity sets how many units of the item are meant.
func (b *ItemBuilder) Quantity(q int) *ItemBuilder {
	b.item.Quantity = &q
	return b
}

// Note sets the free-text item note.
func (b *ItemBuilder) Note(note string) *ItemBuilder {
	b.item.ItemNote = note
	return b
}

// Component appends a combo component.
func (b *ItemBuilder) Component(item Item) *ItemBuilder {
	b.item.Components = append(b.item.Components, item)
	return b
}

// Build returns the assembled item.
func (b *ItemBuilder) Build() Item {
	return b.item
}
