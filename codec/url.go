// Package codec maps a minimal order intent to and from its two wire forms:
// the omenu:// query-string URL and a compact JSON payload for constrained
// transports such as NFC tags.
package codec

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/openmenu/omenu"
)

// Action is the closed set of URL actions.
type Action string

const (
	ActionView      Action = "view"
	ActionOrder     Action = "order"
	ActionCustomize Action = "customize"
	ActionShare     Action = "share"
)

// Valid reports whether a is a recognized action.
func (a Action) Valid() bool {
	switch a {
	case ActionView, ActionOrder, ActionCustomize, ActionShare:
		return true
	}
	return false
}

// Selection is one preset customization choice carried by the compact form.
type Selection struct {
	CustomizationID string
	Value           omenu.Value
}

// OrderIntent is the narrow projection of a document the codec moves over
// the wire: who, where, what, and optionally how.
type OrderIntent struct {
	Action     Action
	VendorID   string
	LocationID string
	ItemID     string

	// PresetID names a preset customization bundle; URL form only.
	PresetID string

	// Selections travel only in the compact form.
	Selections []Selection
}

// UnrecognizedActionError reports an action outside the closed set.
type UnrecognizedActionError struct {
	Action string
}

func (e *UnrecognizedActionError) Error() string {
	return fmt.Sprintf("codec: unrecognized action %q", e.Action)
}

// MissingRequiredParameterError reports an absent required URL parameter.
type MissingRequiredParameterError struct {
	Parameter string
}

func (e *MissingRequiredParameterError) Error() string {
	return fmt.Sprintf("codec: missing required parameter %q", e.Parameter)
}

// MalformedEncodingError reports input the codec cannot decode: a bad
// percent sequence, a missing scheme, or an undecodable compact payload.
type MalformedEncodingError struct {
	Reason string
	cause  error
}

func (e *MalformedEncodingError) Error() string {
	return "codec: malformed encoding: " + e.Reason
}

func (e *MalformedEncodingError) Unwrap() error { return e.cause }

// EncodeURL renders the intent as an omenu:// URL. The vendor ID is always
// required; the item ID is required for every action except view.
func EncodeURL(intent OrderIntent) (string, error) {
	if !intent.Action.Valid() {
		return "", &UnrecognizedActionError{Action: string(intent.Action)}
	}
	if err := checkRequired(intent); err != nil {
		return "", err
	}

	// Keys are emitted in a fixed v, l, i, c order rather than sorted.
	var b strings.Builder
	b.WriteString(omenu.URLScheme)
	b.WriteString(string(intent.Action))
	b.WriteString("?v=")
	b.WriteString(url.QueryEscape(intent.VendorID))
	if intent.LocationID != "" {
		b.WriteString("&l=")
		b.WriteString(url.QueryEscape(intent.LocationID))
	}
	if intent.ItemID != "" {
		b.WriteString("&i=")
		b.WriteString(url.QueryEscape(intent.ItemID))
	}
	if intent.PresetID != "" {
		b.WriteString("&c=")
		b.WriteString(url.QueryEscape(intent.PresetID))
	}
	return b.String(), nil
}

// DecodeURL parses an omenu:// URL back into an intent. Unknown query keys
// are ignored so the format can grow without breaking older readers.
func DecodeURL(raw string) (OrderIntent, error) {
	rest, ok := strings.CutPrefix(raw, omenu.URLScheme)
	if !ok {
		return OrderIntent{}, &MalformedEncodingError{
			Reason: fmt.Sprintf("missing %s scheme", omenu.URLScheme),
		}
	}
	actionPart, query, _ := strings.Cut(rest, "?")
	action := Action(actionPart)
	if !action.Valid() {
		return OrderIntent{}, &UnrecognizedActionError{Action: actionPart}
	}

	intent := OrderIntent{Action: action}
	if query != "" {
		for _, pair := range strings.Split(query, "&") {
			key, value, _ := strings.Cut(pair, "=")
			decoded, err := url.QueryUnescape(value)
			if err != nil {
				return OrderIntent{}, &MalformedEncodingError{
					Reason: fmt.Sprintf("bad percent sequence in %q", pair),
					cause:  err,
				}
			}
			switch key {
			case "v":
				intent.VendorID = decoded
			case "l":
				intent.LocationID = decoded
			case "i":
				intent.ItemID = decoded
			case "c":
				intent.PresetID = decoded
			}
		}
	}
	if err := checkRequired(intent); err != nil {
		return OrderIntent{}, err
	}
	return intent, nil
}

func checkRequired(intent OrderIntent) error {
	if intent.VendorID == "" {
		return &MissingRequiredParameterError{Parameter: "v"}
	}
	if intent.ItemID == "" && intent.Action != ActionView {
		return &MissingRequiredParameterError{Parameter: "i"}
	}
	return nil
}

// ViewURL builds a vendor or item view URL.
func ViewURL(vendorID, locationID, itemID string) (string, error) {
	return EncodeURL(OrderIntent{
		Action: ActionView, VendorID: vendorID, LocationID: locationID, ItemID: itemID,
	})
}

// OrderURL builds an order URL for one item.
func OrderURL(vendorID, locationID, itemID string) (string, error) {
	return EncodeURL(OrderIntent{
		Action: ActionOrder, VendorID: vendorID, LocationID: locationID, ItemID: itemID,
	})
}

// CustomizeURL builds a customize URL, optionally naming a preset bundle.
func CustomizeURL(vendorID, locationID, itemID, presetID string) (string, error) {
	return EncodeURL(OrderIntent{
		Action: ActionCustomize, VendorID: vendorID, LocationID: locationID,
		ItemID: itemID, PresetID: presetID,
	})
}

// ShareURL builds a share URL for one item.
func ShareURL(vendorID, locationID, itemID string) (string, error) {
	return EncodeURL(OrderIntent{
		Action: ActionShare, VendorID: vendorID, LocationID: locationID, ItemID: itemID,
	})
}
