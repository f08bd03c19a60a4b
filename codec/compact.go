package codec

import (
	json "github.com/goccy/go-json"

	"github.com/openmenu/omenu"
)

// The compact form trades self-description for size: single-letter keys and
// untagged selection values. Selection shapes are recovered by type-sniffing
// the JSON value, which omenu.Value does at the boundary.
type compactWire struct {
	V string        `json:"v"`
	L string        `json:"l,omitempty"`
	I string        `json:"i,omitempty"`
	O *compactOrder `json:"o,omitempty"`
}

type compactOrder struct {
	C []compactSelection `json:"c,omitempty"`
}

type compactSelection struct {
	ID string      `json:"id"`
	S  omenu.Value `json:"s"`
}

// EncodeCompact renders the intent as the compact JSON payload. The action
// does not travel; decoders infer it from which fields are present.
func EncodeCompact(intent OrderIntent) ([]byte, error) {
	w := compactWire{
		V: intent.VendorID,
		L: intent.LocationID,
		I: intent.ItemID,
	}
	if len(intent.Selections) > 0 {
		o := &compactOrder{C: make([]compactSelection, len(intent.Selections))}
		for i, sel := range intent.Selections {
			o.C[i] = compactSelection{ID: sel.CustomizationID, S: sel.Value}
		}
		w.O = o
	}
	return json.Marshal(w)
}

// DecodeCompact parses a compact payload. A payload naming an item decodes
// as an order intent; a bare vendor payload decodes as a view. Extra fields
// a caller packed alongside the defined ones are ignored, not rejected.
func DecodeCompact(data []byte) (OrderIntent, error) {
	var w compactWire
	if err := json.Unmarshal(data, &w); err != nil {
		return OrderIntent{}, &MalformedEncodingError{Reason: err.Error(), cause: err}
	}
	if w.V == "" {
		return OrderIntent{}, &MissingRequiredParameterError{Parameter: "v"}
	}
	intent := OrderIntent{
		Action:     ActionView,
		VendorID:   w.V,
		LocationID: w.L,
		ItemID:     w.I,
	}
	if w.I != "" {
		intent.Action = ActionOrder
	}
	if w.O != nil {
		for _, sel := range w.O.C {
			intent.Selections = append(intent.Selections, Selection{
				CustomizationID: sel.ID,
				Value:           sel.S,
			})
		}
	}
	return intent, nil
}
