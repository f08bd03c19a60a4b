package omenu

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeUnsupportedVersion   = "unsupported_version"
	CodeRequired             = "required"
	CodeEmptyID              = "empty_id"
	CodeDuplicateID          = "duplicate_id"
	CodeInvalidType          = "invalid_type"
	CodeInvalidEnum          = "invalid_enum"
	CodeInvalidBounds        = "invalid_bounds"
	CodeInvalidStep          = "invalid_step"
	CodeInvalidCurrency      = "invalid_currency"
	CodeInvalidTimestamp     = "invalid_timestamp"
	CodeMissingOptions       = "missing_options"
	CodeUnknownOption        = "unknown_option"
	CodeUnknownCustomization = "unknown_customization"
	CodeCardinality          = "cardinality"
	CodeOutOfRange           = "out_of_range"
	CodeDefaultMismatch      = "default_mismatch"
	CodePaymentMismatch      = "payment_mismatch"
	CodeDeliveryMismatch     = "delivery_mismatch"
)

// Severity distinguishes MUST violations from SHOULD advisories.
type Severity int

const (
	SeverityWarn  Severity = iota // SHOULD advisory; the document is still conformant
	SeverityError                 // MUST violation
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warn"
}

// Issue represents a single validation entry.
type Issue struct {
	Path     string   // JSON Pointer (for example: /items/2/customizations/0/step).
	Code     string   // One of the codes listed above.
	Severity Severity // MUST violation vs SHOULD advisory.
	Message  string
	// Params carries structured parameters (e.g., {"min":1, "max":10, "got":42})
	// for i18n and observability.
	Params map[string]any
}

// Issues is a collection of validation entries that implements error.
// An empty (or all-Warn) collection means the document meets the
// minimum-conformance requirements.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// HasErrors reports whether any issue is a MUST violation.
func (iss Issues) HasErrors() bool {
	for _, it := range iss {
		if it.Severity == SeverityError {
			return true
		}
	}
	return false
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	return append(dst, more...)
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// MalformedDocumentError reports a parse-time structural failure: the top
// level is not a JSON object, or a MUST field is absent or of the wrong type.
type MalformedDocumentError struct {
	Reason string
	cause  error
}

func (e *MalformedDocumentError) Error() string {
	return "omenu: malformed document: " + e.Reason
}

func (e *MalformedDocumentError) Unwrap() error { return e.cause }

// MissingRequiredSelectionError reports a required customization with neither
// a caller selection nor a declared default.
type MissingRequiredSelectionError struct {
	CustomizationID string
}

func (e *MissingRequiredSelectionError) Error() string {
	return fmt.Sprintf("omenu: required customization %q has no selection and no default", e.CustomizationID)
}

// UnknownCustomizationError reports a selection whose ID matches no
// customization definition on the item.
type UnknownCustomizationError struct {
	CustomizationID string
}

func (e *UnknownCustomizationError) Error() string {
	return fmt.Sprintf("omenu: unknown customization %q", e.CustomizationID)
}

// SelectionRule names the specific rule an invalid selection broke.
type SelectionRule string

const (
	RuleWrongType     SelectionRule = "wrong_type"
	RuleOutOfRange    SelectionRule = "out_of_range"
	RuleCardinality   SelectionRule = "cardinality_violation"
	RuleStep          SelectionRule = "step_violation"
	RuleUnknownOption SelectionRule = "unknown_option_id"
)

// InvalidSelectionError reports a selection that matched a definition but
// broke one of its constraints.
type InvalidSelectionError struct {
	CustomizationID string
	Rule            SelectionRule
	Value           Value
}

func (e *InvalidSelectionError) Error() string {
	return fmt.Sprintf("omenu: invalid selection for %q (%s): %s",
		e.CustomizationID, e.Rule, e.Value.GoString())
}

// ResolutionError wraps any selection failure during price/nutrition
// calculation with the item it aborted.
type ResolutionError struct {
	ItemID string
	Err    error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("omenu: resolving item %q: %v", e.ItemID, e.Err)
}

func (e *ResolutionError) Unwrap() error { return e.Err }
