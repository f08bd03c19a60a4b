package omenu

import (
	"fmt"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// ParseYAML decodes a YAML rendition of a document by bridging through the
// canonical JSON form, so YAML input is held to exactly the same rules as
// JSON input.
func ParseYAML(data []byte) (*Document, error) {
	var tree any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, &MalformedDocumentError{Reason: err.Error(), cause: err}
	}
	raw, err := json.Marshal(stringifyKeys(tree))
	if err != nil {
		return nil, &MalformedDocumentError{Reason: err.Error(), cause: err}
	}
	return Parse(raw)
}

// stringifyKeys rewrites any non-string map keys YAML allows into their
// string form so the tree is JSON-encodable.
func stringifyKeys(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			t[k] = stringifyKeys(val)
		}
		return t
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, val := range t {
			m[fmt.Sprint(k)] = stringifyKeys(val)
		}
		return m
	case []any:
		for i, val := range t {
			t[i] = stringifyKeys(val)
		}
		return t
	default:
		return v
	}
}
