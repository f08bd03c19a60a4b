package omenu

import (
	"fmt"
	"strconv"
	"strings"
)

// Path builds JSON Pointer paths in a chain-safe way and creates Issues.
// The zero value is the document root.
type Path struct {
	parts []string
}

// Field appends an object member to the path, escaping per RFC 6901.
func (p Path) Field(name string) Path {
	if name == "" {
		return p
	}
	esc := strings.ReplaceAll(strings.ReplaceAll(name, "~", "~0"), "/", "~1")
	return Path{parts: append(append([]string{}, p.parts...), esc)}
}

// Index appends an array index to the path.
func (p Path) Index(i int) Path {
	return Path{parts: append(append([]string{}, p.parts...), strconv.Itoa(i))}
}

// Pointer renders the path as a JSON Pointer string.
func (p Path) Pointer() string {
	if len(p.parts) == 0 {
		return "/"
	}
	return "/" + strings.Join(p.parts, "/")
}

// Issue creates an Issue at this path. kv pairs populate Params.
func (p Path) Issue(sev Severity, code, msg string, kv ...any) Issue {
	var m map[string]any
	if len(kv) > 0 {
		m = map[string]any{}
		for i := 0; i+1 < len(kv); i += 2 {
			m[fmt.Sprint(kv[i])] = kv[i+1]
		}
	}
	return Issue{Path: p.Pointer(), Code: code, Severity: sev, Message: msg, Params: m}
}
