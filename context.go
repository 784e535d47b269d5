package intl

import "strings"

// Context is an immutable chain of scope frames. Each frame maps string keys
// to values; lookup walks from the innermost frame outward and the first frame
// defining the full path wins. Frames are never mutated after creation: Push
// returns a new chain head and leaves the receiver untouched.
type Context struct {
	frame  map[string]any
	parent *Context
}

// NewContext builds a single-frame context. A nil frame yields an empty chain
// head that still supports Push and Get.
func NewContext(frame map[string]any) *Context {
	return &Context{frame: frame}
}

// Push returns a new context whose innermost frame is the given mapping.
func (c *Context) Push(frame map[string]any) *Context {
	return &Context{frame: frame, parent: c}
}

// Get resolves a dotted path against the chain, innermost frame first.
// It returns ok=false when no frame defines the full path.
func (c *Context) Get(path string) (any, bool) {
	if path == "" {
		return nil, false
	}

	parts := strings.Split(path, ".")
	for current := c; current != nil; current = current.parent {
		if current.frame == nil {
			continue
		}
		if value, ok := lookupPath(current.frame, parts); ok {
			return value, true
		}
	}
	return nil, false
}

// lookupPath descends nested string-keyed maps following the path segments.
func lookupPath(frame map[string]any, parts []string) (any, bool) {
	var value any = frame
	for _, part := range parts {
		node, ok := value.(map[string]any)
		if !ok {
			return nil, false
		}
		value, ok = node[part]
		if !ok {
			return nil, false
		}
	}
	return value, true
}
