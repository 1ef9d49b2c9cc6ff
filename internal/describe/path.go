package describe

import "strings"

// Path renders the position of a value inside the object graph being
// populated, for trace logging.
// Examples:
//   - "store.Customer" for a root object
//   - "store.Customer.Orders" for a nested field
//   - "store.Customer.Orders[]" for elements of a slice field
//   - "store.Customer.Labels{}" for entries of a map field
type Path struct {
	parts []string
}

// NewPath creates a new Path from a root label.
func NewPath(root string) *Path {
	return &Path{parts: []string{root}}
}

// Field appends a field name to the path.
func (p *Path) Field(name string) *Path {
	return &Path{parts: append(append([]string{}, p.parts...), name)}
}

// Elem appends an element indicator "[]" to the path.
func (p *Path) Elem() *Path {
	return p.suffix("[]")
}

// Entry appends a map-entry indicator "{}" to the path.
func (p *Path) Entry() *Path {
	return p.suffix("{}")
}

func (p *Path) suffix(marker string) *Path {
	if len(p.parts) == 0 {
		return &Path{parts: []string{marker}}
	}

	parts := make([]string, len(p.parts))
	copy(parts, p.parts)
	parts[len(parts)-1] += marker

	return &Path{parts: parts}
}

// String returns the full path string.
func (p *Path) String() string {
	return strings.Join(p.parts, ".")
}
