package indexkinds

import "github.com/kittclouds/ftsearch/pkg/search"

// MapAccessor is a struct-of-maps DocumentAccessor: one map per field
// type, matching whatever shape a caller assembled a document into. It's
// the accessor used by the demo command and by every test in this
// module; hosts wire in whatever pulls field values out of their own
// document representation.
type MapAccessor struct {
	Text    map[string]string
	Tags    map[string][]string
	Numeric map[string]float64
	Vector  map[string][]float32
}

// NewMapAccessor returns an accessor with all four maps initialised.
func NewMapAccessor() *MapAccessor {
	return &MapAccessor{
		Text:    make(map[string]string),
		Tags:    make(map[string][]string),
		Numeric: make(map[string]float64),
		Vector:  make(map[string][]float32),
	}
}

func (a *MapAccessor) TextValue(field string) (string, bool) {
	v, ok := a.Text[field]
	return v, ok
}

func (a *MapAccessor) TagValues(field string) ([]string, bool) {
	v, ok := a.Tags[field]
	return v, ok
}

func (a *MapAccessor) NumericValue(field string) (float64, bool) {
	v, ok := a.Numeric[field]
	return v, ok
}

func (a *MapAccessor) VectorValue(field string) ([]float32, bool) {
	v, ok := a.Vector[field]
	return v, ok
}

var _ search.DocumentAccessor = (*MapAccessor)(nil)
