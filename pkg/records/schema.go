package records

import "fmt"

type RefKind int

const (
	// SingleRef fields hold one id, or one embedded document once expanded.
	SingleRef RefKind = iota
	// MultiRef fields hold an array of ids, or of embedded documents once expanded.
	MultiRef
)

type RefSpec struct {
	Target string
	Kind   RefKind
}

// Schema describes which fields of which collections point at other collections.
type Schema struct {
	refs map[string]map[string]RefSpec
}

func NewSchema() *Schema {
	return &Schema{refs: make(map[string]map[string]RefSpec)}
}

func (s *Schema) Register(collection, field, target string, kind RefKind) *Schema {
	fields, ok := s.refs[collection]
	if !ok {
		fields = make(map[string]RefSpec)
		s.refs[collection] = fields
	}
	fields[field] = RefSpec{Target: target, Kind: kind}
	return s
}

func (s *Schema) Lookup(collection, field string) (RefSpec, error) {
	if s != nil {
		if spec, ok := s.refs[collection][field]; ok {
			return spec, nil
		}
	}
	return RefSpec{}, fmt.Errorf("%w: %s.%s", ErrUnknownReference, collection, field)
}
