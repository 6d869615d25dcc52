package records

import (
	"bytes"
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Ref is a reference field. Unexpanded it carries only the target id;
// expanded it also carries the decoded target record.
type Ref[T any] struct {
	ID    string
	Value *T
}

func (r Ref[T]) IsZero() bool {
	return r.ID == "" && r.Value == nil
}

func (r Ref[T]) Expanded() bool {
	return r.Value != nil
}

// MarshalBSONValue always stores the bare id; embedded copies are never written back.
func (r Ref[T]) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if r.ID == "" {
		return bson.TypeNull, nil, nil
	}
	return bson.MarshalValue(r.ID)
}

func (r *Ref[T]) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}

	switch t {
	case bson.TypeString:
		*r = Ref[T]{ID: raw.StringValue()}
	case bson.TypeEmbeddedDocument:
		doc := raw.Document()
		var value T
		if err := bson.Unmarshal(doc, &value); err != nil {
			return fmt.Errorf("failed to decode referenced record: %w", err)
		}
		id, _ := doc.Lookup(FieldID).StringValueOK()
		*r = Ref[T]{ID: id, Value: &value}
	case bson.TypeNull, bson.TypeUndefined:
		*r = Ref[T]{}
	default:
		return fmt.Errorf("%w: cannot decode %s into a reference", ErrInvalidReference, t)
	}

	return nil
}

func (r Ref[T]) MarshalJSON() ([]byte, error) {
	if r.Value != nil {
		return json.Marshal(r.Value)
	}
	if r.ID == "" {
		return []byte("null"), nil
	}
	return json.Marshal(r.ID)
}

func (r *Ref[T]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*r = Ref[T]{}
		return nil
	case len(data) > 0 && data[0] == '"':
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		*r = Ref[T]{ID: id}
		return nil
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	var head struct {
		ID string `json:"_id"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}
	*r = Ref[T]{ID: head.ID, Value: &value}
	return nil
}

// Refs is a multi-reference field.
type Refs[T any] []Ref[T]

func (rs Refs[T]) IDs() []string {
	ids := make([]string, 0, len(rs))
	for _, r := range rs {
		if r.ID != "" {
			ids = append(ids, r.ID)
		}
	}
	return ids
}

// Values returns the expanded records, skipping any that were not expanded.
func (rs Refs[T]) Values() []*T {
	values := make([]*T, 0, len(rs))
	for _, r := range rs {
		if r.Value != nil {
			values = append(values, r.Value)
		}
	}
	return values
}
