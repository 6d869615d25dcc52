package records

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// GetAll lists a collection and decodes each document into T.
func GetAll[T any](ctx context.Context, c *Client, collection string, refs ...string) (*Items[T], error) {
	docs, err := c.GetAll(ctx, collection, refs...)
	if err != nil {
		return nil, err
	}

	items := make([]T, 0, len(docs))
	for _, doc := range docs {
		var item T
		if err := Decode(doc, &item); err != nil {
			return nil, fmt.Errorf("failed to decode %s/%s: %w", collection, documentID(doc), err)
		}
		items = append(items, item)
	}

	return &Items[T]{Items: items}, nil
}

func GetByID[T any](ctx context.Context, c *Client, collection, id string, refs ...string) (*T, error) {
	doc, err := c.GetByID(ctx, collection, id, refs...)
	if err != nil {
		return nil, err
	}

	var item T
	if err := Decode(doc, &item); err != nil {
		return nil, fmt.Errorf("failed to decode %s/%s: %w", collection, id, err)
	}

	return &item, nil
}

// Create stores record and returns it as the store now holds it,
// timestamps and reference ids included.
func Create[T any](ctx context.Context, c *Client, collection string, record *T, refs References) (*T, error) {
	doc, err := Encode(record)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s record: %w", collection, err)
	}

	doc, err = c.Create(ctx, collection, doc, refs)
	if err != nil {
		return nil, err
	}

	var created T
	if err := Decode(doc, &created); err != nil {
		return nil, fmt.Errorf("failed to decode created %s record: %w", collection, err)
	}

	return &created, nil
}

func Encode(v interface{}) (Document, error) {
	data, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}

	var doc Document
	if err := bson.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func Decode(doc Document, v interface{}) error {
	data, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	return bson.Unmarshal(data, v)
}
