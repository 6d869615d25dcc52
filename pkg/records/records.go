// Package records is a small typed client over a remote collection store.
//
// A store holds named collections of documents keyed by a string "_id".
// The client adds three things on top of a raw Store: typed decoding,
// reference expansion driven by a Schema, and linking of new records to
// existing ones at creation time.
package records

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
)

// Document is a single stored record in its wire form.
type Document = bson.M

const (
	FieldID          = "_id"
	FieldCreatedDate = "_createdDate"
	FieldUpdatedDate = "_updatedDate"
)

var (
	ErrNotFound         = errors.New("record not found")
	ErrDuplicateID      = errors.New("record with this id already exists")
	ErrMissingID        = errors.New("record id is required")
	ErrUnknownReference = errors.New("unknown reference field")
	ErrInvalidReference = errors.New("invalid reference")
)

// Store is the backend a Client talks to. Implementations must be safe for
// concurrent use and must return documents the caller may freely mutate.
type Store interface {
	All(ctx context.Context, collection string) ([]Document, error)
	Get(ctx context.Context, collection, id string) (Document, error)
	FindByIDs(ctx context.Context, collection string, ids []string) ([]Document, error)
	Insert(ctx context.Context, collection string, doc Document) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// Items is the result of listing a collection.
type Items[T any] struct {
	Items []T `json:"items"`
}

// References links a new record to existing records, field name to ids.
type References map[string][]string

func documentID(doc Document) string {
	id, _ := doc[FieldID].(string)
	return id
}
