package records

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

type Client struct {
	store  Store
	schema *Schema
	now    func() time.Time
}

type ClientOption func(*Client)

// WithClock overrides the clock used for creation timestamps.
func WithClock(now func() time.Time) ClientOption {
	return func(c *Client) {
		c.now = now
	}
}

func NewClient(store Store, schema *Schema, opts ...ClientOption) *Client {
	c := &Client{
		store:  store,
		schema: schema,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetAll returns every document in the collection with the named reference
// fields replaced by the documents they point at.
func (c *Client) GetAll(ctx context.Context, collection string, refs ...string) ([]Document, error) {
	docs, err := c.store.All(ctx, collection)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", collection, err)
	}

	if err := c.expand(ctx, collection, docs, refs); err != nil {
		return nil, err
	}

	return docs, nil
}

func (c *Client) GetByID(ctx context.Context, collection, id string, refs ...string) (Document, error) {
	if id == "" {
		return nil, ErrMissingID
	}

	doc, err := c.store.Get(ctx, collection, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s/%s: %w", collection, id, err)
	}

	if err := c.expand(ctx, collection, []Document{doc}, refs); err != nil {
		return nil, err
	}

	return doc, nil
}

// Create inserts doc, which must already carry its id, and links it to the
// records named in refs.
func (c *Client) Create(ctx context.Context, collection string, doc Document, refs References) (Document, error) {
	if documentID(doc) == "" {
		return nil, ErrMissingID
	}

	for field, ids := range refs {
		spec, err := c.schema.Lookup(collection, field)
		if err != nil {
			return nil, err
		}

		switch spec.Kind {
		case SingleRef:
			if len(ids) != 1 {
				return nil, fmt.Errorf("%w: %s.%s takes exactly one id, got %d", ErrInvalidReference, collection, field, len(ids))
			}
			doc[field] = ids[0]
		case MultiRef:
			linked := make(bson.A, 0, len(ids))
			for _, id := range ids {
				linked = append(linked, id)
			}
			doc[field] = linked
		}
	}

	now := c.now().UTC()
	doc[FieldCreatedDate] = now
	doc[FieldUpdatedDate] = now

	if err := c.store.Insert(ctx, collection, doc); err != nil {
		return nil, fmt.Errorf("failed to create %s/%s: %w", collection, documentID(doc), err)
	}

	return doc, nil
}

func (c *Client) expand(ctx context.Context, collection string, docs []Document, refs []string) error {
	for _, field := range refs {
		spec, err := c.schema.Lookup(collection, field)
		if err != nil {
			return err
		}

		ids := collectRefIDs(docs, field)
		if len(ids) == 0 {
			continue
		}

		targets, err := c.store.FindByIDs(ctx, spec.Target, ids)
		if err != nil {
			return fmt.Errorf("failed to expand %s.%s: %w", collection, field, err)
		}

		byID := make(map[string]Document, len(targets))
		for _, target := range targets {
			byID[documentID(target)] = target
		}

		for _, doc := range docs {
			switch spec.Kind {
			case SingleRef:
				id, ok := doc[field].(string)
				if !ok {
					continue
				}
				if target, found := byID[id]; found {
					doc[field] = target
				} else {
					delete(doc, field)
				}
			case MultiRef:
				linked := refIDs(doc[field])
				if linked == nil {
					continue
				}
				expanded := make(bson.A, 0, len(linked))
				for _, id := range linked {
					if target, found := byID[id]; found {
						expanded = append(expanded, target)
					}
				}
				doc[field] = expanded
			}
		}
	}

	return nil
}

func collectRefIDs(docs []Document, field string) []string {
	seen := make(map[string]struct{})
	var ids []string
	for _, doc := range docs {
		for _, id := range refIDs(doc[field]) {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	return ids
}

// refIDs reads the ids out of a stored reference value, single or multi.
func refIDs(value interface{}) []string {
	switch v := value.(type) {
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	case bson.A:
		return stringsOf(v)
	case []interface{}:
		return stringsOf(v)
	case []string:
		return v
	}
	return nil
}

func stringsOf(values []interface{}) []string {
	ids := make([]string, 0, len(values))
	for _, value := range values {
		if id, ok := value.(string); ok && id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
