package records

import (
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
)

// MemoryStore keeps collections in process. Documents are held in their
// encoded form so callers never share maps with the store.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]*memoryCollection
}

type memoryCollection struct {
	order []string
	docs  map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string]*memoryCollection)}
}

func (m *MemoryStore) All(ctx context.Context, collection string) ([]Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	coll, ok := m.collections[collection]
	if !ok {
		return []Document{}, nil
	}

	docs := make([]Document, 0, len(coll.order))
	for _, id := range coll.order {
		doc, err := decodeStored(coll.docs[id])
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func (m *MemoryStore) Get(ctx context.Context, collection, id string) (Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	coll, ok := m.collections[collection]
	if !ok {
		return nil, ErrNotFound
	}
	data, ok := coll.docs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return decodeStored(data)
}

func (m *MemoryStore) FindByIDs(ctx context.Context, collection string, ids []string) ([]Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	coll, ok := m.collections[collection]
	if !ok {
		return []Document{}, nil
	}

	docs := make([]Document, 0, len(ids))
	for _, id := range ids {
		data, ok := coll.docs[id]
		if !ok {
			continue
		}
		doc, err := decodeStored(data)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func (m *MemoryStore) Insert(ctx context.Context, collection string, doc Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	id := documentID(doc)
	if id == "" {
		return ErrMissingID
	}

	data, err := bson.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	coll, ok := m.collections[collection]
	if !ok {
		coll = &memoryCollection{docs: make(map[string][]byte)}
		m.collections[collection] = coll
	}
	if _, exists := coll.docs[id]; exists {
		return ErrDuplicateID
	}

	coll.order = append(coll.order, id)
	coll.docs[id] = data
	return nil
}

func (m *MemoryStore) Count(collection string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if coll, ok := m.collections[collection]; ok {
		return len(coll.order)
	}
	return 0
}

func (m *MemoryStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (m *MemoryStore) Close(ctx context.Context) error {
	return nil
}

func decodeStored(data []byte) (Document, error) {
	var doc Document
	if err := bson.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode stored document: %w", err)
	}
	return doc, nil
}
