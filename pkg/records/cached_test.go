package records

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errMiss = errors.New("miss")

type fakeCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	failSet bool
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (f *fakeCache) GetBytes(ctx context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.entries[key]
	if !ok {
		return nil, errMiss
	}
	return data, nil
}

func (f *fakeCache) SetBytes(ctx context.Context, key string, value []byte, expiration time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failSet {
		return errors.New("cache unavailable")
	}
	f.entries[key] = value
	return nil
}

func (f *fakeCache) Delete(ctx context.Context, keys ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, key := range keys {
		delete(f.entries, key)
	}
	return nil
}

type countingStore struct {
	Store
	allCalls int
	getCalls int
}

func (c *countingStore) All(ctx context.Context, collection string) ([]Document, error) {
	c.allCalls++
	return c.Store.All(ctx, collection)
}

func (c *countingStore) Get(ctx context.Context, collection, id string) (Document, error) {
	c.getCalls++
	return c.Store.Get(ctx, collection, id)
}

func TestCachedStore_ServesListFromCacheUntilInsert(t *testing.T) {
	ctx := context.Background()
	backing := &countingStore{Store: NewMemoryStore()}
	require.NoError(t, backing.Insert(ctx, "makes", Document{"_id": "mk-1", "name": "Koenigsegg"}))

	cache := newFakeCache()
	store := NewCachedStore(backing, cache, time.Minute, nil)

	first, err := store.All(ctx, "makes")
	require.NoError(t, err)
	second, err := store.All(ctx, "makes")
	require.NoError(t, err)

	assert.Equal(t, 1, backing.allCalls)
	require.Len(t, second, 1)
	assert.Equal(t, first[0]["name"], second[0]["name"])

	require.NoError(t, store.Insert(ctx, "makes", Document{"_id": "mk-2", "name": "Maybach"}))

	third, err := store.All(ctx, "makes")
	require.NoError(t, err)
	assert.Equal(t, 2, backing.allCalls)
	assert.Len(t, third, 2)
}

func TestCachedStore_GetCachesHitsButNotMisses(t *testing.T) {
	ctx := context.Background()
	backing := &countingStore{Store: NewMemoryStore()}
	require.NoError(t, backing.Insert(ctx, "makes", Document{"_id": "mk-1", "name": "Aston Martin"}))

	store := NewCachedStore(backing, newFakeCache(), time.Minute, nil)

	for i := 0; i < 3; i++ {
		doc, err := store.Get(ctx, "makes", "mk-1")
		require.NoError(t, err)
		assert.Equal(t, "Aston Martin", doc["name"])
	}
	assert.Equal(t, 1, backing.getCalls)

	_, err := store.Get(ctx, "makes", "mk-404")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = store.Get(ctx, "makes", "mk-404")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 3, backing.getCalls)
}

func TestCachedStore_CacheFailuresAreNotSurfaced(t *testing.T) {
	ctx := context.Background()
	backing := &countingStore{Store: NewMemoryStore()}
	require.NoError(t, backing.Insert(ctx, "makes", Document{"_id": "mk-1", "name": "McLaren"}))

	cache := newFakeCache()
	cache.failSet = true
	store := NewCachedStore(backing, cache, time.Minute, nil)

	docs, err := store.All(ctx, "makes")
	require.NoError(t, err)
	assert.Len(t, docs, 1)

	_, err = store.All(ctx, "makes")
	require.NoError(t, err)
	assert.Equal(t, 2, backing.allCalls)
}

func TestCachedStore_WorksBehindClientExpansion(t *testing.T) {
	ctx := context.Background()
	store := NewCachedStore(NewMemoryStore(), newFakeCache(), time.Minute, nil)
	client := NewClient(store, testSchema())

	_, err := Create(ctx, client, "makes", &testMake{ID: "mk-1", Name: "Ferrari"}, nil)
	require.NoError(t, err)
	_, err = Create(ctx, client, "models", &testModel{ID: "m-1", Name: "Purosangue"}, References{"make": {"mk-1"}})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		result, err := GetAll[testModel](ctx, client, "models", "make")
		require.NoError(t, err)
		require.Len(t, result.Items, 1)
		require.True(t, result.Items[0].Make.Expanded())
		assert.Equal(t, "Ferrari", result.Items[0].Make.Value.Name)
	}
}
