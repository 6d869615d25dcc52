package records

import (
	"context"
	"fmt"
	"time"

	"vyronex/pkg/logger"

	"go.mongodb.org/mongo-driver/bson"
)

// Cache is the byte-level cache CachedStore reads through.
type Cache interface {
	GetBytes(ctx context.Context, key string) ([]byte, error)
	SetBytes(ctx context.Context, key string, value []byte, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// CachedStore serves All and Get from cache when it can. Cache failures are
// logged and otherwise ignored; the wrapped store stays authoritative.
type CachedStore struct {
	Store
	cache  Cache
	ttl    time.Duration
	logger *logger.Logger
}

func NewCachedStore(store Store, cache Cache, ttl time.Duration, log *logger.Logger) *CachedStore {
	if log == nil {
		log = logger.NewNop()
	}
	return &CachedStore{
		Store:  store,
		cache:  cache,
		ttl:    ttl,
		logger: log,
	}
}

func (s *CachedStore) All(ctx context.Context, collection string) ([]Document, error) {
	key := listCacheKey(collection)

	if data, err := s.cache.GetBytes(ctx, key); err == nil {
		if docs, err := decodeList(data); err == nil {
			return docs, nil
		}
		s.logger.WithCollection(collection).Warn("Discarding undecodable cached list")
	}

	docs, err := s.Store.All(ctx, collection)
	if err != nil {
		return nil, err
	}

	if data, err := bson.Marshal(bson.M{"items": docs}); err == nil {
		if err := s.cache.SetBytes(ctx, key, data, s.ttl); err != nil {
			s.logger.WithCollection(collection).WithError(err).Warn("Failed to cache collection list")
		}
	}

	return docs, nil
}

func (s *CachedStore) Get(ctx context.Context, collection, id string) (Document, error) {
	key := recordCacheKey(collection, id)

	if data, err := s.cache.GetBytes(ctx, key); err == nil {
		if doc, err := decodeStored(data); err == nil {
			return doc, nil
		}
	}

	doc, err := s.Store.Get(ctx, collection, id)
	if err != nil {
		return nil, err
	}

	if data, err := bson.Marshal(doc); err == nil {
		if err := s.cache.SetBytes(ctx, key, data, s.ttl); err != nil {
			s.logger.WithCollection(collection).WithError(err).Warn("Failed to cache record")
		}
	}

	return doc, nil
}

func (s *CachedStore) Insert(ctx context.Context, collection string, doc Document) error {
	if err := s.Store.Insert(ctx, collection, doc); err != nil {
		return err
	}

	if err := s.cache.Delete(ctx, listCacheKey(collection), recordCacheKey(collection, documentID(doc))); err != nil {
		s.logger.WithCollection(collection).WithError(err).Warn("Failed to invalidate cached collection")
	}

	return nil
}

func listCacheKey(collection string) string {
	return fmt.Sprintf("records:%s:all", collection)
}

func recordCacheKey(collection, id string) string {
	return fmt.Sprintf("records:%s:id:%s", collection, id)
}

func decodeList(data []byte) ([]Document, error) {
	var wrapper struct {
		Items []Document `bson:"items"`
	}
	if err := bson.Unmarshal(data, &wrapper); err != nil {
		return nil, err
	}
	if wrapper.Items == nil {
		wrapper.Items = []Document{}
	}
	return wrapper.Items, nil
}
