// Package memory implements pkg/objectstore.Store in process memory, for
// unit tests and local development without a real S3 endpoint.
package memory

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/chris-alexander-pop/system-design-library/pkg/errors"
	"github.com/chris-alexander-pop/system-design-library/pkg/objectstore"
)

type object struct {
	data []byte
}

// Store is an in-memory objectstore.Store.
type Store struct {
	mu      sync.RWMutex
	buckets map[string]bool
	objects map[string]map[string]*object
}

// New creates an empty in-memory store.
func New(_ objectstore.Config) *Store {
	return &Store{
		buckets: make(map[string]bool),
		objects: make(map[string]map[string]*object),
	}
}

func (s *Store) EnsureBucket(ctx context.Context, bucket string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.buckets[bucket] {
		return nil
	}
	s.buckets[bucket] = true
	s.objects[bucket] = make(map[string]*object)
	return nil
}

func (s *Store) Put(ctx context.Context, bucket, key string, data io.Reader, size int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.buckets[bucket] {
		return errors.NotFound("bucket not found", nil)
	}

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, data); err != nil {
		return errors.Internal("failed to buffer object", err)
	}

	s.objects[bucket][key] = &object{data: buf.Bytes()}
	return nil
}

func (s *Store) Get(ctx context.Context, bucket, key string) (io.ReadCloser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	objs, ok := s.objects[bucket]
	if !ok {
		return nil, errors.NotFound("bucket not found", nil)
	}
	obj, ok := objs[key]
	if !ok {
		return nil, errors.NotFound("object not found", nil)
	}

	return io.NopCloser(bytes.NewReader(obj.data)), nil
}

func (s *Store) Delete(ctx context.Context, bucket, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if objs, ok := s.objects[bucket]; ok {
		delete(objs, key)
	}
	return nil
}

func (s *Store) PresignGet(ctx context.Context, bucket, key string, ttl time.Duration) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	objs, ok := s.objects[bucket]
	if !ok {
		return "", errors.NotFound("bucket not found", nil)
	}
	if _, ok := objs[key]; !ok {
		return "", errors.NotFound("object not found", nil)
	}

	expiry := time.Now().Add(ttl).Unix()
	return fmt.Sprintf("memory://%s/%s?expires=%d", bucket, key, expiry), nil
}
