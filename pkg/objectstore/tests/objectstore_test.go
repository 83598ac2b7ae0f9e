package tests

import (
	"bytes"
	"io"
	"testing"

	"github.com/chris-alexander-pop/system-design-library/pkg/errors"
	"github.com/chris-alexander-pop/system-design-library/pkg/objectstore"
	"github.com/chris-alexander-pop/system-design-library/pkg/objectstore/adapters/memory"
	"github.com/chris-alexander-pop/system-design-library/pkg/test"
)

type ObjectStoreSuite struct {
	test.Suite
	store *memory.Store
}

func (s *ObjectStoreSuite) SetupTest() {
	s.Suite.SetupTest()
	s.store = memory.New(objectstore.Config{})
}

func (s *ObjectStoreSuite) TestPutGetRoundTrip() {
	s.NoError(s.store.EnsureBucket(s.Ctx, "bucket"))
	s.NoError(s.store.Put(s.Ctx, "bucket", "key", bytes.NewReader([]byte("hello")), 5))

	rc, err := s.store.Get(s.Ctx, "bucket", "key")
	s.NoError(err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	s.NoError(err)
	s.Equal("hello", string(data))
}

func (s *ObjectStoreSuite) TestGetMissingObjectReturnsNotFound() {
	s.NoError(s.store.EnsureBucket(s.Ctx, "bucket"))

	_, err := s.store.Get(s.Ctx, "bucket", "missing")
	s.Error(err)

	var appErr *errors.AppError
	s.True(errors.As(err, &appErr))
	s.Equal(errors.CodeNotFound, appErr.Code)
}

func (s *ObjectStoreSuite) TestEnsureBucketIsIdempotent() {
	s.NoError(s.store.EnsureBucket(s.Ctx, "bucket"))
	s.NoError(s.store.EnsureBucket(s.Ctx, "bucket"))
}

func (s *ObjectStoreSuite) TestDeleteThenGetReturnsNotFound() {
	s.NoError(s.store.EnsureBucket(s.Ctx, "bucket"))
	s.NoError(s.store.Put(s.Ctx, "bucket", "key", bytes.NewReader([]byte("x")), 1))
	s.NoError(s.store.Delete(s.Ctx, "bucket", "key"))

	_, err := s.store.Get(s.Ctx, "bucket", "key")
	s.Error(err)
}

func (s *ObjectStoreSuite) TestPresignGetReturnsURLForExistingObject() {
	s.NoError(s.store.EnsureBucket(s.Ctx, "bucket"))
	s.NoError(s.store.Put(s.Ctx, "bucket", "key", bytes.NewReader([]byte("x")), 1))

	url, err := s.store.PresignGet(s.Ctx, "bucket", "key", 0)
	s.NoError(err)
	s.NotEmpty(url)
}

func TestObjectStoreSuite(t *testing.T) {
	test.Run(t, new(ObjectStoreSuite))
}
