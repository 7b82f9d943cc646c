package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreReadAbsentKey(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.Read(context.Background(), "students")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()

	require.NoError(t, s.Write(context.Background(), "students", []byte(`[{"id":1}]`)))

	value, err := s.Read(context.Background(), "students")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":1}]`, string(value))
}

func TestMemoryStoreReadReturnsCopy(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.Write(context.Background(), "courses", []byte("abc")))

	value, err := s.Read(context.Background(), "courses")
	require.NoError(t, err)
	value[0] = 'x'

	again, err := s.Read(context.Background(), "courses")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(again))
}

func TestMemoryStoreDeleteIsIdempotent(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.Write(context.Background(), "departments", []byte("[]")))

	require.NoError(t, s.Delete(context.Background(), "departments"))
	require.NoError(t, s.Delete(context.Background(), "departments"))

	_, err := s.Read(context.Background(), "departments")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}
