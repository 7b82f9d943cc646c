package store

import (
	"context"
	"errors"
	"time"
)

// OperationObserver receives timing for completed store operations.
type OperationObserver interface {
	ObserveStoreOperation(op, key string, duration time.Duration, err error)
}

// InstrumentedStore wraps another Store and reports every operation to an
// observer.
type InstrumentedStore struct {
	next     Store
	observer OperationObserver
}

// NewInstrumentedStore wraps next with operation instrumentation. A nil
// observer returns next unchanged.
func NewInstrumentedStore(next Store, observer OperationObserver) Store {
	if observer == nil {
		return next
	}
	return &InstrumentedStore{next: next, observer: observer}
}

func (s *InstrumentedStore) Read(ctx context.Context, key string) ([]byte, error) {
	start := time.Now()
	data, err := s.next.Read(ctx, key)
	obsErr := err
	if errors.Is(err, ErrKeyNotFound) {
		// A missing key is an expected outcome, not a backend failure.
		obsErr = nil
	}
	s.observer.ObserveStoreOperation("read", key, time.Since(start), obsErr)
	return data, err
}

func (s *InstrumentedStore) Write(ctx context.Context, key string, value []byte) error {
	start := time.Now()
	err := s.next.Write(ctx, key, value)
	s.observer.ObserveStoreOperation("write", key, time.Since(start), err)
	return err
}

func (s *InstrumentedStore) Delete(ctx context.Context, key string) error {
	start := time.Now()
	err := s.next.Delete(ctx, key)
	s.observer.ObserveStoreOperation("delete", key, time.Since(start), err)
	return err
}
