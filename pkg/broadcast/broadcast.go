package broadcast

import (
	"context"
	"sync"
)

// Message wraps data of type T for type-safe broadcasting.
type Message[T any] struct {
	Data T
}

// Subscriber receives messages from a Broadcaster.
// Implementations must be safe for concurrent use.
type Subscriber[T any] interface {
	// Receive returns a channel for receiving broadcast messages.
	// The context is kept for interface consistency with adapters that
	// block; the in-memory implementation ignores it.
	Receive(ctx context.Context) <-chan Message[T]

	// Close closes the subscriber and releases resources.
	// After Close, the receive channel is closed and no more messages will be received.
	// Close is idempotent and safe to call multiple times.
	Close() error
}

// Broadcaster publishes values to multiple subscribers.
// Implementations never block the publisher on slow consumers.
type Broadcaster[T any] interface {
	// Subscribe creates a new subscriber. The context controls the lifetime
	// of the subscription: when it is cancelled the subscription is removed.
	Subscribe(ctx context.Context) Subscriber[T]

	// Publish sends a value to all active subscribers.
	Publish(ctx context.Context, v T) error

	// Close shuts down the broadcaster and closes all subscribers.
	Close() error
}

type subscriber[T any] struct {
	ch     chan Message[T]
	closed bool
	mu     sync.RWMutex
}

func newSubscriber[T any](bufferSize int) *subscriber[T] {
	return &subscriber[T]{
		ch: make(chan Message[T], bufferSize),
	}
}

func (s *subscriber[T]) Receive(ctx context.Context) <-chan Message[T] {
	return s.ch
}

func (s *subscriber[T]) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		close(s.ch)
		s.closed = true
	}
	return nil
}

// send delivers msg without blocking. When the buffer is full the oldest
// pending message is discarded, so a slow reader always ends up with the
// most recent value.
func (s *subscriber[T]) send(msg Message[T]) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return false
	}

	select {
	case s.ch <- msg:
		return true
	default:
	}

	select {
	case <-s.ch:
	default:
	}

	select {
	case s.ch <- msg:
		return true
	default:
		return false
	}
}
