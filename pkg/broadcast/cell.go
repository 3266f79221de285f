package broadcast

import (
	"context"
	"sync"
)

var _ Broadcaster[int] = (*Cell[int])(nil)

// Cell is a single-slot broadcaster that remembers the last published value.
// New subscribers immediately receive the current value, then every value
// published afterwards. All methods are safe for concurrent use.
type Cell[T any] struct {
	value       T
	subscribers map[*subscriber[T]]struct{}
	bufferSize  int
	closed      bool
	done        chan struct{}
	mu          sync.RWMutex
	cleanupWg   sync.WaitGroup // tracks context watchers
}

// NewCell creates a cell holding initial.
// The bufferSize parameter determines the channel buffer size for each
// subscriber; a minimum of 1 is enforced so the current value can always be
// handed over on Subscribe.
func NewCell[T any](initial T, bufferSize int) *Cell[T] {
	return &Cell[T]{
		value:       initial,
		subscribers: make(map[*subscriber[T]]struct{}),
		bufferSize:  max(bufferSize, 1),
		done:        make(chan struct{}),
	}
}

// Value returns the most recently published value, or the initial value if
// nothing has been published yet.
func (c *Cell[T]) Value() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// Subscribe registers a subscriber and sends it the current value.
// The subscription is removed when ctx is cancelled.
// If the cell is already closed, returns a closed subscriber.
func (c *Cell[T]) Subscribe(ctx context.Context) Subscriber[T] {
	c.mu.Lock()
	defer c.mu.Unlock()

	sub := newSubscriber[T](c.bufferSize)
	if c.closed {
		_ = sub.Close()
		return sub
	}

	sub.send(Message[T]{Data: c.value})
	c.subscribers[sub] = struct{}{}

	if ctx.Done() != nil {
		c.cleanupWg.Add(1)
		go func() {
			defer c.cleanupWg.Done()
			select {
			case <-ctx.Done():
				c.unsubscribe(sub)
			case <-c.done:
			}
		}()
	}

	return sub
}

// Publish stores v as the current value and fans it out to subscribers.
// A subscriber whose buffer is full loses its oldest pending value instead
// of blocking the publisher.
func (c *Cell[T]) Publish(ctx context.Context, v T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrCellClosed{}
	}

	c.value = v
	msg := Message[T]{Data: v}
	for sub := range c.subscribers {
		if !sub.send(msg) {
			delete(c.subscribers, sub)
		}
	}

	return nil
}

// Close shuts down the cell and closes all subscribers.
// It is safe to call Close multiple times. Value keeps returning the last
// published value after Close.
func (c *Cell[T]) Close() error {
	c.mu.Lock()

	if c.closed {
		c.mu.Unlock()
		return nil
	}

	c.closed = true
	close(c.done)

	for sub := range c.subscribers {
		_ = sub.Close()
	}

	clear(c.subscribers)
	c.mu.Unlock()

	c.cleanupWg.Wait()

	return nil
}

func (c *Cell[T]) unsubscribe(sub *subscriber[T]) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.subscribers, sub)
	_ = sub.Close()
}
