package broadcast

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive[T any](t *testing.T, sub Subscriber[T]) (T, bool) {
	t.Helper()
	select {
	case msg, ok := <-sub.Receive(context.Background()):
		return msg.Data, ok
	case <-time.After(100 * time.Millisecond):
		t.Fatal("timeout waiting for message")
	}
	var zero T
	return zero, false
}

func TestCell_Value(t *testing.T) {
	t.Run("returns initial value before publish", func(t *testing.T) {
		c := NewCell("initial", 1)
		defer c.Close()

		assert.Equal(t, "initial", c.Value())
	})

	t.Run("returns last published value", func(t *testing.T) {
		c := NewCell(0, 1)
		defer c.Close()

		ctx := context.Background()
		require.NoError(t, c.Publish(ctx, 1))
		require.NoError(t, c.Publish(ctx, 2))

		assert.Equal(t, 2, c.Value())
	})

	t.Run("value survives close", func(t *testing.T) {
		c := NewCell(0, 1)
		require.NoError(t, c.Publish(context.Background(), 7))
		require.NoError(t, c.Close())

		assert.Equal(t, 7, c.Value())
	})
}

func TestCell_Subscribe(t *testing.T) {
	t.Run("new subscriber receives current value", func(t *testing.T) {
		c := NewCell("initial", 4)
		defer c.Close()

		sub := c.Subscribe(context.Background())
		v, ok := receive(t, sub)
		require.True(t, ok)
		assert.Equal(t, "initial", v)
	})

	t.Run("late subscriber receives last published value", func(t *testing.T) {
		c := NewCell("initial", 4)
		defer c.Close()

		ctx := context.Background()
		require.NoError(t, c.Publish(ctx, "first"))
		require.NoError(t, c.Publish(ctx, "second"))

		sub := c.Subscribe(ctx)
		v, ok := receive(t, sub)
		require.True(t, ok)
		assert.Equal(t, "second", v)
	})

	t.Run("subscriber receives subsequent values in order", func(t *testing.T) {
		c := NewCell(0, 4)
		defer c.Close()

		ctx := context.Background()
		sub := c.Subscribe(ctx)

		require.NoError(t, c.Publish(ctx, 1))
		require.NoError(t, c.Publish(ctx, 2))

		for _, expected := range []int{0, 1, 2} {
			v, ok := receive(t, sub)
			require.True(t, ok)
			assert.Equal(t, expected, v)
		}
	})

	t.Run("subscribe after close returns closed subscriber", func(t *testing.T) {
		c := NewCell("initial", 1)
		require.NoError(t, c.Close())

		sub := c.Subscribe(context.Background())
		require.NotNil(t, sub)

		_, ok := <-sub.Receive(context.Background())
		assert.False(t, ok)
	})

	t.Run("context cancellation unsubscribes", func(t *testing.T) {
		c := NewCell("initial", 4)
		defer c.Close()

		ctx, cancel := context.WithCancel(context.Background())
		sub := c.Subscribe(ctx)

		v, ok := receive(t, sub)
		require.True(t, ok)
		assert.Equal(t, "initial", v)

		cancel()
		assert.Eventually(t, func() bool {
			c.mu.RLock()
			defer c.mu.RUnlock()
			return len(c.subscribers) == 0
		}, time.Second, 5*time.Millisecond)

		_, ok = <-sub.Receive(context.Background())
		assert.False(t, ok)
	})
}

func TestCell_Publish(t *testing.T) {
	t.Run("fans out to every subscriber", func(t *testing.T) {
		c := NewCell(0, 4)
		defer c.Close()

		ctx := context.Background()
		subs := make([]Subscriber[int], 5)
		for i := range subs {
			subs[i] = c.Subscribe(ctx)
			_, _ = receive(t, subs[i])
		}

		require.NoError(t, c.Publish(ctx, 42))

		for i, sub := range subs {
			v, ok := receive(t, sub)
			require.True(t, ok, "subscriber %d", i)
			assert.Equal(t, 42, v, "subscriber %d", i)
		}
	})

	t.Run("slow subscriber keeps the latest value", func(t *testing.T) {
		c := NewCell(0, 1)
		defer c.Close()

		ctx := context.Background()
		sub := c.Subscribe(ctx)

		for i := 1; i <= 10; i++ {
			require.NoError(t, c.Publish(ctx, i))
		}

		v, ok := receive(t, sub)
		require.True(t, ok)
		assert.Equal(t, 10, v)
	})

	t.Run("publish after close fails", func(t *testing.T) {
		c := NewCell("initial", 1)
		require.NoError(t, c.Close())

		err := c.Publish(context.Background(), "late")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrCellClosed{})
		assert.Equal(t, "initial", c.Value())
	})

	t.Run("closed subscriber is removed", func(t *testing.T) {
		c := NewCell(0, 1)
		defer c.Close()

		ctx := context.Background()
		sub := c.Subscribe(ctx)
		require.NoError(t, sub.Close())

		require.NoError(t, c.Publish(ctx, 1))

		c.mu.RLock()
		defer c.mu.RUnlock()
		assert.Empty(t, c.subscribers)
	})
}

func TestCell_Close(t *testing.T) {
	t.Run("close closes all subscribers", func(t *testing.T) {
		c := NewCell("initial", 4)

		ctx := context.Background()
		subs := make([]Subscriber[string], 3)
		for i := range subs {
			subs[i] = c.Subscribe(ctx)
			_, _ = receive(t, subs[i])
		}

		require.NoError(t, c.Close())

		for i, sub := range subs {
			_, ok := <-sub.Receive(ctx)
			assert.False(t, ok, "subscriber %d channel should be closed", i)
		}
	})

	t.Run("close does not wait for live contexts", func(t *testing.T) {
		c := NewCell("initial", 1)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		_ = c.Subscribe(ctx)

		done := make(chan struct{})
		go func() {
			_ = c.Close()
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("close blocked on an active subscription context")
		}
	})

	t.Run("double close is safe", func(t *testing.T) {
		c := NewCell("initial", 1)
		require.NoError(t, c.Close())
		require.NoError(t, c.Close())
	})
}

func TestCell_Concurrent(t *testing.T) {
	c := NewCell(0, 16)
	defer c.Close()

	ctx := context.Background()

	var wg sync.WaitGroup
	const numGoroutines = 10

	wg.Add(numGoroutines * 2)
	for i := range numGoroutines {
		go func(v int) {
			defer wg.Done()
			assert.NoError(t, c.Publish(ctx, v))
		}(i)
		go func() {
			defer wg.Done()
			subCtx, cancel := context.WithTimeout(ctx, 10*time.Millisecond)
			defer cancel()
			sub := c.Subscribe(subCtx)
			<-sub.Receive(subCtx)
		}()
	}

	wg.Wait()

	assert.GreaterOrEqual(t, c.Value(), 0)
	assert.Less(t, c.Value(), numGoroutines)
}

func BenchmarkCell_Publish(b *testing.B) {
	c := NewCell("", 100)
	defer c.Close()

	ctx := context.Background()
	for range 10 {
		sub := c.Subscribe(ctx)
		go func(s Subscriber[string]) {
			for range s.Receive(ctx) {
			}
		}(sub)
	}

	for b.Loop() {
		_ = c.Publish(ctx, "benchmark")
	}
}
