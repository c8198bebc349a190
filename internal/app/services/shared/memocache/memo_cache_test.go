package memocache

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func countingLoad(calls *int) LoadFunc[int] {
	return func(ctx context.Context) (int, error) {
		*calls++
		return *calls, nil
	}
}

func TestLoaderGet(t *testing.T) {
	ctx := context.Background()

	t.Run("Zero Duration Recomputes Every Call", func(t *testing.T) {
		calls := 0
		loader := NewLoader(countingLoad(&calls), 0)

		first, err := loader.Get(ctx)
		assert.NoError(t, err)
		second, err := loader.Get(ctx)
		assert.NoError(t, err)

		assert.Equal(t, 1, first)
		assert.Equal(t, 2, second)
		assert.Equal(t, 2, calls)
	})

	t.Run("Negative Duration Recomputes Every Call", func(t *testing.T) {
		calls := 0
		loader := NewLoader(countingLoad(&calls), -time.Second)

		_, err := loader.Get(ctx)
		assert.NoError(t, err)
		_, err = loader.Get(ctx)
		assert.NoError(t, err)

		assert.Equal(t, 2, calls)
	})

	t.Run("Fresh Value Is Reused Within Duration", func(t *testing.T) {
		calls := 0
		loader := NewLoader(countingLoad(&calls), time.Hour)

		first, err := loader.Get(ctx)
		assert.NoError(t, err)
		second, err := loader.Get(ctx)
		assert.NoError(t, err)

		assert.Equal(t, 1, first)
		assert.Equal(t, 1, second)
		assert.Equal(t, 1, calls)
	})

	t.Run("Value Expires After Duration", func(t *testing.T) {
		calls := 0
		current := time.Date(2013, time.September, 9, 12, 0, 0, 0, time.UTC)
		loader := NewLoader(countingLoad(&calls), 10*time.Minute,
			WithNow[int](func() time.Time { return current }))

		_, err := loader.Get(ctx)
		assert.NoError(t, err)

		current = current.Add(9 * time.Minute)
		_, err = loader.Get(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 1, calls)

		current = current.Add(time.Minute)
		value, err := loader.Get(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 2, calls)
		assert.Equal(t, 2, value)
	})

	t.Run("Clone Isolates Callers From The Stored Value", func(t *testing.T) {
		load := func(ctx context.Context) (map[string]int, error) {
			return map[string]int{"a": 1}, nil
		}
		clone := func(in map[string]int) map[string]int {
			out := make(map[string]int, len(in))
			for k, v := range in {
				out[k] = v
			}
			return out
		}
		loader := NewLoader(load, time.Hour, WithClone(clone))

		first, err := loader.Get(ctx)
		assert.NoError(t, err)
		first["a"] = 99

		second, err := loader.Get(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 1, second["a"])
	})

	t.Run("Failed Recompute Surfaces The Error", func(t *testing.T) {
		loadErr := errors.New("source unavailable")
		calls := 0
		fail := false
		load := func(ctx context.Context) (int, error) {
			calls++
			if fail {
				return 0, loadErr
			}
			return calls, nil
		}
		current := time.Date(2013, time.September, 9, 12, 0, 0, 0, time.UTC)
		loader := NewLoader(load, 10*time.Minute,
			WithNow[int](func() time.Time { return current }))

		value, err := loader.Get(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 1, value)

		current = current.Add(11 * time.Minute)
		fail = true
		_, err = loader.Get(ctx)
		assert.ErrorIs(t, err, loadErr)

		fail = false
		value, err = loader.Get(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 3, value)
	})

	t.Run("Cold Cache Under Contention Loads Once", func(t *testing.T) {
		var calls int
		load := func(ctx context.Context) (int, error) {
			calls++
			time.Sleep(10 * time.Millisecond)
			return calls, nil
		}
		loader := NewLoader(load, time.Hour)

		var wg sync.WaitGroup
		for i := 0; i < 16; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				value, err := loader.Get(ctx)
				assert.NoError(t, err)
				assert.Equal(t, 1, value)
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, calls)
	})
}
