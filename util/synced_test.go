package util

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeCounter(t *testing.T) {
	t.Run("Basic Operations", func(t *testing.T) {
		sc := NewSafeCounter()
		assert.Equal(t, int64(0), sc.Value())
		assert.Equal(t, int64(1), sc.Increment())
		assert.Equal(t, int64(2), sc.Increment())
		assert.Equal(t, int64(2), sc.Value())
	})

	t.Run("Concurrency", func(t *testing.T) {
		sc := NewSafeCounter()
		var wg sync.WaitGroup
		iterations := 1000

		wg.Add(iterations)
		for i := 0; i < iterations; i++ {
			go func() {
				defer wg.Done()
				sc.Increment()
			}()
		}
		wg.Wait()
		assert.Equal(t, int64(iterations), sc.Value())
	})
}

func TestSafeFlag(t *testing.T) {
	sf := NewSafeFlag(false)
	assert.False(t, sf.Value())

	assert.False(t, sf.Set(true), "Set should return the previous value")
	assert.True(t, sf.Value())

	assert.True(t, sf.Set(false))
	assert.False(t, sf.Value())
}
