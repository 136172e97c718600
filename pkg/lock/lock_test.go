package lock

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalSerializesSameKey(t *testing.T) {
	l := NewLocal()
	ctx := context.Background()

	var wg sync.WaitGroup
	counter := 0
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock, err := l.Lock(ctx, "k")
			if !assert.NoError(t, err) {
				return
			}
			v := counter
			v++
			counter = v
			unlock()
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, counter)
	// 没有持有者之后条目被回收
	assert.Empty(t, l.locks)
}

func TestLocalIndependentKeys(t *testing.T) {
	l := NewLocal()
	ctx := context.Background()

	unlockA, err := l.Lock(ctx, "a")
	require.NoError(t, err)
	defer unlockA()

	// 不同的 key 不会互相阻塞
	unlockB, err := l.Lock(ctx, "b")
	require.NoError(t, err)
	unlockB()
}
