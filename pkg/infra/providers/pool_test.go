package providers_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/Setharkk/Skyent-dev/pkg/infra/providers"
	"github.com/stretchr/testify/assert"
)

func TestClientPool_BuildsOncePerKey(t *testing.T) {
	var pool providers.ClientPool[*string]
	var builds int32
	build := func(v string) func() *string {
		return func() *string {
			atomic.AddInt32(&builds, 1)
			return &v
		}
	}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, "a", *pool.Get("key-a", build("a")))
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), atomic.LoadInt32(&builds))

	assert.Equal(t, "b", *pool.Get("key-b", build("b")))
	assert.Same(t, pool.Get("key-a", build("x")), pool.Get("key-a", build("y")))
	assert.Equal(t, int32(2), atomic.LoadInt32(&builds))
}
