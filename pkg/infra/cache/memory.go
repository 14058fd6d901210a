package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

type memoryClient struct {
	entries *TTLMap
}

// NewMemoryClient is the in-process Client used when redis is not configured.
// Values are encoded like the redis client so callers never share memory.
func NewMemoryClient() Client {
	return &memoryClient{entries: NewTTLMap()}
}

func (c *memoryClient) Get(_ context.Context, key string, out interface{}) error {
	data, ok := c.entries.Get(key)
	if !ok {
		return ErrCacheMiss
	}
	if err := msgpack.Unmarshal(data, out); err != nil {
		return fmt.Errorf("cache value error: %w", err)
	}
	return nil
}

func (c *memoryClient) Set(_ context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := msgpack.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode cache value: %w", err)
	}
	c.entries.Set(key, data, expiration)
	return nil
}

func (c *memoryClient) Delete(_ context.Context, key string) error {
	c.entries.Delete(key)
	return nil
}

func (c *memoryClient) Ping(context.Context) error {
	return nil
}
