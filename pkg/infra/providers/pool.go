package providers

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// ClientPool keeps one SDK client per credential key. Concurrent first
// requests for the same key build the client once.
type ClientPool[T any] struct {
	clients sync.Map
	group   singleflight.Group
}

func (p *ClientPool[T]) Get(key string, build func() T) T {
	if v, ok := p.clients.Load(key); ok {
		return v.(T)
	}
	v, _, _ := p.group.Do(key, func() (interface{}, error) {
		if v, ok := p.clients.Load(key); ok {
			return v, nil
		}
		cli := build()
		p.clients.Store(key, cli)
		return cli, nil
	})
	return v.(T)
}
