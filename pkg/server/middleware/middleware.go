package middleware

import "github.com/gofiber/fiber/v2"

type Middleware interface {
	Middleware() fiber.Handler
}

// Chain is the global middleware stack, applied in insertion order. Panic
// recovery goes first so it also covers the handlers behind it.
type Chain struct {
	entries []Middleware
}

// NewChain drops nil entries, so optional middlewares can be passed as-is.
func NewChain(middlewares ...Middleware) *Chain {
	c := &Chain{}
	for _, m := range middlewares {
		if m != nil {
			c.entries = append(c.entries, m)
		}
	}
	return c
}

func (c *Chain) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// Apply mounts every middleware on r.
func (c *Chain) Apply(r fiber.Router) {
	if c == nil {
		return
	}
	for _, m := range c.entries {
		r.Use(m.Middleware())
	}
}
