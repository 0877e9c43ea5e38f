package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Memory is an in-process Cache backed by go-cache. Used in development and
// in the handler test suites.
type Memory struct {
	c *gocache.Cache
}

func NewMemory(ttl time.Duration) *Memory {
	return &Memory{c: gocache.New(ttl, time.Minute)}
}

func (m *Memory) Get(key string) ([]byte, bool) {
	v, ok := m.c.Get(key)
	if !ok {
		return nil, false
	}
	b, ok := v.([]byte)
	return b, ok
}

func (m *Memory) Set(key string, value []byte) {
	m.c.Set(key, value, gocache.DefaultExpiration)
}

func (m *Memory) Delete(key string) {
	m.c.Delete(key)
}

// Flush drops every entry. Test helper.
func (m *Memory) Flush() {
	m.c.Flush()
}
