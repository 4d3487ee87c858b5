package numfmt

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// Cache is a bounded, concurrency-safe store of parsed formats keyed by
// format string.  The least recently used entry is evicted when full.
type Cache struct {
	lru *lru.Cache[string, *NumberFormat]
}

// NewCache returns a cache holding at most size formats.  size < 1 is
// treated as 1.
func NewCache(size int) *Cache {
	l, err := lru.New[string, *NumberFormat](max(size, 1))
	if err != nil {
		// lru.New fails only for a non-positive size.
		panic(err)
	}
	return &Cache{lru: l}
}

// Get returns the parsed form of format, parsing it on a miss.
func (c *Cache) Get(format string) *NumberFormat {
	if nf, ok := c.lru.Get(format); ok {
		return nf
	}
	// A concurrent miss on the same key parses twice; the first insert wins.
	nf := New(format)
	if prev, ok, _ := c.lru.PeekOrAdd(format, nf); ok {
		return prev
	}
	return nf
}

// Len returns the number of cached formats.
func (c *Cache) Len() int {
	return c.lru.Len()
}
