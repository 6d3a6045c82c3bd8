// Package cache keeps compiled fragments for reuse.
//
// Compiling is the expensive step of the fragment pipeline. A Cache holds
// compiled *rex.Regex values keyed by pattern text, so callers matching the
// same fragment repeatedly compile it once. Fragments themselves never hold
// compiled state; the cache belongs to the caller that needs it.
package cache

import (
	"fmt"

	"github.com/maypok86/otter"
	"golang.org/x/sync/singleflight"

	"github.com/coregx/rex"
)

// Option configures a Cache.
type Option func(*options)

type options struct {
	config *rex.Config
}

// WithConfig compiles every fragment of the cache with config instead of the
// engine defaults.
func WithConfig(config rex.Config) Option {
	return func(o *options) {
		o.config = &config
	}
}

// Cache is a bounded store of compiled fragments. It is safe for concurrent
// use; concurrent misses on the same pattern compile it only once.
type Cache struct {
	store   otter.Cache[string, *rex.Regex]
	compile func(rex.Fragment) (*rex.Regex, error)
	group   singleflight.Group
}

// New returns a cache holding at most capacity compiled patterns.
func New(capacity int, opts ...Option) (*Cache, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.config != nil {
		if err := o.config.Validate(); err != nil {
			return nil, err
		}
	}

	builder, err := otter.NewBuilder[string, *rex.Regex](capacity)
	if err != nil {
		return nil, fmt.Errorf("unable to create cache: %w", err)
	}
	store, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("unable to build cache: %w", err)
	}

	c := &Cache{store: store, compile: rex.Compile}
	if o.config != nil {
		config := *o.config
		c.compile = func(f rex.Fragment) (*rex.Regex, error) {
			return rex.CompileWithConfig(f, config)
		}
	}
	return c, nil
}

// Get returns the compiled form of f, compiling it on a miss. Compile errors
// are returned unchanged and are not cached.
func (c *Cache) Get(f rex.Fragment) (*rex.Regex, error) {
	key := f.String()
	if re, ok := c.store.Get(key); ok {
		return re, nil
	}
	v, err, _ := c.group.Do(key, func() (any, error) {
		re, err := c.compile(f)
		if err != nil {
			return nil, err
		}
		c.store.Set(key, re)
		return re, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*rex.Regex), nil
}

// Len returns the number of cached patterns.
func (c *Cache) Len() int {
	return c.store.Size()
}

// Purge drops every cached pattern.
func (c *Cache) Purge() {
	c.store.Clear()
}

// Close releases the cache's background resources.
func (c *Cache) Close() {
	c.store.Close()
}
