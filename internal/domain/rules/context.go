package rules

import "sync"

// ---------------------------------------------------------------------------
// Context – shared read-mostly data for one evaluation pass
// ---------------------------------------------------------------------------

// Context carries data shared between the rules of a single evaluation pass,
// such as an externally fetched risk profile or values derived by earlier
// rules. Access is mutex-protected so the context stays safe if a rule set
// is ever evaluated concurrently; in the single-threaded pass the lock is
// uncontended.
type Context struct {
	mu     sync.RWMutex
	values map[string]any
}

// NewContext creates an empty evaluation context.
func NewContext() *Context {
	return &Context{values: make(map[string]any)}
}

// Set stores a value under the given key.
func (c *Context) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = value
}

// Get returns the value stored under key, or false when absent.
func (c *Context) Get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.values[key]
	return v, ok
}

// GetString returns the string stored under key, or false when absent or of
// another type.
func (c *Context) GetString(key string) (string, bool) {
	v, ok := c.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// GetInt returns the int stored under key, or false when absent or of
// another type.
func (c *Context) GetInt(key string) (int, bool) {
	v, ok := c.Get(key)
	if !ok {
		return 0, false
	}
	i, ok := v.(int)
	return i, ok
}
