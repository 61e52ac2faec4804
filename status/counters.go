// Package status keeps named session counters for the debug log.
package status

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
)

// Counters is a set of named int64 counters.
// Lookup takes a lock; the returned pointer is updated lock-free.
type Counters struct {
	mu    sync.RWMutex
	items map[string]*atomic.Int64
}

// NewCounters creates an empty set
func NewCounters() *Counters {
	return &Counters{items: make(map[string]*atomic.Int64)}
}

// Counter returns the counter for name, creating it at zero
func (c *Counters) Counter(name string) *atomic.Int64 {
	c.mu.RLock()
	ptr, ok := c.items[name]
	c.mu.RUnlock()
	if ok {
		return ptr
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if ptr, ok := c.items[name]; ok {
		return ptr
	}
	ptr = new(atomic.Int64)
	c.items[name] = ptr
	return ptr
}

// Inc adds one to name
func (c *Counters) Inc(name string) {
	c.Counter(name).Add(1)
}

// Get returns the value of name, zero when never touched
func (c *Counters) Get(name string) int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if ptr, ok := c.items[name]; ok {
		return ptr.Load()
	}
	return 0
}

// Len returns the number of counters
func (c *Counters) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// String formats all counters as "a=1 b=2" in name order
func (c *Counters) String() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.items))
	for name := range c.items {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for i, name := range names {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(strconv.FormatInt(c.items[name].Load(), 10))
	}
	return b.String()
}
