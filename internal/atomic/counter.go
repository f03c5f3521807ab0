/*
Package atomic implements a threadsafe integer counter guarded by a mutex.

Every operation holds the counter's lock for its whole critical section, so
operations on one Counter are totally ordered by the order in which the lock
grants access. Operations on different Counters are unordered.

sync.Mutex has no failure path: misuse such as unlocking an unlocked mutex is a
fatal runtime error and cannot be recovered. A nil *Counter panics on first use.
Callers should treat either as a broken process rather than retry.
*/
package atomic

import (
	"strconv"
	"sync"
)

// Counter is a threadsafe integer counter. The zero value is ready to use and
// holds 0.
//
// A Counter must not be copied after first use.
type Counter struct {
	mu    sync.Mutex
	count int
}

// New returns a counter whose value is initial.
func New(initial int) *Counter {
	return &Counter{count: initial}
}

// Get returns the counter's current value.
func (c *Counter) Get() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}

// Set overwrites the counter's value.
func (c *Counter) Set(value int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.count = value
}

/*
IncrementAndGet adds one to the counter and returns the resulting value. The
read-modify-write happens under a single hold of the lock, so across all
callers the returned values are exactly initial+1 ... initial+N with nothing
skipped or repeated. Overflow wraps.
*/
func (c *Counter) IncrementAndGet() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.count++
	return c.count
}

// DecrementAndGet subtracts one from the counter and returns the resulting value.
func (c *Counter) DecrementAndGet() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.count--
	return c.count
}

func (c *Counter) String() string {
	return strconv.Itoa(c.Get())
}
