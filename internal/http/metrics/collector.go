package metrics

import (
	"sort"
	"sync"
	"sync/atomic"
)

type Collector struct {
	requests uint64
	errors   uint64

	mu         sync.Mutex
	errorCodes map[string]uint64
}

func NewCollector() *Collector {
	return &Collector{errorCodes: make(map[string]uint64)}
}

func (c *Collector) IncRequests() {
	atomic.AddUint64(&c.requests, 1)
}

// IncErrors counts 5xx responses.
func (c *Collector) IncErrors() {
	atomic.AddUint64(&c.errors, 1)
}

func (c *Collector) IncErrorCode(code string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errorCodes[code]++
}

type CodeCount struct {
	Code  string
	Count uint64
}

type Snapshot struct {
	Requests   uint64
	Errors     uint64
	ErrorCodes []CodeCount
}

func (c *Collector) Snapshot() Snapshot {
	snap := Snapshot{
		Requests: atomic.LoadUint64(&c.requests),
		Errors:   atomic.LoadUint64(&c.errors),
	}
	c.mu.Lock()
	for code, count := range c.errorCodes {
		snap.ErrorCodes = append(snap.ErrorCodes, CodeCount{Code: code, Count: count})
	}
	c.mu.Unlock()
	sort.Slice(snap.ErrorCodes, func(i, j int) bool { return snap.ErrorCodes[i].Code < snap.ErrorCodes[j].Code })
	return snap
}
