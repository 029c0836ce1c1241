package observability

import (
	"sync"
	"time"
)

type requestKey struct {
	path   string
	method string
	status int
}

type errorKey struct {
	path   string
	method string
	code   string
}

// Metrics keeps in-process counters for the HTTP surface: request totals
// and accumulated latency per route/status, error totals per route/code.
// No exporter is attached; tests and diagnostics read the accessors.
type Metrics struct {
	mu       sync.Mutex
	requests map[requestKey]int64
	latency  map[requestKey]time.Duration
	errors   map[errorKey]int64
}

// NewMetrics initializes metrics storage.
func NewMetrics() *Metrics {
	return &Metrics{
		requests: make(map[requestKey]int64),
		latency:  make(map[requestKey]time.Duration),
		errors:   make(map[errorKey]int64),
	}
}

// RecordRequest counts a finished request and accumulates its latency.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	key := requestKey{path: path, method: method, status: status}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests[key]++
	m.latency[key] += duration
}

// RecordError counts a request that failed with the given error code.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	key := errorKey{path: path, method: method, code: code}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors[key]++
}

// RequestCount returns how many requests finished on a route with a status.
func (m *Metrics) RequestCount(path, method string, status int) int64 {
	if m == nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.requests[requestKey{path: path, method: method, status: status}]
}

// TotalLatency returns the accumulated latency for a route and status.
func (m *Metrics) TotalLatency(path, method string, status int) time.Duration {
	if m == nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.latency[requestKey{path: path, method: method, status: status}]
}

// ErrorCount returns how many requests failed on a route with an error code.
func (m *Metrics) ErrorCount(path, method, code string) int64 {
	if m == nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.errors[errorKey{path: path, method: method, code: code}]
}
