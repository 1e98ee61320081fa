package observability

import (
	"strconv"
	"sync"
	"time"
)

// Metrics keeps in-process request and error counters plus cumulative
// latency per route. Counters are keyed by path|method|status so the
// breakdown survives without a metrics backend.
type Metrics struct {
	mu        sync.Mutex
	requests  map[string]int64
	errors    map[string]int64
	latencies map[string]time.Duration
}

// NewMetrics initializes empty counters.
func NewMetrics() *Metrics {
	return &Metrics{
		requests:  make(map[string]int64),
		errors:    make(map[string]int64),
		latencies: make(map[string]time.Duration),
	}
}

// RecordRequest counts one completed request and accumulates its latency.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	key := path + "|" + method + "|" + strconv.Itoa(status)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests[key]++
	m.latencies[key] += duration
}

// RecordError counts one failed request by error code.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	key := path + "|" + method + "|" + code
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors[key]++
}

// RequestCount returns the counter for one path/method/status combination.
func (m *Metrics) RequestCount(path, method string, status int) int64 {
	if m == nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.requests[path+"|"+method+"|"+strconv.Itoa(status)]
}
