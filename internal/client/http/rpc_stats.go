package http

import (
	"sort"
	"sync"
	"time"

	"github.com/cyphera/marketplace-api/internal/logger"

	"go.uber.org/zap"
)

// RPCMethodStats are the accumulated counters for one JSON-RPC method.
type RPCMethodStats struct {
	Count         int64
	Errors        int64
	TotalDuration time.Duration
}

// RPCStats is a MetricsCollector that keeps per-method counters in memory
// and reports them through the logger.
type RPCStats struct {
	mu      sync.Mutex
	methods map[string]*RPCMethodStats
}

func NewRPCStats() *RPCStats {
	return &RPCStats{methods: make(map[string]*RPCMethodStats)}
}

func (s *RPCStats) entry(rpcMethod string) *RPCMethodStats {
	if rpcMethod == "" {
		rpcMethod = "unknown"
	}
	e, ok := s.methods[rpcMethod]
	if !ok {
		e = &RPCMethodStats{}
		s.methods[rpcMethod] = e
	}
	return e
}

func (s *RPCStats) RecordRequestDuration(method, rpcMethod string, statusCode int, duration time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entry(rpcMethod).TotalDuration += duration
}

func (s *RPCStats) RecordRequestCount(method, rpcMethod string, statusCode int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entry(rpcMethod).Count++
}

func (s *RPCStats) RecordRequestError(method, rpcMethod string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entry(rpcMethod).Errors++
}

// Snapshot returns a copy of the counters keyed by RPC method.
func (s *RPCStats) Snapshot() map[string]RPCMethodStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]RPCMethodStats, len(s.methods))
	for name, e := range s.methods {
		out[name] = *e
	}
	return out
}

// LogSummary writes one log line per RPC method seen so far.
func (s *RPCStats) LogSummary() {
	snapshot := s.Snapshot()
	names := make([]string, 0, len(snapshot))
	for name := range snapshot {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		st := snapshot[name]
		var avg time.Duration
		if st.Count > 0 {
			avg = st.TotalDuration / time.Duration(st.Count)
		}
		logger.Info("RPC usage",
			zap.String("rpc_method", name),
			zap.Int64("count", st.Count),
			zap.Int64("errors", st.Errors),
			zap.Duration("avg_duration", avg))
	}
}
