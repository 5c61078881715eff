package service

import (
	"sync/atomic"
	"time"
)

// Metrics tracks load-cycle counters for one Loader.
type Metrics struct {
	loads        atomic.Int64
	loadErrors   atomic.Int64
	joined       atomic.Int64
	mirrorErrors atomic.Int64
	loadLatency  atomic.Int64 // Total latency in nanoseconds
}

// MetricsSnapshot is a point-in-time copy of Metrics.
type MetricsSnapshot struct {
	Loads            int64   `json:"loads"`
	LoadErrors       int64   `json:"load_errors"`
	JoinedLoads      int64   `json:"joined_loads"`
	MirrorErrors     int64   `json:"mirror_errors"`
	AverageLatencyMs float64 `json:"average_latency_ms"`
}

func (m *Metrics) recordLoad(duration time.Duration, err error) {
	m.loads.Add(1)
	m.loadLatency.Add(duration.Nanoseconds())
	if err != nil {
		m.loadErrors.Add(1)
	}
}

func (m *Metrics) recordJoined() {
	m.joined.Add(1)
}

func (m *Metrics) recordMirrorError() {
	m.mirrorErrors.Add(1)
}

// Snapshot returns the current counters.
func (m *Metrics) Snapshot() MetricsSnapshot {
	s := MetricsSnapshot{
		Loads:        m.loads.Load(),
		LoadErrors:   m.loadErrors.Load(),
		JoinedLoads:  m.joined.Load(),
		MirrorErrors: m.mirrorErrors.Load(),
	}
	if s.Loads > 0 {
		s.AverageLatencyMs = float64(m.loadLatency.Load()) / float64(s.Loads) / 1e6
	}
	return s
}
