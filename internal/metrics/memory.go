package metrics

import (
	"runtime"
	"sync"

	"github.com/agbru/a079777/internal/sequence"
)

// MemorySnapshot holds a point-in-time memory reading.
type MemorySnapshot struct {
	HeapAlloc    uint64 // bytes in use by application
	HeapSys      uint64 // bytes obtained from OS for heap
	Sys          uint64 // total bytes obtained from OS
	TotalAlloc   uint64 // cumulative bytes allocated
	NumGC        uint32 // number of completed GC cycles
	PauseTotalNs uint64 // cumulative GC pause time
	HeapObjects  uint64 // number of allocated heap objects
}

// MemoryCollector reads runtime memory statistics.
type MemoryCollector struct{}

// NewMemoryCollector creates a new memory collector.
func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{}
}

// Snapshot reads current memory statistics.
func (mc *MemoryCollector) Snapshot() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAlloc:    m.HeapAlloc,
		HeapSys:      m.HeapSys,
		Sys:          m.Sys,
		TotalAlloc:   m.TotalAlloc,
		NumGC:        m.NumGC,
		PauseTotalNs: m.PauseTotalNs,
		HeapObjects:  m.HeapObjects,
	}
}

// PeakSampler samples memory at every chunk boundary and keeps the highest
// heap reading. ReadMemStats stops the world, so sampling only happens
// between chunks, never inside the hot loop.
type PeakSampler struct {
	mc   *MemoryCollector
	mu   sync.Mutex
	peak MemorySnapshot
	last MemorySnapshot
}

// NewPeakSampler creates a sampler primed with a first snapshot.
func NewPeakSampler() *PeakSampler {
	mc := NewMemoryCollector()
	snap := mc.Snapshot()
	return &PeakSampler{mc: mc, peak: snap, last: snap}
}

// Update implements progress.ProgressObserver.
func (p *PeakSampler) Update(_ int, _ sequence.ChunkStats) {
	p.Sample()
}

// Sample takes a snapshot now and returns it.
func (p *PeakSampler) Sample() MemorySnapshot {
	snap := p.mc.Snapshot()
	p.mu.Lock()
	defer p.mu.Unlock()
	p.last = snap
	if snap.HeapAlloc > p.peak.HeapAlloc {
		p.peak = snap
	}
	return snap
}

// Peak returns the snapshot with the highest heap usage seen so far.
func (p *PeakSampler) Peak() MemorySnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.peak
}

// Last returns the most recent snapshot.
func (p *PeakSampler) Last() MemorySnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.last
}
