package progress

import (
	"sync"
	"time"

	"github.com/agbru/a079777/internal/logging"
	"github.com/agbru/a079777/internal/sequence"
)

// ProgressUpdate is the message sent to progress displays.
type ProgressUpdate struct {
	// RunIndex identifies the engine run that produced the update.
	RunIndex int
	// Value is the completed fraction of the range, in [0, 1].
	Value float64
	// Index is the last index computed.
	Index uint64
	// Zeros is the number of zeros found so far, seeds included.
	Zeros uint64
	// Chunk is the chunk counter of the completed chunk.
	Chunk uint64
	// Checkpoint reports whether a checkpoint was written for this chunk.
	Checkpoint bool
}

// NewUpdate converts driver statistics into a ProgressUpdate.
func NewUpdate(runIndex int, stats sequence.ChunkStats) ProgressUpdate {
	return ProgressUpdate{
		RunIndex:   runIndex,
		Value:      stats.Fraction(),
		Index:      stats.To,
		Zeros:      stats.Zeros,
		Chunk:      stats.Chunk,
		Checkpoint: stats.Checkpointed,
	}
}

// ProgressCallback receives progress updates.
type ProgressCallback func(ProgressUpdate)

// ProgressObserver is notified after every chunk of a run.
type ProgressObserver interface {
	Update(runIndex int, stats sequence.ChunkStats)
}

// ObserverFunc adapts a function to ProgressObserver.
type ObserverFunc func(runIndex int, stats sequence.ChunkStats)

// Update calls f.
func (f ObserverFunc) Update(runIndex int, stats sequence.ChunkStats) { f(runIndex, stats) }

// ProgressSubject distributes chunk statistics to its observers. It is safe
// for concurrent use by several runs.
type ProgressSubject struct {
	mu        sync.RWMutex
	observers []ProgressObserver
}

// NewProgressSubject creates a subject with no observers.
func NewProgressSubject() *ProgressSubject {
	return &ProgressSubject{}
}

// Register adds an observer. Nil observers are ignored.
func (s *ProgressSubject) Register(o ProgressObserver) {
	if o == nil {
		return
	}
	s.mu.Lock()
	s.observers = append(s.observers, o)
	s.mu.Unlock()
}

// Unregister removes every registration of o. o must be of a comparable
// type; observers registered as ObserverFunc cannot be unregistered.
func (s *ProgressSubject) Unregister(o ProgressObserver) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.observers[:0]
	for _, existing := range s.observers {
		if existing != o {
			kept = append(kept, existing)
		}
	}
	s.observers = kept
}

// Notify forwards stats to every observer, in registration order.
func (s *ProgressSubject) Notify(runIndex int, stats sequence.ChunkStats) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.observers {
		o.Update(runIndex, stats)
	}
}

// ObserverCount returns the number of registered observers.
func (s *ProgressSubject) ObserverCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.observers)
}

// AsChunkCallback returns a driver OnChunk hook bound to runIndex.
func (s *ProgressSubject) AsChunkCallback(runIndex int) func(sequence.ChunkStats) {
	return func(stats sequence.ChunkStats) { s.Notify(runIndex, stats) }
}

// ChannelObserver sends updates to a channel. Intermediate updates are
// dropped when the channel is full; the update for the last chunk is always
// delivered.
type ChannelObserver struct {
	ch chan<- ProgressUpdate
}

// NewChannelObserver creates an observer writing to ch.
func NewChannelObserver(ch chan<- ProgressUpdate) *ChannelObserver {
	return &ChannelObserver{ch: ch}
}

// Update performs a non-blocking send.
func (o *ChannelObserver) Update(runIndex int, stats sequence.ChunkStats) {
	if o.ch == nil {
		return
	}
	update := NewUpdate(runIndex, stats)
	if stats.Processed == stats.Total {
		o.ch <- update
		return
	}
	select {
	case o.ch <- update:
	default:
	}
}

// LoggingObserver logs progress at most once per interval, plus every
// checkpoint and the final chunk.
type LoggingObserver struct {
	logger   logging.Logger
	interval time.Duration

	mu   sync.Mutex
	last time.Time
	now  func() time.Time
}

// NewLoggingObserver creates a throttled logging observer.
func NewLoggingObserver(logger logging.Logger, interval time.Duration) *LoggingObserver {
	return &LoggingObserver{logger: logger, interval: interval, now: time.Now}
}

// Update logs the chunk if the interval elapsed or the chunk is notable.
func (o *LoggingObserver) Update(runIndex int, stats sequence.ChunkStats) {
	o.mu.Lock()
	now := o.now()
	due := stats.Checkpointed || stats.Processed == stats.Total || now.Sub(o.last) >= o.interval
	if due {
		o.last = now
	}
	o.mu.Unlock()
	if !due {
		return
	}

	fields := []logging.Field{
		logging.Int("run", runIndex),
		logging.Uint64("chunk", stats.Chunk),
		logging.Uint64("index", stats.To),
		logging.Uint64("zeros", stats.Zeros),
		logging.Float64("progress", stats.Fraction()),
	}
	if stats.Checkpointed {
		o.logger.Info("checkpoint written", append(fields, logging.Uint64("a", stats.State.A), logging.Uint64("b", stats.State.B))...)
		return
	}
	o.logger.Debug("chunk completed", fields...)
}

// NoOpObserver ignores every update.
type NoOpObserver struct{}

// NewNoOpObserver returns a NoOpObserver.
func NewNoOpObserver() NoOpObserver { return NoOpObserver{} }

// Update does nothing.
func (NoOpObserver) Update(int, sequence.ChunkStats) {}

// RunLifecycle is implemented by observers that also want to know when a
// run starts and ends.
type RunLifecycle interface {
	RunStarted(runIndex int, engine string)
	RunFinished(runIndex int, engine string, err error)
}
