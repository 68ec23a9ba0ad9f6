package progress

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/agbru/a079777/internal/logging"
	"github.com/agbru/a079777/internal/sequence"
)

func stats(processed, total uint64) sequence.ChunkStats {
	return sequence.ChunkStats{Chunk: processed / 10, To: processed + 1, Processed: processed, Total: total, Zeros: 3}
}

func TestProgressSubject_Notify(t *testing.T) {
	t.Parallel()
	s := NewProgressSubject()
	var mu sync.Mutex
	var got []int
	o1 := ObserverFunc(func(run int, _ sequence.ChunkStats) { mu.Lock(); got = append(got, run); mu.Unlock() })
	counter := &countingObserver{}

	s.Register(o1)
	s.Register(counter)
	s.Register(nil)
	if s.ObserverCount() != 2 {
		t.Fatalf("ObserverCount() = %d, want 2", s.ObserverCount())
	}

	cb := s.AsChunkCallback(7)
	cb(stats(10, 100))
	s.Unregister(counter)
	cb(stats(20, 100))

	if len(got) != 2 || got[0] != 7 || got[1] != 7 {
		t.Errorf("function observer saw %v, want [7 7]", got)
	}
	if counter.n != 1 {
		t.Errorf("unregistered observer called %d times, want 1", counter.n)
	}
}

type countingObserver struct{ n int }

func (c *countingObserver) Update(int, sequence.ChunkStats) { c.n++ }

func TestChannelObserver(t *testing.T) {
	t.Parallel()
	ch := make(chan ProgressUpdate, 1)
	o := NewChannelObserver(ch)

	o.Update(0, stats(10, 100))
	o.Update(0, stats(20, 100)) // dropped, channel full

	first := <-ch
	if first.Value != 0.1 || first.Zeros != 3 || first.Index != 11 {
		t.Errorf("unexpected update %+v", first)
	}
	select {
	case u := <-ch:
		t.Fatalf("expected dropped update, got %+v", u)
	default:
	}

	done := make(chan struct{})
	go func() {
		o.Update(1, stats(100, 100))
		close(done)
	}()
	last := <-ch
	<-done
	if last.Value != 1 || last.RunIndex != 1 {
		t.Errorf("final update = %+v, want complete update for run 1", last)
	}
}

func TestChannelObserver_NilChannel(t *testing.T) {
	t.Parallel()
	NewChannelObserver(nil).Update(0, stats(100, 100))
}

func TestLoggingObserver_Throttles(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := logging.NewConsoleLogger(&buf, "progress", logging.LevelDebug, true)
	o := NewLoggingObserver(logger, time.Minute)
	clock := time.Unix(0, 0)
	o.now = func() time.Time { return clock }

	o.Update(0, stats(10, 100)) // first update is due: last is the zero time
	o.Update(0, stats(20, 100)) // throttled
	cp := stats(30, 100)
	cp.Checkpointed = true
	o.Update(0, cp)
	clock = clock.Add(2 * time.Minute)
	o.Update(0, stats(40, 100))

	out := buf.String()
	if n := strings.Count(out, "DBG chunk completed"); n != 2 {
		t.Errorf("got %d chunk lines, want 2:\n%s", n, out)
	}
	if !strings.Contains(out, "INF checkpoint written") {
		t.Errorf("checkpoint not logged:\n%s", out)
	}
}

func TestNoOpObserver(t *testing.T) {
	t.Parallel()
	var o ProgressObserver = NewNoOpObserver()
	o.Update(0, stats(1, 1))
}
