package seqlog

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	apperrors "github.com/agbru/a079777/internal/errors"
	"github.com/agbru/a079777/internal/sequence"
)

func TestLogs_DriverRun(t *testing.T) {
	t.Parallel()
	var seqBuf, zeroBuf bytes.Buffer
	seq, err := NewSequenceLog(&seqBuf, "seq")
	if err != nil {
		t.Fatal(err)
	}
	zeros, err := NewZeroLog(&zeroBuf, "zeros")
	if err != nil {
		t.Fatal(err)
	}

	d := sequence.NewDriver(sequence.FastEngine{}, zeros, seq, sequence.Options{ChunkSize: 10, CheckpointEvery: 1})
	if _, err := d.Run(context.Background(), sequence.Range{From: 2, To: 20}, sequence.Seeds{Prev2: 0, Prev1: 1}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if err := errors.Join(seq.Close(), zeros.Close()); err != nil {
		t.Fatalf("Close: %v", err)
	}

	wantSeq := "A079777 Sequence Values:\n" +
		"\n-- At n = 10 --\n-\ta(n-1) = 0\n-\ta(n) = 6\n" +
		"\n-- At n = 20 --\n-\ta(n-1) = 11\n-\ta(n) = 7\n" +
		"\n-- DONE --\n\nThe last two values are:\n- a(19) = 11\n- a(20) = 7\n"
	if got := seqBuf.String(); got != wantSeq {
		t.Errorf("sequence log mismatch\n got: %q\nwant: %q", got, wantSeq)
	}

	wantZeros := "Zero Values Found:\n\n1:\t0\n2:\t5\n3:\t9\n4:\t12\n"
	if got := zeroBuf.String(); got != wantZeros {
		t.Errorf("zero log mismatch\n got: %q\nwant: %q", got, wantZeros)
	}
}

func TestSequenceLog_BillionLabel(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	seq, _ := NewSequenceLog(&buf, "seq")
	cp := sequence.Checkpoint{Chunk: 50, Index: 50_000_000_000, State: sequence.State{A: 3, B: 4}}
	if err := seq.WriteCheckpoint(cp); err != nil {
		t.Fatal(err)
	}
	want := "A079777 Sequence Values:\n\n-- At n = 50 billion --\n-\ta(n-1) = 4\n-\ta(n) = 3\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestZeroLog_BufferedUntilFlush(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	zeros, _ := NewZeroLog(&buf, "zeros")
	if err := zeros.WriteZero(1, 5); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("nothing should reach the writer before Flush, got %q", buf.String())
	}
	if err := zeros.Flush(); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "Zero Values Found:\n\n1:\t5\n" {
		t.Errorf("unexpected content %q", buf.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestLog_WriteErrorIsSticky(t *testing.T) {
	t.Parallel()
	zeros, _ := NewZeroLog(failingWriter{}, "zeros.txt")

	err := zeros.Flush()
	var sinkErr apperrors.SinkError
	if !errors.As(err, &sinkErr) {
		t.Fatalf("expected SinkError, got %v", err)
	}
	if sinkErr.Path != "zeros.txt" || sinkErr.Op != "flush" {
		t.Errorf("SinkError = %+v", sinkErr)
	}
	if err2 := zeros.WriteZero(1, 2); err2 != err {
		t.Errorf("later writes should return the first error, got %v", err2)
	}
	if apperrors.ExitCodeFor(err) != apperrors.ExitErrorSink {
		t.Errorf("exit code = %d, want %d", apperrors.ExitCodeFor(err), apperrors.ExitErrorSink)
	}
}

func TestCreate(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	seqPath := filepath.Join(dir, "out", "sequence_fast.txt")
	zeroPath := filepath.Join(dir, "out", "zeros_fast.txt")

	seq, zeros, err := Create(seqPath, zeroPath)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Headers are flushed immediately.
	data, err := os.ReadFile(zeroPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != zeroHeader {
		t.Errorf("zero log = %q, want header only", data)
	}

	if err := zeros.WriteZero(1, 12); err != nil {
		t.Fatal(err)
	}
	if err := seq.WriteFinal(sequence.Range{From: 2, To: 20}, sequence.State{A: 7, B: 11}); err != nil {
		t.Fatal(err)
	}
	if err := errors.Join(seq.Close(), zeros.Close()); err != nil {
		t.Fatal(err)
	}
	if err := seq.Close(); err != nil {
		t.Errorf("second Close should be a no-op, got %v", err)
	}

	data, _ = os.ReadFile(zeroPath)
	if string(data) != zeroHeader+"1:\t12\n" {
		t.Errorf("zero log = %q", data)
	}
	data, _ = os.ReadFile(seqPath)
	if !bytes.HasSuffix(data, []byte("- a(19) = 11\n- a(20) = 7\n")) {
		t.Errorf("sequence log = %q", data)
	}
}

func TestCreate_Failure(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	_, _, err := Create(filepath.Join(dir, "ok.txt"), filepath.Join(blocker, "zeros.txt"))
	var sinkErr apperrors.SinkError
	if !errors.As(err, &sinkErr) {
		t.Fatalf("expected SinkError, got %v", err)
	}
	if sinkErr.Op != "mkdir" {
		t.Errorf("Op = %q, want mkdir", sinkErr.Op)
	}
}
