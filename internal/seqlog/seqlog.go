package seqlog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	apperrors "github.com/agbru/a079777/internal/errors"
	"github.com/agbru/a079777/internal/sequence"
)

const (
	sequenceHeader = "A079777 Sequence Values:\n"
	zeroHeader     = "Zero Values Found:\n\n"
	billion        = 1_000_000_000
)

// logFile is a buffered destination that remembers the first error.
type logFile struct {
	path   string
	closer io.Closer
	w      *bufio.Writer
	err    error
}

func newLogFile(path string, w io.Writer) *logFile {
	lf := &logFile{path: path, w: bufio.NewWriter(w)}
	if c, ok := w.(io.Closer); ok {
		lf.closer = c
	}
	return lf
}

func (l *logFile) printf(format string, args ...any) error {
	if l.err != nil {
		return l.err
	}
	if _, err := fmt.Fprintf(l.w, format, args...); err != nil {
		l.err = apperrors.SinkError{Path: l.path, Op: "write", Cause: err}
	}
	return l.err
}

// Flush writes any buffered data to the destination.
func (l *logFile) Flush() error {
	if l.err != nil {
		return l.err
	}
	if err := l.w.Flush(); err != nil {
		l.err = apperrors.SinkError{Path: l.path, Op: "flush", Cause: err}
	}
	return l.err
}

// Close flushes and closes the destination. It is safe to call twice.
func (l *logFile) Close() error {
	err := l.Flush()
	if l.closer != nil {
		if cerr := l.closer.Close(); cerr != nil && err == nil {
			err = apperrors.SinkError{Path: l.path, Op: "close", Cause: cerr}
		}
		l.closer = nil
	}
	return err
}

// Path returns the destination name used in error messages.
func (l *logFile) Path() string { return l.path }

// SequenceLog is a sequence.CheckpointSink writing the historical text
// format.
type SequenceLog struct {
	*logFile
}

// NewSequenceLog writes the header to w and returns the log. If w is an
// io.Closer it is closed by Close. path is only used in error messages.
func NewSequenceLog(w io.Writer, path string) (*SequenceLog, error) {
	l := &SequenceLog{newLogFile(path, w)}
	return l, l.printf(sequenceHeader)
}

// WriteCheckpoint appends a checkpoint block and flushes it. Checkpoints on
// the default one-billion grid are labelled in billions; other chunk sizes
// are labelled with the index itself.
func (l *SequenceLog) WriteCheckpoint(cp sequence.Checkpoint) error {
	label := fmt.Sprintf("%d", cp.Index)
	if cp.Index%billion == 0 && cp.Index/billion == cp.Chunk {
		label = fmt.Sprintf("%d billion", cp.Chunk)
	}
	if err := l.printf("\n-- At n = %s --\n-\ta(n-1) = %d\n-\ta(n) = %d\n", label, cp.State.B, cp.State.A); err != nil {
		return err
	}
	return l.Flush()
}

// WriteFinal appends the closing block with a(To-1) and a(To).
func (l *SequenceLog) WriteFinal(r sequence.Range, st sequence.State) error {
	if err := l.printf("\n-- DONE --\n\nThe last two values are:\n- a(%d) = %d\n- a(%d) = %d\n",
		r.To-1, st.B, r.To, st.A); err != nil {
		return err
	}
	return l.Flush()
}

// ZeroLog is a sequence.ZeroSink writing "<ordinal>:\t<index>" lines.
type ZeroLog struct {
	*logFile
}

// NewZeroLog writes the header to w and returns the log.
func NewZeroLog(w io.Writer, path string) (*ZeroLog, error) {
	l := &ZeroLog{newLogFile(path, w)}
	return l, l.printf(zeroHeader)
}

// WriteZero appends one zero record. Output is buffered until the next
// Flush.
func (l *ZeroLog) WriteZero(ordinal, index uint64) error {
	return l.printf("%d:\t%d\n", ordinal, index)
}

// Create truncates or creates both log files, creating parent directories
// as needed, and writes their headers. Any failure is a SinkError and no
// file handle is leaked.
func Create(seqPath, zeroPath string) (*SequenceLog, *ZeroLog, error) {
	seqFile, err := createFile(seqPath)
	if err != nil {
		return nil, nil, err
	}
	zeroFile, err := createFile(zeroPath)
	if err != nil {
		seqFile.Close()
		return nil, nil, err
	}

	seq, err1 := NewSequenceLog(seqFile, seqPath)
	zeros, err2 := NewZeroLog(zeroFile, zeroPath)
	if err := errors.Join(err1, err2); err != nil {
		seq.Close()
		zeros.Close()
		return nil, nil, err
	}
	// Headers are visible before the first chunk completes.
	if err := errors.Join(seq.Flush(), zeros.Flush()); err != nil {
		seq.Close()
		zeros.Close()
		return nil, nil, err
	}
	return seq, zeros, nil
}

func createFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, apperrors.SinkError{Path: path, Op: "mkdir", Cause: err}
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, apperrors.SinkError{Path: path, Op: "open", Cause: err}
	}
	return f, nil
}

var (
	_ sequence.CheckpointSink = (*SequenceLog)(nil)
	_ sequence.ZeroSink       = (*ZeroLog)(nil)
	_ sequence.Flusher        = (*SequenceLog)(nil)
	_ sequence.Flusher        = (*ZeroLog)(nil)
)
