package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// ColorProvider supplies the escape codes used when printing errors.
// A nil ColorProvider prints without colours.
type ColorProvider interface {
	Yellow() string
	Red() string
	Reset() string
}

// HandleRunError prints a user-facing description of err and returns the
// matching exit code. duration is the time spent before the failure.
func HandleRunError(err error, duration time.Duration, out io.Writer, colors ColorProvider) int {
	if err == nil {
		return ExitSuccess
	}
	yellow, red, reset := "", "", ""
	if colors != nil {
		yellow, red, reset = colors.Yellow(), colors.Red(), colors.Reset()
	}

	msgDuration := ""
	if duration > 0 {
		msgDuration = fmt.Sprintf(" after %s%s%s", yellow, duration.Round(time.Millisecond), reset)
	}

	var sinkErr SinkError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		fmt.Fprintf(out, "%sStatus: Failure (Timeout). The run exceeded its deadline%s.%s\n", red, msgDuration, reset)
	case errors.Is(err, context.Canceled):
		fmt.Fprintf(out, "%sStatus: Canceled%s.%s\n", yellow, msgDuration, reset)
	case errors.As(err, &sinkErr):
		fmt.Fprintf(out, "%sStatus: Failure. Output %s could not be written: %v%s\n", red, sinkErr.Path, sinkErr.Cause, reset)
	default:
		fmt.Fprintf(out, "%sStatus: Failure. Unexpected error: %v%s\n", red, err, reset)
	}
	return ExitCodeFor(err)
}
