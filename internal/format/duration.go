package format

import (
	"fmt"
	"time"
)

// FormatExecutionDuration formats a run duration for display. Short runs
// keep sub-second precision; runs of a minute or more, typical for
// multi-billion ranges, are rounded to the second.
func FormatExecutionDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return d.Round(time.Millisecond).String()
	default:
		return d.Round(time.Second).String()
	}
}
