package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/a079777/internal/format"
	"github.com/agbru/a079777/internal/sequence"
)

// HeaderModel renders the top bar: title, version, range, elapsed time.
type HeaderModel struct {
	startTime time.Time
	endTime   time.Time
	version   string
	rng       sequence.Range
	width     int
}

// NewHeaderModel creates a new header.
func NewHeaderModel(version string, rng sequence.Range) HeaderModel {
	return HeaderModel{
		startTime: time.Now(),
		version:   version,
		rng:       rng,
	}
}

// SetDone freezes the elapsed timer at the current time.
func (h *HeaderModel) SetDone() {
	h.endTime = time.Now()
}

// Reset restarts the elapsed timer.
func (h *HeaderModel) Reset() {
	h.startTime = time.Now()
	h.endTime = time.Time{}
}

// SetWidth updates the available width.
func (h *HeaderModel) SetWidth(w int) {
	h.width = w
}

// Elapsed returns the time since the start, frozen once done.
func (h HeaderModel) Elapsed() time.Duration {
	if !h.endTime.IsZero() {
		return h.endTime.Sub(h.startTime)
	}
	return time.Since(h.startTime)
}

// View renders the header.
func (h HeaderModel) View() string {
	titleText := "A079777 Monitor"
	if h.version != "" && h.version != "dev" {
		titleText += " " + h.version
	}
	title := titleStyle.Render(titleText)
	pipe := versionStyle.Render(" | ")
	rng := versionStyle.Render(fmt.Sprintf("n ∈ [%s, %s]", format.FormatCount(h.rng.From), format.FormatCount(h.rng.To)))
	elapsed := elapsedStyle.Render("Elapsed: " + format.FormatExecutionDuration(h.Elapsed()))

	row := title + pipe + rng + pipe + elapsed
	gap := max(h.width-2-lipgloss.Width(row), 0)
	return headerStyle.Width(h.width).Render(row + spaces(gap))
}

// spaces returns a string of n space characters.
func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
