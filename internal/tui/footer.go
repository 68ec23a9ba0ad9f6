package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// FooterModel renders the status badge and the key help.
type FooterModel struct {
	help   help.Model
	keys   KeyMap
	paused bool
	done   bool
	failed bool
	width  int
}

// NewFooterModel creates a footer for the given bindings.
func NewFooterModel(keys KeyMap) FooterModel {
	h := help.New()
	h.Styles.ShortKey = footerKeyStyle
	h.Styles.ShortDesc = footerDescStyle
	h.Styles.ShortSeparator = footerDescStyle
	return FooterModel{help: h, keys: keys}
}

// SetWidth updates the available width.
func (f *FooterModel) SetWidth(w int) {
	f.width = w
	f.help.Width = w
}

// SetPaused toggles the paused badge.
func (f *FooterModel) SetPaused(p bool) { f.paused = p }

// SetDone toggles the done badge.
func (f *FooterModel) SetDone(d bool) { f.done = d }

// SetError toggles the error badge.
func (f *FooterModel) SetError(e bool) { f.failed = e }

// Status returns the badge text.
func (f FooterModel) Status() string {
	switch {
	case f.failed:
		return "ERROR"
	case f.done:
		return "DONE"
	case f.paused:
		return "PAUSED"
	default:
		return "RUNNING"
	}
}

// View renders the footer.
func (f FooterModel) View() string {
	var badge string
	switch status := f.Status(); status {
	case "ERROR":
		badge = statusErrorStyle.Render(status)
	case "DONE":
		badge = statusDoneStyle.Render(status)
	case "PAUSED":
		badge = statusPausedStyle.Render(status)
	default:
		badge = statusRunningStyle.Render(status)
	}
	row := " " + badge + "  " + f.help.ShortHelpView(f.keys.ShortHelp())
	gap := max(f.width-lipgloss.Width(row), 0)
	return row + spaces(gap)
}
