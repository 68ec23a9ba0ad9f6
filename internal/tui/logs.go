package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/a079777/internal/config"
	"github.com/agbru/a079777/internal/format"
	"github.com/agbru/a079777/internal/orchestration"
)

// maxLogEntries bounds the scrollback of the logs panel.
const maxLogEntries = 500

// LogsModel is the scrollable event log of the dashboard.
type LogsModel struct {
	viewport viewport.Model
	entries  []string
	engines  []string
	now      func() time.Time
	width    int
	height   int
}

// NewLogsModel creates a logs panel for the given engine names.
func NewLogsModel(engines []string) LogsModel {
	return LogsModel{
		viewport: viewport.New(0, 0),
		engines:  engines,
		now:      time.Now,
	}
}

// SetSize updates the panel dimensions. The viewport excludes the border.
func (l *LogsModel) SetSize(w, h int) {
	l.width = w
	l.height = h
	l.viewport.Width = max(w-2, 0)
	l.viewport.Height = max(h-2, 0)
	l.refresh()
}

// Reset clears the log.
func (l *LogsModel) Reset() {
	l.entries = nil
	l.refresh()
}

// Update forwards scroll keys to the viewport.
func (l *LogsModel) Update(msg tea.Msg) {
	l.viewport, _ = l.viewport.Update(msg)
}

// Len returns the number of entries.
func (l LogsModel) Len() int { return len(l.entries) }

// AddExecutionConfig logs the run parameters.
func (l *LogsModel) AddExecutionConfig(cfg config.AppConfig) {
	l.add(fmt.Sprintf("Range [%s, %s], seeds a(%d) = %d, a(%d) = %d",
		format.FormatCount(cfg.From), format.FormatCount(cfg.To),
		cfg.From-2, cfg.A0, cfg.From-1, cfg.A1))
	l.add(fmt.Sprintf("Chunks of %s, checkpoint every %d chunks",
		config.FormatIndex(cfg.ChunkSize), cfg.CheckpointEvery))
	l.add(fmt.Sprintf("Logs: %s, %s", cfg.SequenceFile, cfg.ZeroFile))
}

// AddProgressEntry logs checkpoints. Plain chunks only move the chart.
func (l *LogsModel) AddProgressEntry(msg ProgressMsg) {
	if !msg.Checkpoint {
		return
	}
	l.add(fmt.Sprintf("%s checkpoint at n = %s, %s zeros (%s)",
		logEngineStyle.Render(l.engineName(msg.RunIndex)),
		format.FormatCount(msg.Index),
		format.FormatCount(msg.Zeros),
		logProgressStyle.Render(fmt.Sprintf("%.1f%%", msg.Value*100))))
}

// AddResults logs the per-engine outcome of a cross-check.
func (l *LogsModel) AddResults(results []orchestration.RunResult) {
	for _, r := range results {
		if r.Err != nil {
			l.add(logErrorStyle.Render(fmt.Sprintf("%s failed: %v", r.Name, r.Err)))
			continue
		}
		l.add(logSuccessStyle.Render(fmt.Sprintf("%s finished in %s, %s zeros",
			r.Name, format.FormatExecutionDuration(r.Duration), format.FormatCount(r.Result.Zeros))))
	}
}

// AddFinalResult logs the summary of the presented run.
func (l *LogsModel) AddFinalResult(msg FinalResultMsg) {
	r := msg.Result.Result
	l.add(logSuccessStyle.Render(fmt.Sprintf("Done: %s zeros, last at n = %s",
		format.FormatCount(r.Zeros), format.FormatCount(r.LastZero))))
	l.add(fmt.Sprintf("a(%d) = %d, a(%d) = %d", r.Range.To-1, r.State.B, r.Range.To, r.State.A))
}

// AddError logs a failed run.
func (l *LogsModel) AddError(msg ErrorMsg) {
	l.add(logErrorStyle.Render(fmt.Sprintf("Error after %s: %v",
		format.FormatExecutionDuration(msg.Duration), msg.Err)))
}

func (l *LogsModel) engineName(idx int) string {
	if idx >= 0 && idx < len(l.engines) {
		return l.engines[idx]
	}
	return fmt.Sprintf("#%d", idx)
}

func (l *LogsModel) add(line string) {
	ts := logTimeStyle.Render(l.now().Format("15:04:05"))
	l.entries = append(l.entries, ts+" "+line)
	if len(l.entries) > maxLogEntries {
		l.entries = l.entries[len(l.entries)-maxLogEntries:]
	}
	l.refresh()
}

// refresh pushes the entries into the viewport, following the tail unless
// the user scrolled up.
func (l *LogsModel) refresh() {
	follow := l.viewport.AtBottom()
	l.viewport.SetContent(strings.Join(l.entries, "\n"))
	if follow {
		l.viewport.GotoBottom()
	}
}

// renderToHeight renders the panel at the given outer height.
func (l LogsModel) renderToHeight(h int) string {
	vp := l.viewport
	vp.Height = max(h-2, 0)
	return panelStyle.
		Width(max(l.width-2, 0)).
		Height(max(h-2, 0)).
		Render(vp.View())
}

// View renders the panel at its configured height.
func (l LogsModel) View() string {
	return l.renderToHeight(l.height)
}
