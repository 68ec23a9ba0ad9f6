package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/a079777/internal/format"
	"github.com/agbru/a079777/internal/metrics"
	"github.com/agbru/a079777/internal/sysmon"
)

// MetricsModel displays runtime memory and scan throughput.
type MetricsModel struct {
	mem          metrics.MemorySnapshot
	numGoroutine int
	system       sysmon.Stats
	indicators   *metrics.Indicators
	total        uint64
	lastZero     uint64
	width        int
	height       int
}

// NewMetricsModel creates a metrics panel for a range of total indices.
func NewMetricsModel(total uint64) MetricsModel {
	return MetricsModel{total: total}
}

// SetSize updates dimensions.
func (m *MetricsModel) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// UpdateMemStats updates memory statistics.
func (m *MetricsModel) UpdateMemStats(msg MemStatsMsg) {
	m.mem = msg.Snapshot
	m.numGoroutine = msg.NumGoroutine
	m.system = msg.System
}

// UpdateIndicators stores live or final indicators.
func (m *MetricsModel) UpdateIndicators(ind *metrics.Indicators) {
	m.indicators = ind
}

// SetLastZero records the last zero index of the finished run.
func (m *MetricsModel) SetLastZero(n uint64) {
	m.lastZero = n
}

// View renders the metrics panel.
func (m MetricsModel) View() string {
	var rows strings.Builder

	heapStr := metricValueStyle.Render(format.FormatBytes(m.mem.HeapAlloc) + " / " + format.FormatBytes(m.mem.HeapSys))
	gcStr := metricValueStyle.Render(fmt.Sprintf("%d (%.1fms)", m.mem.NumGC, float64(m.mem.PauseTotalNs)/1e6))
	pipe := metricLabelStyle.Render(" | ")
	rows.WriteString(fmt.Sprintf("  %s %s%s%s %s",
		metricLabelStyle.Render("Heap:"), heapStr,
		pipe,
		metricLabelStyle.Render("GC:"), gcStr))

	colWidth := (m.width - 6) / 2

	hostMem := fmt.Sprintf("%.0f%%", m.system.MemPercent)
	if m.system.MemTotal > 0 {
		hostMem += " of " + format.FormatBytes(m.system.MemTotal)
	}
	leftCol := []string{
		formatMetricCol("Goroutines:", fmt.Sprintf("%d", m.numGoroutine), colWidth),
		formatMetricCol("Host CPU:", fmt.Sprintf("%.0f%%", m.system.CPUPercent), colWidth),
	}
	rightCol := []string{
		formatMetricCol("Indices:", format.FormatCount(m.total), colWidth),
		formatMetricCol("Host mem:", hostMem, colWidth),
	}

	if ind := m.indicators; ind != nil {
		remaining := "-"
		if r := ind.Remaining(m.total); r > 0 {
			remaining = format.FormatETA(r)
		}
		lastZero := "-"
		if m.lastZero > 0 {
			lastZero = format.FormatCount(m.lastZero)
		}
		leftCol = append(leftCol,
			formatMetricCol("Speed:", format.FormatThroughputRate(ind.IndicesPerSecond), colWidth),
			formatMetricCol("Zeros:", format.FormatCount(ind.Zeros), colWidth),
		)
		rightCol = append(rightCol,
			formatMetricCol("Remaining:", remaining, colWidth),
			formatMetricCol("Per 1e9:", fmt.Sprintf("%.2f", ind.ZerosPerBillion), colWidth),
		)
		if m.lastZero > 0 {
			leftCol = append(leftCol, formatMetricCol("Last zero:", lastZero, colWidth))
			rightCol = append(rightCol, "")
		}
	}

	for i := range leftCol {
		rows.WriteString("\n")
		rows.WriteString(leftCol[i])
		rows.WriteString(rightCol[i])
	}

	return panelStyle.
		Width(max(m.width-2, 0)).
		Height(max(m.height-2, 0)).
		Render(rows.String())
}

func formatMetricCol(label, value string, colWidth int) string {
	cell := fmt.Sprintf(" %s %s",
		metricLabelStyle.Render(fmt.Sprintf("%-11s", label)),
		metricValueStyle.Render(value))
	// Pad to fixed column width using lipgloss-aware width
	visible := lipgloss.Width(cell)
	if visible < colWidth {
		cell += strings.Repeat(" ", colWidth-visible)
	}
	return cell
}
