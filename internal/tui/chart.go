package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"

	"github.com/agbru/a079777/internal/format"
)

const defaultHistory = 60

// ChartModel shows the overall progress bar, the ETA and a braille chart of
// the throughput history.
type ChartModel struct {
	bar             progress.Model
	averageProgress float64
	eta             time.Duration
	lastIndex       uint64
	lastSample      time.Time
	rateHistory     *series
	zeroHistory     *series
	lastZeros       uint64
	done            bool
	elapsed         time.Duration
	now             func() time.Time
	width           int
	height          int
}

// NewChartModel creates an empty chart.
func NewChartModel() ChartModel {
	return ChartModel{
		bar:         progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		rateHistory: newSeries(defaultHistory),
		zeroHistory: newSeries(defaultHistory),
		now:         time.Now,
	}
}

// SetSize updates the dimensions and resizes the history to the chart width.
func (c *ChartModel) SetSize(w, h int) {
	c.width = w
	c.height = h
	inner := max(w-4, 1)
	c.bar.Width = inner
	c.rateHistory.setLimit(inner * 2)
	c.zeroHistory.setLimit(inner)
}

// SetProgress updates the aggregated progress and ETA.
func (c *ChartModel) SetProgress(avg float64, eta time.Duration) {
	c.averageProgress = avg
	c.eta = eta
}

// AddSample records the position of the primary run. The throughput sample
// is derived from the index delta since the previous sample.
func (c *ChartModel) AddSample(index, zeros uint64) {
	now := c.now()
	if !c.lastSample.IsZero() && index > c.lastIndex {
		if dt := now.Sub(c.lastSample).Seconds(); dt > 0 {
			c.rateHistory.add(float64(index-c.lastIndex) / dt)
		}
	}
	if zeros >= c.lastZeros {
		c.zeroHistory.add(float64(zeros - c.lastZeros))
	}
	c.lastIndex = index
	c.lastZeros = zeros
	c.lastSample = now
}

// SetDone freezes the chart with the final elapsed time.
func (c *ChartModel) SetDone(elapsed time.Duration) {
	c.done = true
	c.elapsed = elapsed
	c.averageProgress = 1
	c.eta = 0
}

// Reset clears all samples.
func (c *ChartModel) Reset() {
	c.averageProgress = 0
	c.eta = 0
	c.lastIndex = 0
	c.lastZeros = 0
	c.lastSample = time.Time{}
	c.rateHistory.clear()
	c.zeroHistory.clear()
	c.done = false
	c.elapsed = 0
}

// View renders the chart panel.
func (c ChartModel) View() string {
	var b strings.Builder
	b.WriteString(metricLabelStyle.Render(" Progress Chart"))
	b.WriteString("\n ")
	b.WriteString(c.bar.ViewAs(c.averageProgress))

	status := fmt.Sprintf("%.1f%%  ETA: %s", c.averageProgress*100, format.FormatETA(c.eta))
	if c.done {
		status = fmt.Sprintf("%.1f%%  Total: %s", c.averageProgress*100, format.FormatExecutionDuration(c.elapsed))
	}
	b.WriteString("\n ")
	b.WriteString(metricValueStyle.Render(status))

	rows := c.height - 6
	if rows > 0 {
		rates := c.rateHistory.values()
		b.WriteString("\n ")
		b.WriteString(metricLabelStyle.Render("throughput " + format.FormatThroughputRate(c.rateHistory.last())))
		for _, line := range throughputChart(fractions(rates), max(c.width-4, 1), rows-1) {
			b.WriteString("\n ")
			b.WriteString(chartBarStyle.Render(line))
		}
	}
	if zeros := c.zeroHistory.values(); len(zeros) > 0 {
		b.WriteString("\n ")
		b.WriteString(metricLabelStyle.Render("zeros "))
		b.WriteString(zeroSparklineStyle.Render(zeroDensity(zeros)))
	}

	return panelStyle.
		Width(max(c.width-2, 0)).
		Height(max(c.height-2, 0)).
		Render(b.String())
}
