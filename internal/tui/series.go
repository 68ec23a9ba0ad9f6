package tui

import "math"

// series keeps the most recent samples of one chart line, oldest first.
// The chart holds two: indices per second and zeros per progress update.
type series struct {
	samples []float64
	limit   int
}

func newSeries(limit int) *series {
	return &series{limit: max(limit, 1)}
}

func (s *series) add(v float64) {
	s.samples = append(s.samples, v)
	s.trim()
}

// setLimit changes how many samples are kept. Shrinking drops the oldest.
func (s *series) setLimit(n int) {
	s.limit = max(n, 1)
	s.trim()
}

func (s *series) trim() {
	if over := len(s.samples) - s.limit; over > 0 {
		s.samples = append(s.samples[:0], s.samples[over:]...)
	}
}

func (s *series) len() int { return len(s.samples) }

// last returns the newest sample, or 0 when empty.
func (s *series) last() float64 {
	if len(s.samples) == 0 {
		return 0
	}
	return s.samples[len(s.samples)-1]
}

// values returns the samples in view. The slice is only valid until the
// next add.
func (s *series) values() []float64 { return s.samples }

func (s *series) clear() { s.samples = s.samples[:0] }

// fractions expresses each value as a share of the largest one. Rates and
// zero counts have no natural ceiling, so the chart is always relative to
// what is on screen.
func fractions(values []float64) []float64 {
	peak := 0.0
	for _, v := range values {
		peak = max(peak, v)
	}
	out := make([]float64, len(values))
	if peak <= 0 {
		return out
	}
	for i, v := range values {
		out[i] = max(v, 0) / peak
	}
	return out
}

var densityBlocks = []rune("▁▂▃▄▅▆▇█")

// noZeroMark stands for an update that produced no zero.
const noZeroMark = '·'

// zeroDensity renders zero counts as a one-line sparkline. Updates without
// zeros get a dot so that a quiet stretch of the sequence stands out from a
// sparse one.
func zeroDensity(counts []float64) string {
	if len(counts) == 0 {
		return ""
	}
	out := make([]rune, len(counts))
	for i, f := range fractions(counts) {
		if counts[i] <= 0 {
			out[i] = noZeroMark
			continue
		}
		level := int(math.Ceil(f*float64(len(densityBlocks)))) - 1
		out[i] = densityBlocks[min(max(level, 0), len(densityBlocks)-1)]
	}
	return string(out)
}

// brailleBit[r][c] is the dot for row r (top first) and column c of a
// braille cell.
var brailleBit = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

const brailleBlank = 0x2800

// throughputChart plots fractions (0..1) as one braille dot per sample on a
// grid of width cells by rows lines. Each cell holds 2x4 dots. The newest
// sample sits in the rightmost dot column and older ones fall off the left.
func throughputChart(fracs []float64, width, rows int) []string {
	if width <= 0 || rows <= 0 || len(fracs) == 0 {
		return nil
	}
	dotCols, dotRows := width*2, rows*4
	if len(fracs) > dotCols {
		fracs = fracs[len(fracs)-dotCols:]
	}
	offset := dotCols - len(fracs)

	cells := make([][]rune, rows)
	for r := range cells {
		cells[r] = make([]rune, width)
		for c := range cells[r] {
			cells[r][c] = brailleBlank
		}
	}
	for i, f := range fracs {
		height := int(math.Round(min(max(f, 0), 1) * float64(dotRows-1)))
		y := dotRows - 1 - height
		x := offset + i
		cells[y/4][x/2] |= brailleBit[y%4][x%2]
	}

	lines := make([]string, rows)
	for r, row := range cells {
		lines[r] = string(row)
	}
	return lines
}
