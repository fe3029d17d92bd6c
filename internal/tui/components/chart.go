package components

import (
	"fmt"
	"math"
	"strings"

	"valvelet/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Series is one plotted line in a LineChart.
type Series struct {
	Name     string
	Values   []float64
	Color    lipgloss.Color
	DeathIdx int // index of the first non-positive value, -1 if the series never dies
}

// Sparkline renders a unicode sparkline from values.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	lo := values[0]
	hi := values[0]
	for _, v := range values[1:] {
		if v > hi {
			hi = v
		}
		if v < lo {
			lo = v
		}
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	style := lipgloss.NewStyle().Foreground(color).Background(t.Surface)

	var buf strings.Builder
	buf.Grow(len(values) * 4) // UTF-8 block chars are up to 3 bytes
	for _, v := range values {
		idx := int((v - lo) / span * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		buf.WriteRune(blocks[idx])
	}

	return style.Render(buf.String())
}

// LineChart renders multiple series as colored line plots sharing one y-axis.
// Values may go negative; a dotted zero line is drawn when they do. A series
// death index is marked with a cyan ✗ at the column where it crosses zero.
func LineChart(series []Series, xLabels []string, width, height int) string {
	if len(series) == 0 {
		return ""
	}
	if width < 20 || height < 4 {
		var parts []string
		for _, s := range series {
			parts = append(parts, Sparkline(s.Values, s.Color))
		}
		return strings.Join(parts, "\n")
	}

	t := theme.Active

	maxV := 0.0
	minV := 0.0
	npts := 0
	for _, s := range series {
		if len(s.Values) > npts {
			npts = len(s.Values)
		}
		for _, v := range s.Values {
			if v > maxV {
				maxV = v
			}
			if v < minV {
				minV = v
			}
		}
	}
	if npts == 0 {
		return ""
	}

	tickStep := chartTickStep(maxV - minV)
	ceiling := math.Ceil(maxV/tickStep) * tickStep
	floor := math.Floor(minV/tickStep) * tickStep
	if ceiling == floor {
		ceiling = floor + tickStep
	}

	yLabelW := len(formatChartLabel(ceiling))
	if w := len(formatChartLabel(floor)); w > yLabelW {
		yLabelW = w
	}
	if yLabelW < 4 {
		yLabelW = 4
	}

	chartW := width - yLabelW - 1
	if chartW < 10 {
		chartW = 10
	}
	chartH := height

	// Sample each series down to one value per column.
	col := func(i, n int) int {
		if n <= 1 {
			return 0
		}
		return i * (chartW - 1) / (n - 1)
	}
	rowOf := func(v float64) int {
		frac := (v - floor) / (ceiling - floor)
		r := int(math.Round(frac * float64(chartH-1)))
		if r < 0 {
			r = 0
		}
		if r >= chartH {
			r = chartH - 1
		}
		return r
	}

	type cell struct {
		ch    rune
		color lipgloss.Color
	}
	grid := make([][]cell, chartH)
	for r := range grid {
		grid[r] = make([]cell, chartW)
	}

	// Dotted zero line when the range dips below zero.
	if floor < 0 {
		zr := rowOf(0)
		for x := 0; x < chartW; x++ {
			grid[zr][x] = cell{ch: '┈', color: t.TextDim}
		}
	}

	for _, s := range series {
		n := len(s.Values)
		prevRow := -1
		prevCol := -1
		for i, v := range s.Values {
			x := col(i, n)
			r := rowOf(v)
			grid[r][x] = cell{ch: '•', color: s.Color}
			// Fill vertical gaps between adjacent columns so the line reads as connected.
			if prevCol >= 0 && x != prevCol && prevRow >= 0 {
				lo, hi := prevRow, r
				if lo > hi {
					lo, hi = hi, lo
				}
				for rr := lo + 1; rr < hi; rr++ {
					if grid[rr][x].ch == 0 || grid[rr][x].ch == '┈' {
						grid[rr][x] = cell{ch: '·', color: s.Color}
					}
				}
			}
			prevRow, prevCol = r, x
		}
		if s.DeathIdx >= 0 && s.DeathIdx < n {
			x := col(s.DeathIdx, n)
			r := rowOf(s.Values[s.DeathIdx])
			grid[r][x] = cell{ch: '✗', color: t.Cyan}
		}
	}

	// Y-axis tick labels every few rows, always including top and bottom.
	rowsPerTick := chartH / 4
	if rowsPerTick < 1 {
		rowsPerTick = 1
	}
	tickLabels := make(map[int]string)
	for r := 0; r < chartH; r += rowsPerTick {
		v := floor + (ceiling-floor)*float64(r)/float64(chartH-1)
		tickLabels[r] = formatChartLabel(v)
	}
	tickLabels[chartH-1] = formatChartLabel(ceiling)

	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	bgStyle := lipgloss.NewStyle().Background(t.Surface)

	var b strings.Builder
	for r := chartH - 1; r >= 0; r-- {
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, tickLabels[r])))
		b.WriteString(axisStyle.Render("│"))

		x := 0
		for x < chartW {
			c := grid[r][x]
			if c.ch == 0 {
				start := x
				for x < chartW && grid[r][x].ch == 0 {
					x++
				}
				b.WriteString(bgStyle.Render(strings.Repeat(" ", x-start)))
				continue
			}
			style := lipgloss.NewStyle().Foreground(c.color).Background(t.Surface)
			b.WriteString(style.Render(string(c.ch)))
			x++
		}
		b.WriteString("\n")
	}

	// X-axis line.
	b.WriteString(bgStyle.Render(strings.Repeat(" ", yLabelW)))
	b.WriteString(axisStyle.Render("└"))
	b.WriteString(axisStyle.Render(strings.Repeat("─", chartW)))

	// X-axis labels.
	if len(xLabels) > 0 {
		buf := make([]byte, chartW)
		for i := range buf {
			buf[i] = ' '
		}

		minSpacing := 12
		step := 1
		if len(xLabels) > 1 {
			step = max(1, (len(xLabels)*minSpacing)/chartW)
		}

		lastEnd := -1
		for i := 0; i < len(xLabels); i += step {
			pos := col(i, len(xLabels))
			lbl := xLabels[i]
			end := pos + len(lbl)
			if pos <= lastEnd || end > chartW {
				continue
			}
			copy(buf[pos:end], lbl)
			lastEnd = end + 1
		}
		// Right-align the final label.
		if n := len(xLabels); n > 1 {
			lbl := xLabels[n-1]
			pos := chartW - len(lbl)
			if pos > lastEnd {
				copy(buf[pos:], lbl)
			}
		}

		b.WriteString("\n")
		labelStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
		b.WriteString(bgStyle.Render(strings.Repeat(" ", yLabelW+1)))
		b.WriteString(labelStyle.Render(strings.TrimRight(string(buf), " ")))
	}

	return b.String()
}

// ChartLegend renders one colored swatch + name per series.
func ChartLegend(series []Series) string {
	t := theme.Active
	nameStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	var parts []string
	for _, s := range series {
		sw := lipgloss.NewStyle().Foreground(s.Color).Background(t.Surface).Render("━━")
		parts = append(parts, sw+spaceStyle.Render(" ")+nameStyle.Render(s.Name))
	}
	return strings.Join(parts, spaceStyle.Render("   "))
}

// chartTickStep computes a nice tick interval targeting ~5 ticks.
func chartTickStep(span float64) float64 {
	if span <= 0 {
		return 1
	}
	rough := span / 5
	exp := math.Floor(math.Log10(rough))
	base := math.Pow(10, exp)
	frac := rough / base

	switch {
	case frac < 1.5:
		return base
	case frac < 3.5:
		return 2 * base
	default:
		return 5 * base
	}
}

func formatChartLabel(v float64) string {
	if v < 0 {
		return "-" + formatChartLabel(-v)
	}
	switch {
	case v >= 1e9:
		if v == math.Trunc(v/1e9)*1e9 {
			return fmt.Sprintf("%.0fB", v/1e9)
		}
		return fmt.Sprintf("%.1fB", v/1e9)
	case v >= 1e6:
		if v == math.Trunc(v/1e6)*1e6 {
			return fmt.Sprintf("%.0fM", v/1e6)
		}
		return fmt.Sprintf("%.1fM", v/1e6)
	case v >= 1e3:
		if v == math.Trunc(v/1e3)*1e3 {
			return fmt.Sprintf("%.0fk", v/1e3)
		}
		return fmt.Sprintf("%.1fk", v/1e3)
	case v >= 1:
		return fmt.Sprintf("%.0f", v)
	case v == 0:
		return "0"
	default:
		return fmt.Sprintf("%.2f", v)
	}
}
