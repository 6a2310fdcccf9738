package components

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/mortgo/internal/domain"
	"github.com/rgehrsitz/mortgo/internal/tui/tuistyles"
)

const yAxisWidth = 10

// BalanceChart plots the remaining loan balance per year as an ASCII line chart
type BalanceChart struct {
	Title  string
	Points []float64
	Years  []int
	Width  int
	Height int
}

// NewBalanceChart builds a chart from the yearly balance series
func NewBalanceChart(title string, balances []domain.YearBalance) *BalanceChart {
	c := &BalanceChart{Title: title, Width: 60, Height: 12}
	for _, yb := range balances {
		c.Points = append(c.Points, yb.Balance.InexactFloat64())
		c.Years = append(c.Years, yb.Year)
	}
	return c
}

// WithSize sets the chart dimensions
func (c *BalanceChart) WithSize(width, height int) *BalanceChart {
	c.Width = width
	c.Height = height
	return c
}

// Render returns the styled chart
func (c *BalanceChart) Render() string {
	if len(c.Points) == 0 {
		return tuistyles.InfoStyle.Render("No balance data to display")
	}

	var content strings.Builder
	if c.Title != "" {
		content.WriteString(tuistyles.SectionStyle.Render(c.Title))
		content.WriteString("\n\n")
	}
	content.WriteString(c.renderGrid())
	return content.String()
}

func (c *BalanceChart) bounds() (float64, float64) {
	minVal, maxVal := math.Inf(1), math.Inf(-1)
	for _, p := range c.Points {
		minVal = math.Min(minVal, p)
		maxVal = math.Max(maxVal, p)
	}
	// balances bottom out at zero; keep the axis anchored there
	if minVal > 0 {
		minVal = 0
	}
	if maxVal == minVal {
		maxVal = minVal + 1
	}
	return minVal, maxVal
}

func (c *BalanceChart) renderGrid() string {
	chartWidth := c.Width - yAxisWidth
	if chartWidth < 2 {
		chartWidth = 2
	}
	height := c.Height
	if height < 2 {
		height = 2
	}
	minVal, maxVal := c.bounds()

	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", chartWidth))
	}

	toCell := func(i int, v float64) (int, int) {
		x := 0
		if len(c.Points) > 1 {
			x = int(float64(i) / float64(len(c.Points)-1) * float64(chartWidth-1))
		}
		y := height - 1 - int((v-minVal)/(maxVal-minVal)*float64(height-1))
		return x, y
	}

	for i, v := range c.Points {
		x, y := toCell(i, v)
		if i > 0 {
			px, py := toCell(i-1, c.Points[i-1])
			drawLine(grid, px, py, x, y, '·')
		}
		grid[y][x] = '●'
	}

	lineStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorChartLine)
	axisStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).Width(yAxisWidth).Align(lipgloss.Right)

	var out strings.Builder
	for i, row := range grid {
		yValue := maxVal - float64(i)/float64(height-1)*(maxVal-minVal)
		out.WriteString(axisStyle.Render(formatChartValue(yValue)))
		out.WriteString(" │ ")
		out.WriteString(lineStyle.Render(string(row)))
		out.WriteString("\n")
	}
	out.WriteString(strings.Repeat(" ", yAxisWidth))
	out.WriteString(" └")
	out.WriteString(strings.Repeat("─", chartWidth))
	out.WriteString("\n")
	out.WriteString(c.renderYearLabels(chartWidth))
	return out.String()
}

// renderYearLabels labels the first, middle and last years
func (c *BalanceChart) renderYearLabels(chartWidth int) string {
	if len(c.Years) == 0 {
		return ""
	}
	line := []rune(strings.Repeat(" ", chartWidth+3))
	place := func(idx int) {
		label := "Y" + strconv.Itoa(c.Years[idx])
		x := 3
		if len(c.Years) > 1 {
			x += int(float64(idx) / float64(len(c.Years)-1) * float64(chartWidth-1))
		}
		if x+len(label) > len(line) {
			x = len(line) - len(label)
		}
		copy(line[x:], []rune(label))
	}
	place(0)
	if len(c.Years) > 2 {
		place(len(c.Years) / 2)
	}
	if len(c.Years) > 1 {
		place(len(c.Years) - 1)
	}
	return strings.Repeat(" ", yAxisWidth) + lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).Render(string(line))
}

// drawLine connects two cells using Bresenham's algorithm without overwriting plotted points
func drawLine(grid [][]rune, x0, y0, x1, y1 int, char rune) {
	dx, dy := abs(x1-x0), abs(y1-y0)
	sx, sy := -1, -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	x, y := x0, y0
	for {
		if y >= 0 && y < len(grid) && x >= 0 && x < len(grid[y]) && grid[y][x] == ' ' {
			grid[y][x] = char
		}
		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// formatChartValue formats a value for display on Y-axis
func formatChartValue(value float64) string {
	switch {
	case math.Abs(value) >= 1000000:
		return fmt.Sprintf("$%.1fM", value/1000000)
	case math.Abs(value) >= 1000:
		return fmt.Sprintf("$%.0fK", value/1000)
	default:
		return fmt.Sprintf("$%.0f", value)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
