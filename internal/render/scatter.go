package render

import (
	"math"
	"strings"

	"github.com/san-kum/chaoscope/internal/motion"
)

// Scatter plots the points on a w-by-h character grid. Non-finite
// coordinates are skipped; the result is empty when nothing plottable
// remains.
func Scatter(pts []motion.Point2, w, h int) string {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	plotted := 0
	for _, p := range pts {
		if !finite(p.X) || !finite(p.Y) {
			continue
		}
		plotted++
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	if plotted == 0 {
		return ""
	}
	spanX, spanY := maxX-minX, maxY-minY
	if spanX == 0 {
		spanX = 1
	}
	if spanY == 0 {
		spanY = 1
	}

	grid := make([][]rune, h)
	for i := range grid {
		grid[i] = make([]rune, w)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}
	for _, p := range pts {
		if !finite(p.X) || !finite(p.Y) {
			continue
		}
		col := int((p.X - minX) / spanX * float64(w-1))
		row := int((1 - (p.Y-minY)/spanY) * float64(h-1))
		grid[row][col] = '·'
	}

	var b strings.Builder
	for i, row := range grid {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(row))
	}
	return b.String()
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
