package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/chaoscope/internal/motion"
)

// Stroke is a polyline with a stroke color, the unit of SVG output.
type Stroke struct {
	Color  string
	Points []motion.Point2
}

// StrokesToSVG renders polylines into a single dark-background SVG sized per
// the options, fitting all strokes into a shared coordinate frame with 10%
// padding. Strokes with fewer than two points are skipped.
func StrokesToSVG(strokes []Stroke, opts Options) string {
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	drawable := 0
	for _, s := range strokes {
		if len(s.Points) < 2 {
			continue
		}
		drawable++
		for _, p := range s.Points {
			if p.X < minX {
				minX = p.X
			}
			if p.X > maxX {
				maxX = p.X
			}
			if p.Y < minY {
				minY = p.Y
			}
			if p.Y > maxY {
				maxY = p.Y
			}
		}
	}
	if drawable == 0 {
		return ""
	}

	rangeX, rangeY := maxX-minX, maxY-minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	minY -= rangeY * 0.1
	rangeX *= 1.2
	rangeY *= 1.2

	w, h := opts.PixelWidth, opts.PixelHeight
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, w, h, w, h))

	for _, s := range strokes {
		if len(s.Points) < 2 {
			continue
		}
		color := s.Color
		if color == "" {
			color = "#00ff00"
		}
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, color))
		for i, p := range s.Points {
			x := (p.X - minX) / rangeX * float64(w)
			y := float64(h) - (p.Y-minY)/rangeY*float64(h)
			if i == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}
		sb.WriteString("\"/>\n")
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// CanvasToSVG converts a braille canvas to SVG dots, one circle per lit
// sub-pixel.
func CanvasToSVG(c *Canvas, scale float64) string {
	if c == nil {
		return ""
	}
	width := float64(c.Width) * scale * 2
	height := float64(c.Height) * scale * 4

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g fill="#00ff00">
`, width, height, width, height))

	r := scale * 0.4
	for row := 0; row < c.Height; row++ {
		for col := 0; col < c.Width; col++ {
			pattern := c.Grid[row][col]
			if pattern <= 0x2800 {
				continue
			}
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if (pattern-0x2800)&dotBits[dy][dx] != 0 {
						cx := float64(col)*scale*2 + float64(dx)*scale + scale/2
						cy := float64(row)*scale*4 + float64(dy)*scale + scale/2
						sb.WriteString(fmt.Sprintf("<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\"/>\n", cx, cy, r))
					}
				}
			}
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}
