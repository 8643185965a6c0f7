package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/san-kum/tensile/internal/tensile"
)

const (
	curveColor    = "#00ccff"
	offsetColor   = "#888899"
	yieldColor    = "#ffaa00"
	fractureColor = "#ff4444"
)

// bounds maps strain/stress coordinates onto an SVG viewport with 10% padding.
type bounds struct {
	minX, maxX, minY, maxY float64
	width, height          int
}

func newBounds(res *tensile.Result, width, height int) bounds {
	minX, maxX := res.Strain[0], res.Strain[0]
	minY, maxY := res.Stress[0], res.Stress[0]
	for i := range res.Strain {
		minX = min(minX, res.Strain[i])
		maxX = max(maxX, res.Strain[i])
		minY = min(minY, res.Stress[i])
		maxY = max(maxY, res.Stress[i])
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}

	return bounds{
		minX:   minX - rangeX*0.1,
		maxX:   maxX + rangeX*0.1,
		minY:   minY - rangeY*0.1,
		maxY:   maxY + rangeY*0.1,
		width:  width,
		height: height,
	}
}

func (b bounds) project(strain, stress float64) (x, y float64) {
	x = (strain - b.minX) / (b.maxX - b.minX) * float64(b.width)
	y = float64(b.height) - (stress-b.minY)/(b.maxY-b.minY)*float64(b.height)
	return x, y
}

// CurveSVG renders the stress-strain curve, the offset construction and the
// yield and fracture markers. Returns "" for fewer than two samples.
func CurveSVG(res *tensile.Result, width, height int) string {
	if res == nil || res.Len() < 2 {
		return ""
	}

	b := newBounds(res, width, height)
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, curveColor))

	for i := range res.Strain {
		x, y := b.project(res.Strain[i], res.Stress[i])
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}
	sb.WriteString("\"/>\n")

	if len(res.OffsetLine) == 2 {
		x0, y0 := b.project(res.OffsetLine[0].X, res.OffsetLine[0].Y)
		x1, y1 := b.project(res.OffsetLine[1].X, res.OffsetLine[1].Y)
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-dasharray="4 3"/>
`, x0, y0, x1, y1, offsetColor))
	}

	if res.YieldPoint != nil {
		writeMarker(&sb, b, *res.YieldPoint, yieldColor, "yield")
	}
	writeMarker(&sb, b, res.FracturePoint, fractureColor, "fracture")

	sb.WriteString("</svg>")
	return sb.String()
}

func writeMarker(sb *strings.Builder, b bounds, p tensile.Point, color, label string) {
	x, y := b.project(p.Strain, p.Stress)
	sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="4" fill="%s"><title>%s: %.4g, %.4g</title></circle>
`, x, y, color, label, p.Strain, p.Stress))
}

func SaveSVG(path string, res *tensile.Result, width, height int) error {
	return os.WriteFile(path, []byte(CurveSVG(res, width, height)), 0644)
}
