package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/tensile/internal/tensile"
)

// CurveOptions control [PlotCurve]. Cursor < 0 hides the cursor marker.
type CurveOptions struct {
	Width, Height int
	Cursor        int
	Theme         Theme
}

func DefaultCurveOptions() CurveOptions {
	return CurveOptions{Width: 60, Height: 16, Cursor: -1, Theme: themes[0]}
}

// viewport maps strain/stress onto canvas sub-pixels. The origin is always
// included so the toe region is visible.
type viewport struct {
	minX, maxX, minY, maxY float64
	pw, ph                 int
}

func newViewport(res *tensile.Result, c *Canvas) viewport {
	v := viewport{pw: c.PixelWidth(), ph: c.PixelHeight()}
	for i := range res.Strain {
		v.minX = min(v.minX, res.Strain[i])
		v.maxX = max(v.maxX, res.Strain[i])
		v.minY = min(v.minY, res.Stress[i])
		v.maxY = max(v.maxY, res.Stress[i])
	}
	if v.maxX == v.minX {
		v.maxX = v.minX + 1
	}
	if v.maxY == v.minY {
		v.maxY = v.minY + 1
	}
	return v
}

func (v viewport) pixel(strain, stress float64) (int, int) {
	x := int((strain - v.minX) / (v.maxX - v.minX) * float64(v.pw-1))
	y := v.ph - 1 - int((stress-v.minY)/(v.maxY-v.minY)*float64(v.ph-1))
	return x, y
}

// PlotCurve draws the stress-strain curve on a Braille canvas with the
// offset line dashed and Y/X marking yield and fracture.
func PlotCurve(res *tensile.Result, opts CurveOptions) string {
	if res == nil || res.Len() == 0 || opts.Width <= 0 || opts.Height <= 0 {
		return ""
	}

	c := NewCanvas(opts.Width, opts.Height)
	v := newViewport(res, c)

	px, py := v.pixel(res.Strain[0], res.Stress[0])
	c.Set(px, py)
	for i := 1; i < res.Len(); i++ {
		x, y := v.pixel(res.Strain[i], res.Stress[i])
		c.DrawLine(px, py, x, y)
		px, py = x, y
	}

	if len(res.OffsetLine) == 2 {
		x0, y0 := v.pixel(res.OffsetLine[0].X, res.OffsetLine[0].Y)
		x1, y1 := v.pixel(res.OffsetLine[1].X, res.OffsetLine[1].Y)
		c.DrawDashed(x0, y0, x1, y1)
	}

	th := opts.Theme
	if res.YieldPoint != nil {
		x, y := v.pixel(res.YieldPoint.Strain, res.YieldPoint.Stress)
		c.Mark(x, y, style(th.Yield).Bold(true).Render("Y"))
	}
	fx, fy := v.pixel(res.FracturePoint.Strain, res.FracturePoint.Stress)
	c.Mark(fx, fy, style(th.Fracture).Bold(true).Render("X"))

	if opts.Cursor >= 0 && opts.Cursor < res.Len() {
		x, y := v.pixel(res.Strain[opts.Cursor], res.Stress[opts.Cursor])
		c.Mark(x, y, style(th.Cursor).Bold(true).Render("●"))
	}

	return frame(c, v, th)
}

// frame adds stress labels on the left and the strain range underneath.
func frame(c *Canvas, v viewport, th Theme) string {
	top := fmt.Sprintf("%.1f", v.maxY)
	bottom := fmt.Sprintf("%.1f", v.minY)
	labelW := max(len(top), len(bottom))

	curve := style(th.Curve)
	label := style(th.Label)

	var b strings.Builder
	for i, row := range c.Rows() {
		l := ""
		switch i {
		case 0:
			l = top
		case c.Height - 1:
			l = bottom
		}
		b.WriteString(label.Render(fmt.Sprintf("%*s ┤", labelW, l)))
		b.WriteString(curve.Render(row))
		b.WriteString("\n")
	}

	left := fmt.Sprintf("%.4g", v.minX)
	right := fmt.Sprintf("%.4g", v.maxX)
	gap := max(1, c.Width-len(left)-len(right))
	b.WriteString(label.Render(fmt.Sprintf("%*s  %s%s%s", labelW, "", left, strings.Repeat(" ", gap), right)))
	b.WriteString("\n")
	return b.String()
}

// PlotSeries draws values against sample index.
func PlotSeries(values []float64, caption string, width, height int) string {
	if len(values) == 0 {
		return ""
	}
	return asciigraph.Plot(values,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}
