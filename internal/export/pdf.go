package export

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/phpdave11/gofpdf"
	"github.com/san-kum/tensile/internal/tensile"
)

// ReportMeta describes the test for the report header.
type ReportMeta struct {
	Title    string
	Source   string
	Specimen tensile.Specimen
	Date     time.Time
}

const (
	chartX = 20.0
	chartY = 95.0
	chartW = 170.0
	chartH = 90.0
)

// WritePDF renders an A4 test report: header, key results and the curve.
func WritePDF(w io.Writer, res *tensile.Result, meta ReportMeta) error {
	if meta.Title == "" {
		meta.Title = "Tensile Test Report"
	}
	if meta.Date.IsZero() {
		meta.Date = time.Now()
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, meta.Title)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	if meta.Source != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Source: %s", meta.Source))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", meta.Date.Format("2006-01-02")))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Specimen: area %g m2, gauge length %g m", meta.Specimen.Area, meta.Specimen.GaugeLength))
	pdf.Ln(10)

	m := res.Metrics.Rounded()
	rows := [][2]string{
		{"Samples", fmt.Sprintf("%d", res.Len())},
		{"Elastic modulus", fmt.Sprintf("%.1f MPa", res.Modulus)},
		{"Yield strength (0.2%)", yieldText(res)},
		{"Max stress", fmt.Sprintf("%.2f MPa", m.MaxStress)},
		{"Max strain", fmt.Sprintf("%.6f", m.MaxStrain)},
		{"Max load", fmt.Sprintf("%.2f N", m.MaxLoad)},
		{"Fracture", fmt.Sprintf("%.2f MPa at strain %.6f", res.FracturePoint.Stress, res.FracturePoint.Strain)},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, r := range rows {
		pdf.CellFormat(60, 7, r[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(110, 7, r[1], "1", 1, "L", false, 0, "")
	}

	drawCurve(pdf, res)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("export: render pdf: %w", err)
	}
	return nil
}

func SavePDF(path string, res *tensile.Result, meta ReportMeta) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return WritePDF(file, res, meta)
}

func yieldText(res *tensile.Result) string {
	if res.YieldPoint == nil {
		return "not found"
	}
	return fmt.Sprintf("%.2f MPa at strain %.6f", res.YieldPoint.Stress, res.YieldPoint.Strain)
}

func drawCurve(pdf *gofpdf.Fpdf, res *tensile.Result) {
	if res.Len() < 2 {
		return
	}

	// pdf y grows downward; bounds.project already flips the axis
	b := newBounds(res, int(chartW), int(chartH))
	at := func(strain, stress float64) (float64, float64) {
		x, y := b.project(strain, stress)
		return chartX + x, chartY + y
	}

	pdf.SetDrawColor(180, 180, 180)
	pdf.Rect(chartX, chartY, chartW, chartH, "D")

	pdf.SetDrawColor(0, 102, 204)
	pdf.SetLineWidth(0.4)
	px, py := at(res.Strain[0], res.Stress[0])
	for i := 1; i < res.Len(); i++ {
		x, y := at(res.Strain[i], res.Stress[i])
		pdf.Line(px, py, x, y)
		px, py = x, y
	}

	if len(res.OffsetLine) == 2 {
		pdf.SetDrawColor(120, 120, 120)
		pdf.SetDashPattern([]float64{1.5, 1}, 0)
		x0, y0 := at(res.OffsetLine[0].X, res.OffsetLine[0].Y)
		x1, y1 := at(res.OffsetLine[1].X, res.OffsetLine[1].Y)
		pdf.Line(x0, y0, x1, y1)
		pdf.SetDashPattern([]float64{}, 0)
	}

	if res.YieldPoint != nil {
		pdf.SetFillColor(255, 170, 0)
		x, y := at(res.YieldPoint.Strain, res.YieldPoint.Stress)
		pdf.Circle(x, y, 1.2, "F")
	}
	pdf.SetFillColor(255, 68, 68)
	x, y := at(res.FracturePoint.Strain, res.FracturePoint.Stress)
	pdf.Circle(x, y, 1.2, "F")

	pdf.SetFont("Helvetica", "", 8)
	pdf.Text(chartX, chartY+chartH+5, "strain")
	pdf.Text(chartX, chartY-2, "stress (MPa)")
}
