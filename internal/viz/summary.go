package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/tensile/internal/tensile"
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(0, 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ffff")).
			MarginBottom(1)
)

// SummaryRows returns the label/value pairs shown in [Summary].
func SummaryRows(res *tensile.Result, sp tensile.Specimen) [][2]string {
	m := res.Metrics.Rounded()
	rows := [][2]string{
		{"samples", fmt.Sprintf("%d", res.Len())},
		{"area", fmt.Sprintf("%g", sp.Area)},
		{"gauge length", fmt.Sprintf("%g", sp.GaugeLength)},
		{"modulus E", fmt.Sprintf("%.1f MPa", res.Modulus)},
	}
	if res.YieldPoint != nil {
		rows = append(rows,
			[2]string{"yield (0.2%)", fmt.Sprintf("%.2f MPa", m.YieldStrength)},
			[2]string{"yield strain", fmt.Sprintf("%.6f", res.YieldPoint.Strain)},
		)
	} else {
		rows = append(rows, [2]string{"yield (0.2%)", "not found"})
	}
	rows = append(rows,
		[2]string{"max stress", fmt.Sprintf("%.2f MPa", m.MaxStress)},
		[2]string{"max strain", fmt.Sprintf("%.6f", m.MaxStrain)},
		[2]string{"max load", fmt.Sprintf("%.2f N", m.MaxLoad)},
		[2]string{"fracture", fmt.Sprintf("%.2f MPa @ %.6f", res.FracturePoint.Stress, res.FracturePoint.Strain)},
	)
	return rows
}

// Summary renders the key results as a bordered panel.
func Summary(title string, res *tensile.Result, sp tensile.Specimen, th Theme) string {
	label := style(th.Label).Width(14)
	value := style(th.Value).Bold(true)

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	for _, r := range SummaryRows(res, sp) {
		b.WriteString(label.Render(r[0]))
		b.WriteString(value.Render(r[1]))
		b.WriteString("\n")
	}
	return panelStyle.Render(strings.TrimRight(b.String(), "\n"))
}
