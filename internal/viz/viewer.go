package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/tensile/internal/tensile"
)

// Viewer is a Bubble Tea model for browsing an analysis sample by sample.
type Viewer struct {
	title         string
	res           *tensile.Result
	specimen      tensile.Specimen
	cursor        int
	theme         Theme
	width, height int
}

func NewViewer(title string, res *tensile.Result, sp tensile.Specimen) Viewer {
	return Viewer{
		title:    title,
		res:      res,
		specimen: sp,
		cursor:   res.PeakIndex,
		theme:    themes[0],
		width:    100,
		height:   30,
	}
}

func (v Viewer) Cursor() int { return v.cursor }

func (v Viewer) Init() tea.Cmd { return nil }

func (v Viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return v.handleKey(msg)
	case tea.WindowSizeMsg:
		v.width, v.height = msg.Width, msg.Height
	}
	return v, nil
}

func (v Viewer) handleKey(msg tea.KeyMsg) (Viewer, tea.Cmd) {
	last := v.res.Len() - 1
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return v, tea.Quit
	case "left", "h":
		v.cursor--
	case "right", "l":
		v.cursor++
	case "shift+left", "H":
		v.cursor -= 10
	case "shift+right", "L":
		v.cursor += 10
	case "home", "g":
		v.cursor = 0
	case "end", "G":
		v.cursor = last
	case "y":
		if v.res.YieldIndex != nil {
			v.cursor = *v.res.YieldIndex
		}
	case "f":
		v.cursor = v.res.FractureIndex
	case "p":
		v.cursor = v.res.PeakIndex
	case "t":
		v.theme = nextTheme(v.theme.Name)
	}
	v.cursor = max(0, min(v.cursor, last))
	return v, nil
}

func (v Viewer) View() string {
	plotW := max(20, v.width-44)
	plotH := max(8, v.height-8)

	curve := PlotCurve(v.res, CurveOptions{
		Width:  plotW,
		Height: plotH,
		Cursor: v.cursor,
		Theme:  v.theme,
	})

	side := lipgloss.JoinVertical(lipgloss.Left,
		v.sampleInfo(),
		Summary("results", v.res, v.specimen, v.theme),
	)

	help := style(v.theme.Muted).Italic(true).
		Render("←/→ move · shift+←/→ ×10 · y yield · f fracture · p peak · t theme · q quit")

	header := titleStyle.Render(v.title)
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.JoinHorizontal(lipgloss.Top, curve, "  ", side),
		help,
	)
}

func (v Viewer) sampleInfo() string {
	i := v.cursor
	r := v.res
	label := style(v.theme.Label).Width(12)
	value := style(v.theme.Value)

	var tags []string
	if r.YieldIndex != nil && *r.YieldIndex == i {
		tags = append(tags, style(v.theme.Yield).Render("yield"))
	}
	if i == r.PeakIndex {
		tags = append(tags, style(v.theme.Curve).Render("peak"))
	}
	if i == r.FractureIndex {
		tags = append(tags, style(v.theme.Fracture).Render("fracture"))
	}

	rows := [][2]string{
		{"sample", fmt.Sprintf("%d / %d %s", i, r.Len()-1, strings.Join(tags, " "))},
		{"load", fmt.Sprintf("%.3f", r.Load[i])},
		{"disp", fmt.Sprintf("%.4f", r.Displacement[i])},
		{"stress", fmt.Sprintf("%.3f", r.Stress[i])},
		{"strain", fmt.Sprintf("%.6f", r.Strain[i])},
		{"tangent", fmt.Sprintf("%.1f", r.TangentModulus[i])},
		{"secant", fmt.Sprintf("%.1f", r.SecantModulus[i])},
		{"angle", fmt.Sprintf("%.3f°", r.SlopeAngles[i])},
	}

	var b strings.Builder
	for _, row := range rows {
		b.WriteString(label.Render(row[0]))
		b.WriteString(value.Render(row[1]))
		b.WriteString("\n")
	}
	return panelStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// RunViewer blocks until the user quits the viewer.
func RunViewer(title string, res *tensile.Result, sp tensile.Specimen) error {
	p := tea.NewProgram(NewViewer(title, res, sp), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
