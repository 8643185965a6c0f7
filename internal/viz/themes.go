package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines color scheme for the TUI
type Theme struct {
	Name     string
	Curve    lipgloss.Color
	Label    lipgloss.Color
	Value    lipgloss.Color
	Muted    lipgloss.Color
	Yield    lipgloss.Color
	Fracture lipgloss.Color
	Cursor   lipgloss.Color
}

var themes = []Theme{
	{
		Name:     "ocean",
		Curve:    lipgloss.Color("#00ccff"),
		Label:    lipgloss.Color("#888899"),
		Value:    lipgloss.Color("#ffffff"),
		Muted:    lipgloss.Color("#666688"),
		Yield:    lipgloss.Color("#ffaa00"),
		Fracture: lipgloss.Color("#ff4444"),
		Cursor:   lipgloss.Color("#ff00ff"),
	},
	{
		Name:     "retro",
		Curve:    lipgloss.Color("#00ff00"),
		Label:    lipgloss.Color("#00cc00"),
		Value:    lipgloss.Color("#88ff88"),
		Muted:    lipgloss.Color("#005500"),
		Yield:    lipgloss.Color("#ffff00"),
		Fracture: lipgloss.Color("#ff0000"),
		Cursor:   lipgloss.Color("#ffffff"),
	},
	{
		Name:     "minimal",
		Curve:    lipgloss.Color("#ffffff"),
		Label:    lipgloss.Color("#888888"),
		Value:    lipgloss.Color("#ffffff"),
		Muted:    lipgloss.Color("#555555"),
		Yield:    lipgloss.Color("#0088ff"),
		Fracture: lipgloss.Color("#ff0000"),
		Cursor:   lipgloss.Color("#ffaa00"),
	},
}

func GetTheme(name string) Theme {
	for _, t := range themes {
		if t.Name == name {
			return t
		}
	}
	return themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}

func nextTheme(current string) Theme {
	for i, t := range themes {
		if t.Name == current {
			return themes[(i+1)%len(themes)]
		}
	}
	return themes[0]
}

func style(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}
