package viz

import "github.com/charmbracelet/lipgloss"

// Theme is a named color for the live viewer's canvas. The catalogue
// keeps only the field the viewer actually renders with; the teacher's
// richer multi-panel palette (secondary/accent/background/status colors)
// has no consumer once the viewer is a single canvas plus status bar.
type Theme struct {
	Name    string
	Primary lipgloss.Color
}

var (
	ThemeCyberpunk  = Theme{Name: "cyberpunk", Primary: lipgloss.Color("#ff00ff")}
	ThemeRetroGreen = Theme{Name: "retro", Primary: lipgloss.Color("#00ff00")}
	ThemeMinimal    = Theme{Name: "minimal", Primary: lipgloss.Color("#ffffff")}
	ThemeOcean      = Theme{Name: "ocean", Primary: lipgloss.Color("#0077be")}
	ThemeSunset     = Theme{Name: "sunset", Primary: lipgloss.Color("#ff6b6b")}

	CurrentTheme = ThemeCyberpunk

	Themes = []Theme{
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, or the default if name is unknown.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeCyberpunk
}

// SetTheme changes the current theme, read by the live viewer when it
// colors the canvas.
func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}
