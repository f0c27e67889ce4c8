package viz

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/ballfield/internal/field"
)

// Theme defines color scheme for the TUI and the balls
type Theme struct {
	Name       string
	Palette    []string
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Warning    lipgloss.Color
}

// Available themes
var (
	ThemeSlate = Theme{
		Name:       "slate",
		Palette:    field.DefaultPaletteHex,
		Primary:    lipgloss.Color("#0ea5e9"),
		Accent:     lipgloss.Color("#6366f1"),
		Background: lipgloss.Color("#0f172a"),
		Text:       lipgloss.Color("#e2e8f0"),
		Muted:      lipgloss.Color("#64748b"),
		Warning:    lipgloss.Color("#f59e0b"),
	}

	ThemeCyberpunk = Theme{
		Name:       "cyberpunk",
		Palette:    []string{"#ff00ff", "#00ffff", "#ffff00", "#ff8800", "#8800ff"},
		Primary:    lipgloss.Color("#ff00ff"), // Magenta
		Accent:     lipgloss.Color("#ffff00"), // Yellow
		Background: lipgloss.Color("#0a0a0a"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#666666"),
		Warning:    lipgloss.Color("#ff8800"),
	}

	ThemeRetroGreen = Theme{
		Name:       "retro",
		Palette:    []string{"#00ff00", "#00cc00", "#88ff88", "#005500"},
		Primary:    lipgloss.Color("#00ff00"), // Green phosphor
		Accent:     lipgloss.Color("#88ff88"),
		Background: lipgloss.Color("#001100"),
		Text:       lipgloss.Color("#00ff00"),
		Muted:      lipgloss.Color("#005500"),
		Warning:    lipgloss.Color("#ffff00"),
	}

	ThemeOcean = Theme{
		Name:       "ocean",
		Palette:    []string{"#0077be", "#00a8cc", "#4488aa", "#e0f0ff", "#ffd700"},
		Primary:    lipgloss.Color("#0077be"), // Ocean blue
		Accent:     lipgloss.Color("#ffd700"),
		Background: lipgloss.Color("#001a33"),
		Text:       lipgloss.Color("#e0f0ff"),
		Muted:      lipgloss.Color("#4488aa"),
		Warning:    lipgloss.Color("#ffcc00"),
	}

	ThemeSunset = Theme{
		Name:       "sunset",
		Palette:    []string{"#ff6b6b", "#feca57", "#ff9ff3", "#5fd068", "#8b6b8c"},
		Primary:    lipgloss.Color("#ff6b6b"), // Coral
		Accent:     lipgloss.Color("#ff9ff3"),
		Background: lipgloss.Color("#2d1b2e"),
		Text:       lipgloss.Color("#fff5f5"),
		Muted:      lipgloss.Color("#8b6b8c"),
		Warning:    lipgloss.Color("#ffc048"),
	}

	// All available themes
	Themes = []Theme{
		ThemeSlate,
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to slate.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeSlate
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// NextTheme returns the theme after name, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// BallPalette parses the theme's ball colours.
func (t Theme) BallPalette() field.Palette {
	return field.MustParsePalette(t.Palette)
}
