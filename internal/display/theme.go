package display

import "strings"

// ThemeName identifies one of the fixed colour themes.
type ThemeName string

const (
	ThemeDark      ThemeName = "dark"
	ThemeLight     ThemeName = "light"
	ThemeMatrix    ThemeName = "matrix"
	ThemeCyberpunk ThemeName = "cyberpunk"

	DefaultTheme = ThemeDark
)

// Theme is the background/foreground/cursor triple applied to the surface.
type Theme struct {
	Name       ThemeName `json:"name"`
	Background string    `json:"background"`
	Foreground string    `json:"foreground"`
	Cursor     string    `json:"cursor"`
}

var themes = []Theme{
	{Name: ThemeDark, Background: "#1a1b26", Foreground: "#a9b1d6", Cursor: "#c0caf5"},
	{Name: ThemeLight, Background: "#ffffff", Foreground: "#333333", Cursor: "#007acc"},
	{Name: ThemeMatrix, Background: "#000000", Foreground: "#00ff00", Cursor: "#00ff00"},
	{Name: ThemeCyberpunk, Background: "#0f0f23", Foreground: "#ff00ff", Cursor: "#ffff00"},
}

// Themes returns every theme in declaration order.
func Themes() []Theme {
	return append([]Theme(nil), themes...)
}

// ThemeNames lists the valid theme names in declaration order.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for _, t := range themes {
		names = append(names, string(t.Name))
	}
	return names
}

// LookupTheme finds a theme by case-insensitive name.
func LookupTheme(name string) (Theme, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, t := range themes {
		if string(t.Name) == name {
			return t, true
		}
	}
	return Theme{}, false
}
