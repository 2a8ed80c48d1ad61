package terminal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"termfolio/internal/commands"
	"termfolio/internal/display"
)

const (
	DefaultFontSize = 14
	MinFontSize     = 10
	MaxFontSize     = 20
	FontStep        = 2
)

const fontUsage = "Usage: fontsize <size|default|bigger|smaller> (10-20)"

// SetTheme switches the colour theme. Unknown names leave settings unchanged.
func (t *Terminal) SetTheme(name string) (display.Theme, bool) {
	theme, ok := display.LookupTheme(name)
	if !ok {
		return display.Theme{}, false
	}
	t.state.Settings.Theme = theme.Name
	t.display.ApplyTheme(theme)
	t.display.Refresh()
	return theme, true
}

// NextFontSize resolves a fontsize argument against the current size.
func NextFontSize(current int, arg string) (int, error) {
	switch strings.ToLower(strings.TrimSpace(arg)) {
	case "default":
		return DefaultFontSize, nil
	case "bigger":
		return min(current+FontStep, MaxFontSize), nil
	case "smaller":
		return max(current-FontStep, MinFontSize), nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return current, errFontUsage
	}
	if n < MinFontSize || n > MaxFontSize {
		return current, errFontRange
	}
	return n, nil
}

type fontError string

func (e fontError) Error() string { return string(e) }

const (
	errFontUsage fontError = fontUsage
	errFontRange fontError = "Font size must be between 10-20"
)

// SetFontSize applies a validated size and re-fits the display.
func (t *Terminal) SetFontSize(px int) {
	t.state.Settings.FontSize = px
	t.display.SetFontSize(px)
	rows, cols := t.display.Dimensions()
	t.display.Fit(rows, cols)
}

func cmdTheme(t *Terminal, inv commands.Invocation) Task {
	if len(inv.Args) == 0 {
		t.display.WriteLine(t.palette.Warn.Render("Available themes:") + " " + strings.Join(display.ThemeNames(), ", "))
		t.display.WriteLine("Usage: theme <theme_name>")
		return nil
	}
	name := strings.ToLower(inv.Arg(0))
	if _, ok := display.LookupTheme(name); !ok {
		t.display.WriteLine(t.palette.Error.Render(fmt.Sprintf("Theme '%s' not found", name)))
		t.display.WriteLine("Available themes: " + strings.Join(display.ThemeNames(), ", "))
		return nil
	}
	t.display.WriteLine(t.palette.Success.Render(fmt.Sprintf("Switching to %s theme...", name)))
	t.SetTheme(name)
	return nil
}

func cmdFontsize(t *Terminal, inv commands.Invocation) Task {
	if len(inv.Args) == 0 {
		t.display.WriteLine(fontUsage)
		return nil
	}
	size, err := NextFontSize(t.state.Settings.FontSize, inv.Arg(0))
	if errors.Is(err, errFontRange) {
		t.display.WriteLine(t.palette.Error.Render(err.Error()))
		return nil
	}
	if err != nil {
		t.display.WriteLine(err.Error())
		return nil
	}
	t.SetFontSize(size)
	t.display.WriteLine(t.palette.Success.Render(fmt.Sprintf("Font size set to %dpx", size)))
	return nil
}
