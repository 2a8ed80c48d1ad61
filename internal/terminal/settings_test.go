package terminal

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"termfolio/internal/display"
)

func TestFontsizeBiggerSaturates(t *testing.T) {
	h := newHarness(t)
	assert.Equal(t, DefaultFontSize, h.term.Settings().FontSize)

	h.submit("fontsize bigger")
	assert.Equal(t, 16, h.term.Settings().FontSize)
	assert.Equal(t, 16, h.screen.FontSize())
	assert.Contains(t, h.text(), "Font size set to 16px")

	for i := 0; i < 5; i++ {
		h.submit("fontsize bigger")
	}
	assert.Equal(t, MaxFontSize, h.term.Settings().FontSize)
}

func TestFontsizeArguments(t *testing.T) {
	cases := []struct {
		name    string
		current int
		arg     string
		want    int
		wantErr error
	}{
		{name: "default", current: 18, arg: "default", want: 14},
		{name: "smaller", current: 14, arg: "smaller", want: 12},
		{name: "smaller floor", current: 10, arg: "SMALLER", want: 10},
		{name: "explicit", current: 14, arg: "17", want: 17},
		{name: "too big", current: 14, arg: "21", want: 14, wantErr: errFontRange},
		{name: "too small", current: 14, arg: "9", want: 14, wantErr: errFontRange},
		{name: "garbage", current: 14, arg: "huge", want: 14, wantErr: errFontUsage},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NextFontSize(tc.current, tc.arg)
			assert.Equal(t, tc.want, got)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestFontsizeMessages(t *testing.T) {
	h := newHarness(t)
	h.submit("fontsize")
	h.submit("fontsize 42")
	h.submit("fontsize tiny")
	out := h.text()
	assert.Contains(t, out, "Usage: fontsize <size|default|bigger|smaller> (10-20)")
	assert.Contains(t, out, "Font size must be between 10-20")
	assert.Equal(t, DefaultFontSize, h.term.Settings().FontSize)
}

func TestTheme(t *testing.T) {
	h := newHarness(t)
	h.submit("theme Light")
	assert.Contains(t, h.text(), "Switching to light theme...")
	assert.Equal(t, display.ThemeLight, h.term.Settings().Theme)
	assert.Equal(t, "#ffffff", h.screen.Theme().Background)

	h.reset()
	h.submit("theme neon")
	assert.Contains(t, h.text(), "Theme 'neon' not found")
	assert.Contains(t, h.text(), "dark, light, matrix, cyberpunk")
	assert.Equal(t, display.ThemeLight, h.term.Settings().Theme)

	h.reset()
	h.submit("theme")
	assert.Contains(t, h.text(), "Available themes: dark, light, matrix, cyberpunk")
	assert.Contains(t, h.text(), "Usage: theme <theme_name>")
}

func TestSettingsResetOnRemount(t *testing.T) {
	h := newHarness(t)
	h.submit("theme matrix")
	h.submit("fontsize 20")
	assert.NoError(t, h.term.Unmount())

	again := newHarness(t)
	assert.Equal(t, DefaultSettings(), again.term.Settings())
}
