package terminal

import (
	"encoding/base64"
	"strings"

	"termfolio/internal/commands"
)

// Encode returns the standard padded base64 form of text.
func Encode(text string) string {
	return base64.StdEncoding.EncodeToString([]byte(text))
}

// Decode reverses Encode. Surrounding whitespace is ignored.
func Decode(text string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(text))
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func cmdEncrypt(t *Terminal, inv commands.Invocation) Task {
	if inv.Opaque == "" {
		t.display.WriteLine("Usage: " + commands.ElevationMarker + " encrypt <text>")
		return nil
	}
	t.display.WriteLine("Encrypted: " + Encode(inv.Opaque))
	return nil
}

func cmdDecode(t *Terminal, inv commands.Invocation) Task {
	if inv.Opaque == "" {
		t.display.WriteLine("Usage: " + commands.ElevationMarker + " decode <text>")
		return nil
	}
	text, err := Decode(inv.Opaque)
	if err != nil {
		t.log.WithError(err).Debug("decode failed")
		t.display.WriteLine(t.palette.Error.Render("Error: invalid base64"))
		return nil
	}
	t.display.WriteLine("Decoded: " + text)
	return nil
}
