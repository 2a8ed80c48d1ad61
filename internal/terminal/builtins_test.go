package terminal

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termfolio/internal/content"
)

func TestInformationalCommands(t *testing.T) {
	cases := []struct {
		line string
		want []string
	}{
		{line: "help", want: []string{"Available commands:", "  whoami    - Display current user info", "  fullscreen- Toggle fullscreen", "  clear     - Clear terminal"}},
		{line: "cb", want: []string{"Cybersecurity Interactive Commands:", "  matrix   - Matrix-style effect", "  exit     - Exit the browser"}},
		{line: "about", want: []string{"Rafata Alfatih", "Breaking down barriers between security and innovation"}},
		{line: "skills", want: []string{"Technical Skills:", "• Reverse Engineering"}},
		{line: "projects", want: []string{"Featured Projects:", "• Crime Dashboard - AI-powered crime analytics"}},
		{line: "contact", want: []string{"Contact Information:", "LinkedIn: linkedin.com/in/rafata-alfatih"}},
		{line: "whoami", want: []string{"rafata", "User: Rafata Alfatih", "Status: Online and ready to secure your systems!"}},
		{line: "pwd", want: []string{"/home/rafata/portfolio"}},
		{line: "ls", want: append([]string{"Files in current directory:"}, content.FileNames()...)},
		{line: "date", want: []string{"10/19/2026, 3:04:05 PM"}},
		{line: "fullscreen", want: []string{"Toggling fullscreen mode..."}},
	}
	for _, tc := range cases {
		t.Run(tc.line, func(t *testing.T) {
			h := newHarness(t)
			h.reset()
			h.submit(tc.line)
			for _, w := range tc.want {
				assert.Contains(t, h.text(), w)
			}
		})
	}
}

func TestHelpHidesProtectedCommands(t *testing.T) {
	h := newHarness(t)
	h.reset()
	h.submit("help")
	assert.NotContains(t, h.text(), "matrix")
	assert.NotContains(t, h.text(), "nmap")
}

func TestCat(t *testing.T) {
	h := newHarness(t)
	h.reset()
	h.submit("cat")
	assert.Contains(t, h.text(), "Usage: cat <filename>")
	assert.Contains(t, h.text(), "Available files: about.txt, skills.txt")

	h.reset()
	h.submit("cat secrets.txt")
	assert.Contains(t, h.text(), "cat: secrets.txt: No such file or directory")

	h.reset()
	h.submit("cat experience.txt")
	assert.Contains(t, h.text(), "=== WORK EXPERIENCE ===")
	assert.Contains(t, h.text(), "• Datacom - Cybersecurity Consultant (2025)")
}

func TestHistoryCommandListsEntries(t *testing.T) {
	h := newHarness(t)
	h.submit("pwd")
	h.reset()
	h.submit("history")
	out := h.text()
	assert.Contains(t, out, "Command History:")
	assert.Contains(t, out, "1  pwd")
	assert.Contains(t, out, "2  history")
}

func TestUptime(t *testing.T) {
	h := newHarness(t)
	h.clock.Advance(75 * time.Second)
	h.reset()
	h.submit("uptime")
	assert.Contains(t, h.text(), "Portfolio uptime: 1m 15s")
	assert.Contains(t, h.text(), "System load: Optimized for maximum security! 🔒")
}

func TestClear(t *testing.T) {
	h := newHarness(t)
	h.reset()
	h.submit("clear")
	assert.Contains(t, h.raw(), "\x1b[2J")
	assert.True(t, strings.HasSuffix(h.text(), "$ "))
}

func TestFullscreenAsksHost(t *testing.T) {
	h := newHarness(t)
	h.submit("fullscreen")
	assert.Equal(t, 1, h.host.fullscreen)
}

func TestDownload(t *testing.T) {
	h := newHarness(t)
	h.submit("download")
	assert.Contains(t, h.text(), "Available downloads: cv, resume")
	assert.Empty(t, h.host.downloads)

	h.submit("download floppy")
	assert.Contains(t, h.text(), "Unknown option: floppy")
	assert.Contains(t, h.text(), "Usage: download <cv|resume>")

	h.submit("download CV")
	require.Len(t, h.host.downloads, 1)
	cv := h.host.downloads[0]
	assert.Equal(t, "cv", cv.Kind)
	assert.Equal(t, DefaultCVName, cv.Name)
	assert.Equal(t, "/"+DefaultCVName, cv.URL)
	assert.Contains(t, h.text(), "Downloading CV (PDF)...")

	h.submit("download resume")
	require.Len(t, h.host.downloads, 2)
	resume := h.host.downloads[1]
	assert.Equal(t, content.ResumeName, resume.Name)
	assert.Equal(t, "text/plain", resume.ContentType)
	assert.True(t, strings.HasPrefix(string(resume.Data), "RAFATA ALFATIH\n"))
}
