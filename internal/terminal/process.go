package terminal

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"termfolio/internal/commands"
	"termfolio/internal/content"
	"termfolio/internal/effects"
)

const (
	hackStep = 500 * time.Millisecond
	scanStep = 300 * time.Millisecond
	pingStep = 400 * time.Millisecond
	nmapStep = 400 * time.Millisecond

	reloadDelay = time.Second
	closeDelay  = 500 * time.Millisecond

	defaultPingHost = "8.8.8.8"
)

var (
	hackSteps  = []string{"Accessing target", "Bypassing firewall", "Extracting data", "Done"}
	scanHosts  = []string{"192.168.0.1", "192.168.0.5", "192.168.0.10"}
	pingTimes  = []int{20, 25, 30}
	nmapTarget = "192.168.0.1"
	nmapPorts  = []string{"80/tcp open  http", "22/tcp closed ssh", "443/tcp open  https"}
)

// stagger schedules lines[i] to appear after i*step. The writes are not
// tracked: repeated invocations interleave their output.
func (t *Terminal) stagger(step time.Duration, lines []string) {
	for i, line := range lines {
		line := line
		t.sched.After(time.Duration(i)*step, func() {
			t.printAbove(line)
		})
	}
}

// printAbove writes a line of deferred output without losing the prompt: the
// prompt line is erased, the text written, then prompt and input repainted.
func (t *Terminal) printAbove(line string) {
	if !t.mounted {
		return
	}
	if t.effectActive() {
		t.display.WriteLine(line)
		return
	}
	t.display.EraseLine()
	t.display.WriteLine(line)
	t.paintLine()
}

func cmdHack(t *Terminal, _ commands.Invocation) Task {
	t.display.WriteLine("Initializing hack sequence...")
	lines := make([]string, len(hackSteps))
	for i, s := range hackSteps {
		lines[i] = "> " + s
	}
	t.stagger(hackStep, lines)
	return nil
}

func cmdScan(t *Terminal, _ commands.Invocation) Task {
	t.display.WriteLine("Starting network scan:")
	lines := make([]string, len(scanHosts))
	for i, ip := range scanHosts {
		state := "closed"
		if t.rand.Float64() < 0.5 {
			state = "open"
		}
		lines[i] = fmt.Sprintf("- Host %s is %s", ip, state)
	}
	t.stagger(scanStep, lines)
	return nil
}

func cmdPing(t *Terminal, inv commands.Invocation) Task {
	host := strings.TrimSpace(inv.Opaque)
	if host == "" {
		host = defaultPingHost
	}
	t.display.WriteLine(fmt.Sprintf("Pinging %s with 32 bytes of data:", host))
	lines := make([]string, len(pingTimes))
	for i, ms := range pingTimes {
		lines[i] = fmt.Sprintf("Reply from %s: bytes=32 time=%dms TTL=64", host, ms)
	}
	t.stagger(pingStep, lines)
	return nil
}

func cmdNmap(t *Terminal, _ commands.Invocation) Task {
	t.display.WriteLine("Starting Nmap 7.80 scan:")
	lines := make([]string, len(nmapPorts))
	for i, p := range nmapPorts {
		lines[i] = fmt.Sprintf("Host: %s  %s", nmapTarget, p)
	}
	t.stagger(nmapStep, lines)
	return nil
}

func cmdMatrix(t *Terminal, _ commands.Invocation) Task {
	t.cancelEffect()
	t.display.WriteLine("Entering the Matrix…")
	m := effects.StartMatrix(effects.MatrixOptions{
		Scheduler: t.sched,
		Canvas:    t.display,
		Frame:     t.opts.Frame,
		Duration:  t.opts.MatrixDuration,
		Rand:      t.rand,
		Colors:    t.palette.Rain,
		Banner:    t.palette.Success,
		OnDone:    t.effectDone,
		Log:       t.log.WithField("effect", "matrix"),
	})
	return m
}

// effectDone restores the prompt and whatever was typed meanwhile.
func (t *Terminal) effectDone() {
	t.state.Effect = nil
	if !t.mounted {
		return
	}
	t.paintLine()
}

func cmdRefresh(t *Terminal, _ commands.Invocation) Task {
	t.display.WriteLine(t.palette.Warn.Render("Refreshing page..."))
	t.sched.After(reloadDelay, func() {
		if t.mounted {
			t.host.Reload()
		}
	})
	return nil
}

func cmdExit(t *Terminal, _ commands.Invocation) Task {
	t.display.WriteLine(t.palette.Warn.Render("Closing terminal…"))
	t.sched.After(closeDelay, func() {
		if t.mounted {
			t.host.Close()
		}
	})
	return nil
}

func (t *Terminal) tone(tone content.Tone) lipgloss.Style {
	switch tone {
	case content.ToneInfo:
		return t.palette.Info
	case content.ToneSuccess:
		return t.palette.Success
	case content.ToneWarn:
		return t.palette.Warn
	case content.ToneCommand:
		return t.palette.Command
	default:
		return t.palette.Accent
	}
}
