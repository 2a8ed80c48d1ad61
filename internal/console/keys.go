package console

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"termfolio/internal/terminal"
)

// keyMap holds the host-level bindings; everything else goes to the session.
type keyMap struct {
	Quit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// translate converts a Bubble Tea key message into session key events. A
// paste or a multi-rune read yields one event per rune.
func translate(msg tea.KeyMsg) []terminal.KeyEvent {
	ev := terminal.KeyEvent{Alt: msg.Alt}
	switch msg.Type {
	case tea.KeyEnter:
		ev.Key = terminal.KeyEnter
	case tea.KeyBackspace:
		ev.Key = terminal.KeyBackspace
	case tea.KeyLeft:
		ev.Key = terminal.KeyLeft
	case tea.KeyRight:
		ev.Key = terminal.KeyRight
	case tea.KeyUp:
		ev.Key = terminal.KeyUp
	case tea.KeyDown:
		ev.Key = terminal.KeyDown
	case tea.KeySpace:
		ev.Key = terminal.KeyRune
		ev.Rune = ' '
	case tea.KeyRunes:
		out := make([]terminal.KeyEvent, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			out = append(out, terminal.KeyEvent{Key: terminal.KeyRune, Rune: r, Alt: msg.Alt})
		}
		return out
	default:
		ev.Key = terminal.KeyOther
		// Non-negative key types are C0 control codes.
		ev.Ctrl = msg.Type >= 0
	}
	return []terminal.KeyEvent{ev}
}

// inputModel forwards key presses; it renders nothing.
type inputModel struct {
	keys    keyMap
	forward func([]terminal.KeyEvent)
}

func (m inputModel) Init() tea.Cmd { return nil }

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		m.forward(translate(msg))
	}
	return m, nil
}

func (m inputModel) View() string { return "" }
