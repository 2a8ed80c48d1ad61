package terminal

import (
	"fmt"
	"strings"

	"termfolio/internal/commands"
)

// Handler runs one command. It may return a Task that keeps running after the
// handler returns; nil means the command finished synchronously.
type Handler func(t *Terminal, inv commands.Invocation) Task

// Execute parses and runs one submitted line.
func (t *Terminal) Execute(raw string) Task {
	if !t.mounted {
		return nil
	}
	inv := commands.Parse(raw)
	if inv.Empty() {
		if inv.Elevated {
			t.display.WriteLine("Usage: " + commands.ElevationMarker + " <command>")
		}
		return nil
	}
	if t.vocab.IsProtected(inv.Token) && !inv.Elevated {
		t.display.WriteLine(t.palette.Error.Render("Permission denied"))
		t.log.WithField("command", inv.Name).Debug("permission denied")
		return nil
	}
	h, ok := t.handlers[inv.Name]
	if !ok {
		t.notFound(inv)
		return nil
	}
	task := t.run(h, inv)
	if task != nil {
		if t.state.Effect != nil && t.state.Effect != task {
			t.state.Effect.Cancel()
		}
		t.state.Effect = task
	}
	return task
}

func (t *Terminal) run(h Handler, inv commands.Invocation) (task Task) {
	defer func() {
		if r := recover(); r != nil {
			t.log.WithField("command", inv.Name).Errorf("handler panic recovered: %v", r)
			t.display.WriteLine(t.palette.Error.Render("Error: command failed"))
			task = nil
		}
	}()
	t.log.WithField("command", inv.Name).WithField("elevated", inv.Elevated).Debug("dispatch")
	return h(t, inv)
}

func (t *Terminal) notFound(inv commands.Invocation) {
	t.display.WriteLine(t.palette.Error.Render("Command not found: " + inv.Raw))
	if spec, ok := t.vocab.Closest(inv.Token); ok {
		t.display.WriteLine(fmt.Sprintf("Did you mean: %s?", t.palette.Command.Render(string(spec.Name))))
	}
	t.display.WriteLine("Type " + t.palette.Success.Render("help") + " to see available commands.")
}

// Handle registers or replaces the handler for name.
func (t *Terminal) Handle(name commands.Name, h Handler) {
	name = commands.Name(strings.ToLower(string(name)))
	if h == nil {
		delete(t.handlers, name)
		return
	}
	t.handlers[name] = h
}

func defaultHandlers() map[commands.Name]Handler {
	return map[commands.Name]Handler{
		commands.Help:       cmdHelp,
		commands.About:      cmdAbout,
		commands.Skills:     cmdSkills,
		commands.Projects:   cmdProjects,
		commands.Contact:    cmdContact,
		commands.Refresh:    cmdRefresh,
		commands.Clear:      cmdClear,
		commands.Whoami:     cmdWhoami,
		commands.Pwd:        cmdPwd,
		commands.Ls:         cmdLs,
		commands.Cat:        cmdCat,
		commands.History:    cmdHistory,
		commands.Date:       cmdDate,
		commands.Uptime:     cmdUptime,
		commands.Theme:      cmdTheme,
		commands.Fontsize:   cmdFontsize,
		commands.Fullscreen: cmdFullscreen,
		commands.Download:   cmdDownload,
		commands.Cb:         cmdCb,
		commands.Hack:       cmdHack,
		commands.Matrix:     cmdMatrix,
		commands.Scan:       cmdScan,
		commands.Encrypt:    cmdEncrypt,
		commands.Decode:     cmdDecode,
		commands.Ping:       cmdPing,
		commands.Nmap:       cmdNmap,
		commands.Exit:       cmdExit,
	}
}
