package terminal

import (
	"fmt"
	"strings"
	"time"

	"termfolio/internal/commands"
	"termfolio/internal/content"
)

var helpOrder = []commands.Name{
	commands.Whoami, commands.Pwd, commands.Ls, commands.Cat, commands.History,
	commands.Date, commands.Uptime, commands.About, commands.Skills, commands.Projects,
	commands.Contact, commands.Refresh, commands.Theme, commands.Fontsize,
	commands.Fullscreen, commands.Download, commands.Clear,
}

var cbOrder = []commands.Name{
	commands.Matrix, commands.Hack, commands.Scan, commands.Encrypt,
	commands.Decode, commands.Ping, commands.Nmap, commands.Exit,
}

// dateLayout mirrors an en-US locale date string.
const dateLayout = "1/2/2006, 3:04:05 PM"

func (t *Terminal) listing(names []commands.Name, width int) {
	for _, name := range names {
		spec, ok := t.vocab.Lookup(string(name))
		if !ok {
			continue
		}
		pad := width - len(spec.Name)
		if pad < 0 {
			pad = 0
		}
		t.display.WriteLine("  " + t.palette.Command.Render(string(spec.Name)) + strings.Repeat(" ", pad) + "- " + spec.Summary)
	}
}

func (t *Terminal) section(s content.Section) {
	t.display.WriteLine(t.tone(s.Tone).Render(s.Title))
	for _, line := range s.Lines {
		t.display.WriteLine(line)
	}
}

func cmdHelp(t *Terminal, _ commands.Invocation) Task {
	t.display.WriteLine(t.palette.Success.Render("Available commands:"))
	t.listing(helpOrder, 10)
	return nil
}

func cmdCb(t *Terminal, _ commands.Invocation) Task {
	t.display.WriteLine(t.palette.Info.Render("Cybersecurity Interactive Commands:"))
	t.listing(cbOrder, 9)
	return nil
}

func cmdAbout(t *Terminal, _ commands.Invocation) Task {
	t.display.WriteLine(t.palette.Accent.Render(content.Owner.Name))
	t.display.WriteLine(content.Owner.Role)
	t.display.WriteLine(content.Owner.Tagline)
	return nil
}

func cmdSkills(t *Terminal, _ commands.Invocation) Task {
	t.section(content.Skills)
	return nil
}

func cmdProjects(t *Terminal, _ commands.Invocation) Task {
	t.section(content.Projects)
	return nil
}

func cmdContact(t *Terminal, _ commands.Invocation) Task {
	t.display.WriteLine(t.palette.Success.Render("Contact Information:"))
	t.display.WriteLine("Email: " + content.Owner.Email)
	t.display.WriteLine("GitHub: " + content.Owner.GitHub)
	t.display.WriteLine("LinkedIn: " + content.Owner.LinkedIn)
	return nil
}

func cmdClear(t *Terminal, _ commands.Invocation) Task {
	t.display.Clear()
	return nil
}

func cmdWhoami(t *Terminal, _ commands.Invocation) Task {
	t.display.WriteLine(t.palette.Accent.Render(content.Owner.User))
	t.display.WriteLine("User: " + content.Owner.Name)
	t.display.WriteLine("Role: " + content.Owner.Role)
	t.display.WriteLine("Status: " + content.Owner.Status)
	return nil
}

func cmdPwd(t *Terminal, _ commands.Invocation) Task {
	t.display.WriteLine(t.palette.Info.Render(t.opts.Cwd))
	return nil
}

func cmdLs(t *Terminal, _ commands.Invocation) Task {
	t.display.WriteLine(t.palette.Success.Render("Files in current directory:"))
	for _, name := range content.FileNames() {
		style := t.palette.Info
		if strings.HasSuffix(name, ".txt") {
			style = t.palette.Warn
		}
		t.display.WriteLine(style.Render(name))
	}
	return nil
}

func cmdCat(t *Terminal, inv commands.Invocation) Task {
	if len(inv.Args) == 0 {
		t.display.WriteLine(t.palette.Error.Render("Usage: cat <filename>"))
		t.display.WriteLine("Available files: " + strings.Join(content.FileNames(), ", "))
		return nil
	}
	name := inv.Arg(0)
	f, ok := content.Lookup(name)
	if !ok {
		t.display.WriteLine(t.palette.Error.Render(fmt.Sprintf("cat: %s: No such file or directory", name)))
		return nil
	}
	t.section(f.Section)
	return nil
}

func cmdHistory(t *Terminal, _ commands.Invocation) Task {
	t.display.WriteLine(t.palette.Success.Render("Command History:"))
	for i, entry := range t.state.Ledger.Entries() {
		t.display.WriteLine(fmt.Sprintf("%d  %s", i+1, entry))
	}
	return nil
}

func cmdDate(t *Terminal, _ commands.Invocation) Task {
	t.display.WriteLine(t.palette.Warn.Render(t.sched.Now().Format(dateLayout)))
	return nil
}

func cmdUptime(t *Terminal, _ commands.Invocation) Task {
	up := t.sched.Now().Sub(t.state.MountedAt)
	if up < 0 {
		up = 0
	}
	secs := int(up / time.Second)
	t.display.WriteLine(t.palette.Success.Render(fmt.Sprintf("Portfolio uptime: %dm %ds", secs/60, secs%60)))
	t.display.WriteLine("System load: Optimized for maximum security! 🔒")
	return nil
}

func cmdFullscreen(t *Terminal, _ commands.Invocation) Task {
	t.display.WriteLine(t.palette.Warn.Render("Toggling fullscreen mode..."))
	t.host.ToggleFullscreen()
	return nil
}

func cmdDownload(t *Terminal, inv commands.Invocation) Task {
	if len(inv.Args) == 0 {
		t.display.WriteLine(t.palette.Warn.Render("Available downloads:") + " cv, resume")
		t.display.WriteLine("Usage: download <cv|resume>")
		return nil
	}
	choice := strings.ToLower(inv.Arg(0))
	switch choice {
	case "cv":
		t.display.WriteLine(t.palette.Success.Render("Downloading CV (PDF)..."))
		t.host.Download(Download{Kind: "cv", Name: t.opts.CVName, URL: t.opts.CVURL, ContentType: "application/pdf"})
	case "resume":
		t.display.WriteLine(t.palette.Success.Render("Downloading Resume (TXT)..."))
		t.host.Download(Download{
			Kind:        "resume",
			Name:        content.ResumeName,
			ContentType: "text/plain",
			Data:        []byte(content.Resume()),
		})
	default:
		t.display.WriteLine(t.palette.Error.Render("Unknown option: " + choice))
		t.display.WriteLine("Usage: download <cv|resume>")
	}
	return nil
}
