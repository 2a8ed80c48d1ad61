package commands

import "strings"

// Name 表示词汇表中的命令名（统一小写）。
type Name string

// 内置命令集合，顺序即自动补全的优先顺序。
const (
	Help       Name = "help"
	About      Name = "about"
	Skills     Name = "skills"
	Projects   Name = "projects"
	Contact    Name = "contact"
	Refresh    Name = "refresh"
	Clear      Name = "clear"
	Whoami     Name = "whoami"
	Pwd        Name = "pwd"
	Ls         Name = "ls"
	Cat        Name = "cat"
	History    Name = "history"
	Date       Name = "date"
	Uptime     Name = "uptime"
	Theme      Name = "theme"
	Fontsize   Name = "fontsize"
	Fullscreen Name = "fullscreen"
	Download   Name = "download"

	// 需要提权前缀的命令。
	Hack    Name = "hack"
	Matrix  Name = "matrix"
	Scan    Name = "scan"
	Encrypt Name = "encrypt"
	Decode  Name = "decode"
	Ping    Name = "ping"
	Nmap    Name = "nmap"
	Exit    Name = "exit"

	Cb Name = "cb"
)

// ElevationMarker 是执行受保护命令所需的前缀。
const ElevationMarker = "sudo"

// Spec 描述一条命令。
type Spec struct {
	Name      Name
	Summary   string
	Protected bool
	// Pattern 命令把命令词之后的全部文本作为一个不透明参数。
	Pattern bool
}

// Vocabulary 是固定的命令词汇表，保持声明顺序。
type Vocabulary struct {
	specs []Spec
	index map[Name]int
}

// NewVocabulary 用给定顺序构造词汇表，重复名称只保留第一个。
func NewVocabulary(specs ...Spec) *Vocabulary {
	v := &Vocabulary{index: make(map[Name]int, len(specs))}
	for _, s := range specs {
		s.Name = Name(strings.ToLower(string(s.Name)))
		if _, dup := v.index[s.Name]; dup || s.Name == "" {
			continue
		}
		v.index[s.Name] = len(v.specs)
		v.specs = append(v.specs, s)
	}
	return v
}

// Default 返回终端的完整词汇表。
func Default() *Vocabulary {
	return NewVocabulary(
		Spec{Name: Help, Summary: "Show available commands"},
		Spec{Name: About, Summary: "Show information about me"},
		Spec{Name: Skills, Summary: "List my technical skills"},
		Spec{Name: Projects, Summary: "View my projects"},
		Spec{Name: Contact, Summary: "Get contact information"},
		Spec{Name: Refresh, Summary: "Refresh the page"},
		Spec{Name: Clear, Summary: "Clear terminal"},
		Spec{Name: Whoami, Summary: "Display current user info"},
		Spec{Name: Pwd, Summary: "Show current directory"},
		Spec{Name: Ls, Summary: "List available files"},
		Spec{Name: Cat, Summary: "Display file content (cat <filename>)"},
		Spec{Name: History, Summary: "Show command history"},
		Spec{Name: Date, Summary: "Display current date/time"},
		Spec{Name: Uptime, Summary: "Show portfolio uptime"},
		Spec{Name: Theme, Summary: "Change terminal theme"},
		Spec{Name: Fontsize, Summary: "Adjust font size"},
		Spec{Name: Fullscreen, Summary: "Toggle fullscreen"},
		Spec{Name: Download, Summary: "Download your cv or resume"},
		Spec{Name: Hack, Summary: "Simulate a hacking sequence", Protected: true},
		Spec{Name: Matrix, Summary: "Matrix-style effect", Protected: true},
		Spec{Name: Scan, Summary: "Fake network scan", Protected: true},
		Spec{Name: Encrypt, Summary: "Base64 encrypt text", Protected: true, Pattern: true},
		Spec{Name: Decode, Summary: "Base64 decode text", Protected: true, Pattern: true},
		Spec{Name: Ping, Summary: "Simulate ping command", Protected: true, Pattern: true},
		Spec{Name: Nmap, Summary: "Fake nmap port scan", Protected: true, Pattern: true},
		Spec{Name: Exit, Summary: "Exit the browser", Protected: true},
		Spec{Name: Cb, Summary: "List cybersecurity commands"},
	)
}

// Specs 返回全部命令，按声明顺序。
func (v *Vocabulary) Specs() []Spec {
	return append([]Spec(nil), v.specs...)
}

// Names 返回全部命令名，按声明顺序。
func (v *Vocabulary) Names() []string {
	out := make([]string, 0, len(v.specs))
	for _, s := range v.specs {
		out = append(out, string(s.Name))
	}
	return out
}

// Lookup 大小写不敏感地精确查找命令。
func (v *Vocabulary) Lookup(name string) (Spec, bool) {
	idx, ok := v.index[Name(strings.ToLower(strings.TrimSpace(name)))]
	if !ok {
		return Spec{}, false
	}
	return v.specs[idx], true
}

// IsProtected 报告命令是否需要提权前缀。
func (v *Vocabulary) IsProtected(name string) bool {
	s, ok := v.Lookup(name)
	return ok && s.Protected
}

// Protected 返回所有受保护命令，按声明顺序。
func (v *Vocabulary) Protected() []Spec {
	var out []Spec
	for _, s := range v.specs {
		if s.Protected {
			out = append(out, s)
		}
	}
	return out
}
