package commands

import (
	"strings"
	"unicode"
)

// Invocation 是一行输入解析后的结果。
type Invocation struct {
	Raw      string
	Name     Name
	Token    string // 原样的命令词
	Args     []string
	Elevated bool
	// Opaque 是命令词后（跳过空白）的原始文本，仅对 Pattern 命令有意义。
	Opaque string
}

// Empty 表示没有可执行的命令词。
func (inv Invocation) Empty() bool {
	return inv.Token == ""
}

// Arg 返回第 i 个参数，不存在时返回空串。
func (inv Invocation) Arg(i int) string {
	if i < 0 || i >= len(inv.Args) {
		return ""
	}
	return inv.Args[i]
}

// Parse 按空白切分输入。首个词为提权前缀时，第二个词是命令名，其余为参数。
func Parse(raw string) Invocation {
	raw = strings.TrimSpace(raw)
	inv := Invocation{Raw: raw}
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return inv
	}
	rest := raw
	if strings.EqualFold(fields[0], ElevationMarker) {
		inv.Elevated = true
		fields = fields[1:]
		rest = skipWord(rest)
	}
	if len(fields) == 0 {
		return inv
	}
	inv.Token = fields[0]
	inv.Name = Name(strings.ToLower(fields[0]))
	inv.Args = append([]string(nil), fields[1:]...)
	inv.Opaque = opaqueAfter(rest, inv.Token)
	return inv
}

// skipWord 去掉第一个词及其后的空白。
func skipWord(s string) string {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	if idx := strings.IndexFunc(s, unicode.IsSpace); idx >= 0 {
		return strings.TrimLeftFunc(s[idx:], unicode.IsSpace)
	}
	return ""
}

// opaqueAfter 要求命令词后紧跟空白，返回其后的全部文本。
func opaqueAfter(line, word string) string {
	if !strings.HasPrefix(line, word) {
		return ""
	}
	tail := line[len(word):]
	if tail == "" {
		return ""
	}
	r := []rune(tail)[0]
	if !unicode.IsSpace(r) {
		return ""
	}
	return strings.TrimLeftFunc(tail, unicode.IsSpace)
}
