package commands

import (
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	cases := []struct {
		raw      string
		name     Name
		args     []string
		elevated bool
		opaque   string
	}{
		{raw: "", name: ""},
		{raw: "  ls  ", name: Ls},
		{raw: "CAT about.txt", name: Cat, args: []string{"about.txt"}, opaque: "about.txt"},
		{raw: "sudo matrix", name: Matrix, elevated: true},
		{raw: "SUDO  encrypt  hello   world", name: Encrypt, args: []string{"hello", "world"}, elevated: true, opaque: "hello   world"},
		{raw: "sudo", name: "", elevated: true},
		{raw: "encrypt", name: Encrypt},
		{raw: "ping\t8.8.8.8", name: Ping, args: []string{"8.8.8.8"}, opaque: "8.8.8.8"},
	}
	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			inv := Parse(tc.raw)
			if inv.Name != tc.name {
				t.Fatalf("name = %q want %q", inv.Name, tc.name)
			}
			if inv.Elevated != tc.elevated {
				t.Fatalf("elevated = %v want %v", inv.Elevated, tc.elevated)
			}
			if strings.Join(inv.Args, "|") != strings.Join(tc.args, "|") {
				t.Fatalf("args = %q want %q", inv.Args, tc.args)
			}
			if inv.Opaque != tc.opaque {
				t.Fatalf("opaque = %q want %q", inv.Opaque, tc.opaque)
			}
		})
	}
}

func TestInvocationArg(t *testing.T) {
	inv := Parse("download cv extra")
	if inv.Arg(0) != "cv" || inv.Arg(1) != "extra" || inv.Arg(2) != "" || inv.Arg(-1) != "" {
		t.Fatalf("unexpected args: %q", inv.Args)
	}
	if !Parse("   ").Empty() {
		t.Fatalf("blank line should be empty")
	}
}

func TestDefaultVocabulary(t *testing.T) {
	v := Default()
	names := v.Names()
	if names[0] != "help" || names[len(names)-1] != "cb" {
		t.Fatalf("unexpected order: %v", names)
	}
	var protected []string
	for _, s := range v.Protected() {
		protected = append(protected, string(s.Name))
	}
	if got := strings.Join(protected, ","); got != "hack,matrix,scan,encrypt,decode,ping,nmap,exit" {
		t.Fatalf("protected = %s", got)
	}
	if !v.IsProtected("MATRIX") {
		t.Fatalf("lookup should be case-insensitive")
	}
	if v.IsProtected("ls") || v.IsProtected("nope") {
		t.Fatalf("ls/nope should not be protected")
	}
	s, ok := v.Lookup("Encrypt")
	if !ok || !s.Pattern {
		t.Fatalf("encrypt should be a pattern command: %+v", s)
	}
}

func TestNewVocabularyDropsDuplicates(t *testing.T) {
	v := NewVocabulary(Spec{Name: "Help"}, Spec{Name: "help", Summary: "dup"}, Spec{Name: ""})
	if got := v.Names(); len(got) != 1 || got[0] != "help" {
		t.Fatalf("names = %v", got)
	}
}

func TestClosest(t *testing.T) {
	v := Default()
	s, ok := v.Closest("projcts")
	if !ok || s.Name != Projects {
		t.Fatalf("Closest(projcts) = %+v, %v", s, ok)
	}
	if _, ok := v.Closest("x"); ok {
		t.Fatalf("single-rune tokens should not match")
	}
	if s, ok := v.Closest("mtrx"); ok && s.Protected {
		t.Fatalf("protected commands must not be suggested: %+v", s)
	}
}
