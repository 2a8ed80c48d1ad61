// Package suggest proposes ghost-text completions for the command name being
// typed. Only the first token is ever completed.
package suggest

import (
	"strings"
)

// Engine matches the first token of the input against a fixed word list.
type Engine struct {
	words []string
}

// New builds an engine; words keep their order, which decides ties.
func New(words []string) *Engine {
	lowered := make([]string, 0, len(words))
	for _, w := range words {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			lowered = append(lowered, w)
		}
	}
	return &Engine{words: lowered}
}

// Suggest returns the characters that would complete the first token of
// buffer, or "" when nothing applies. cursor is the rune offset of the logical
// cursor; once it moves past the first token no suggestion is offered.
func (e *Engine) Suggest(buffer string, cursor int) string {
	if e == nil {
		return ""
	}
	trimmed := strings.TrimSpace(buffer)
	if trimmed == "" {
		return ""
	}
	token := strings.ToLower(strings.Fields(trimmed)[0])
	tokenLen := len([]rune(token))
	if cursor > tokenLen {
		return ""
	}
	match := e.firstMatch(token)
	if match == "" {
		return ""
	}
	return string([]rune(match)[tokenLen:])
}

func (e *Engine) firstMatch(token string) string {
	for _, w := range e.words {
		if w != token && strings.HasPrefix(w, token) {
			return w
		}
	}
	return ""
}
