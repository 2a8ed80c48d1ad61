package commands

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Closest 返回与 token 模糊匹配得分最高的命令，供“Did you mean”提示使用。
// 受保护命令不参与匹配，避免在提示里暴露它们。
func (v *Vocabulary) Closest(token string) (Spec, bool) {
	token = strings.ToLower(strings.TrimSpace(token))
	if len([]rune(token)) < 2 {
		return Spec{}, false
	}
	candidates := make([]Spec, 0, len(v.specs))
	keys := make([]string, 0, len(v.specs))
	for _, s := range v.specs {
		if s.Protected || string(s.Name) == token {
			continue
		}
		candidates = append(candidates, s)
		keys = append(keys, string(s.Name))
	}
	results := fuzzy.Find(token, keys)
	if len(results) == 0 {
		return Spec{}, false
	}
	return candidates[results[0].Index], true
}
