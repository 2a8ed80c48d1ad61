package history

import "strings"

// Ledger 记录本次会话提交过的命令，并维护上下箭头的回溯位置。
// cursor == len(entries) 表示当前不在回溯状态。
type Ledger struct {
	entries []string
	cursor  int
}

// NewLedger 返回空的 Ledger。
func NewLedger() *Ledger {
	return &Ledger{}
}

// Add 追加一条非空命令（去除首尾空白），允许重复，并重置回溯位置。
func (l *Ledger) Add(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	l.entries = append(l.entries, text)
	l.cursor = len(l.entries)
	return true
}

// Entries 返回所有命令的副本，按提交顺序排列。
func (l *Ledger) Entries() []string {
	return append([]string(nil), l.entries...)
}

func (l *Ledger) Len() int {
	return len(l.entries)
}

// Cursor 返回当前回溯位置。
func (l *Ledger) Cursor() int {
	return l.cursor
}

// Browsing 表示是否正在回溯历史。
func (l *Ledger) Browsing() bool {
	return l.cursor < len(l.entries)
}

// ResetBrowsing 将回溯位置移回末尾之后。
func (l *Ledger) ResetBrowsing() {
	l.cursor = len(l.entries)
}

// Prev 回到上一条命令；已在最早一条时返回 false。
func (l *Ledger) Prev() (string, bool) {
	if l.cursor <= 0 {
		return "", false
	}
	l.cursor--
	return l.entries[l.cursor], true
}

// Next 前进到下一条命令。越过最后一条时返回空串（清空输入），
// 已在末尾之后时返回 false。
func (l *Ledger) Next() (string, bool) {
	last := len(l.entries) - 1
	switch {
	case l.cursor < last:
		l.cursor++
		return l.entries[l.cursor], true
	case l.cursor == last:
		l.cursor++
		return "", true
	default:
		return "", false
	}
}
