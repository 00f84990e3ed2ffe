package update

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/dayboard/internal/model"
)

func escapeAppleScript(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}

func nextBucket(b model.Bucket) model.Bucket {
	for i, candidate := range model.Buckets {
		if candidate == b {
			return model.Buckets[(i+1)%len(model.Buckets)]
		}
	}
	return model.Buckets[0]
}

func ratio(p model.Progress) float64 {
	if p.Total == 0 {
		return 0
	}
	return float64(p.Done) / float64(p.Total)
}

// typeInto feeds a key to a text input. Rune batches are inserted at the
// cursor in one update so pasted text lands whole, truncated to CharLimit.
func typeInto(in textinput.Model, msg tea.KeyMsg) textinput.Model {
	var add []rune
	switch msg.Type {
	case tea.KeyRunes:
		add = msg.Runes
	case tea.KeySpace:
		add = []rune{' '}
	default:
		next, _ := in.Update(msg)
		return next
	}

	value := []rune(in.Value())
	if in.CharLimit > 0 {
		room := in.CharLimit - len(value)
		if room <= 0 {
			return in
		}
		if len(add) > room {
			add = add[:room]
		}
	}
	pos := min(max(in.Position(), 0), len(value))
	out := make([]rune, 0, len(value)+len(add))
	out = append(out, value[:pos]...)
	out = append(out, add...)
	out = append(out, value[pos:]...)
	in.SetValue(string(out))
	in.SetCursor(pos + len(add))
	return in
}

func (m *Model) clampCursors() {
	items := len(m.Board.Snapshot().Ordered())
	m.Today.Cursor = clamp(m.Today.Cursor, items)
	m.Templates.Cursor = clamp(m.Templates.Cursor, len(m.Board.Templates()[m.Templates.Bucket]))
	m.History.Cursor = clamp(m.History.Cursor, len(m.Board.History()))
}

func clamp(cursor, n int) int {
	if cursor >= n {
		cursor = n - 1
	}
	if cursor < 0 {
		cursor = 0
	}
	return cursor
}
