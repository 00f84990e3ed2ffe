package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/dayboard/internal/scheduler"
)

func waitForPollCmd(ch <-chan scheduler.PollEvent) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return RolloverPollMsg{Event: ev}
	}
}

func (m Model) onRolloverPoll() Model {
	r := m.Board.CheckRollover(m.ctx)
	if !r.Changed {
		return m
	}
	m.clampCursors()
	m.refreshHistoryView()

	body := fmt.Sprintf("new day %s: %d item(s) ready", r.To, r.Items)
	if !r.Switched {
		body = fmt.Sprintf("new day %s started; still viewing %s", r.To, m.Board.ActiveKey())
	}
	m.Status = StatusBar{Text: body}
	m.notify("Day rolled over", body, "info")
	return m
}
