package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/dayboard/internal/daybook"
	"github.com/sandeepkv93/dayboard/internal/views"
)

func (m Model) handleHistoryKey(msg tea.KeyMsg) Model {
	days := m.Board.History()
	switch msg.String() {
	case "up", "k":
		if m.History.Cursor > 0 {
			m.History.Cursor--
		}
	case "down", "j":
		if m.History.Cursor < len(days)-1 {
			m.History.Cursor++
		}
	case "enter":
		if m.History.Cursor < len(days) {
			key := days[m.History.Cursor].Key
			if key == m.Board.TodayKey() {
				m.Board.OpenToday(m.ctx)
			} else if err := m.Board.OpenHistoryDay(key); err != nil {
				m.Status = StatusBar{Text: err.Error(), IsError: true}
				return m
			}
			m.Board.SetTab(daybook.TabToday)
			m.Today.Cursor = 0
			m.Status = StatusBar{Text: fmt.Sprintf("opened %s", key)}
		}
	}
	return m
}

func historyData(days []daybook.DaySummary) []views.HistoryDayData {
	out := make([]views.HistoryDayData, 0, len(days))
	for _, d := range days {
		out = append(out, views.HistoryDayData{
			Key:      d.Key,
			Done:     d.Progress.Done,
			Total:    d.Progress.Total,
			Pct:      d.Progress.Percent(),
			IsToday:  d.IsToday,
			IsActive: d.IsActive,
		})
	}
	return out
}

// refreshHistoryView re-renders the markdown summary into the viewport.
func (m *Model) refreshHistoryView() {
	m.historyViewport.SetContent(views.RenderMarkdown(views.HistoryMarkdown(historyData(m.Board.History()))))
}

func (m Model) renderHistoryView() string {
	return views.RenderHistoryPanel(views.HistoryPanelData{
		Days:         historyData(m.Board.History()),
		Cursor:       m.History.Cursor,
		MarkdownView: m.historyViewport.View(),
	})
}
