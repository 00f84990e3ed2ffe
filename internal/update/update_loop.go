package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/dayboard/internal/daybook"
	"github.com/sandeepkv93/dayboard/internal/views"
)

func (m Model) Init() tea.Cmd {
	if m.Poller != nil {
		return waitForPollCmd(m.Poller.C())
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if m.Palette.Active {
			return m.handlePaletteKey(typed), nil
		}
		if m.Today.Capturing {
			return m.handleCaptureKey(typed), nil
		}
		if m.Templates.Capturing {
			return m.handleTemplateCaptureKey(typed), nil
		}

		switch typed.String() {
		case "/":
			m.Palette.Active = true
			m.Palette.Input = ""
			m.commandInput.SetValue("")
			m.commandInput.Focus()
			m.Status = StatusBar{Text: "command palette active"}
			return m, nil
		case m.Keys.Today:
			m.Board.SetTab(daybook.TabToday)
			return m, nil
		case m.Keys.Templates:
			m.Board.SetTab(daybook.TabTemplates)
			return m, nil
		case m.Keys.History:
			m.Board.SetTab(daybook.TabHistory)
			m.refreshHistoryView()
			return m, nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			return m, nil
		case "ctrl+c", m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		}

		switch m.Board.Tab() {
		case daybook.TabTemplates:
			return m.handleTemplatesKey(typed), nil
		case daybook.TabHistory:
			return m.handleHistoryKey(typed), nil
		default:
			return m.handleTodayKey(typed), nil
		}
	case tea.FocusMsg:
		// Terminal regained focus; check for a new day without waiting for the timer.
		if m.Poller != nil {
			m.Poller.Poke()
		}
		return m, nil
	case RolloverPollMsg:
		m = m.onRolloverPoll()
		if m.Poller != nil {
			return m, waitForPollCmd(m.Poller.C())
		}
		return m, nil
	case SwitchTabMsg:
		if typed.Tab.IsValid() {
			m.Board.SetTab(typed.Tab)
			m.refreshHistoryView()
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
			m.notify("Error", typed.Err.Error(), "error")
		}
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	tab := m.Board.Tab()
	pane := ""
	activeTab := 0
	switch tab {
	case daybook.TabTemplates:
		pane = m.renderTemplatesView()
		activeTab = 1
	case daybook.TabHistory:
		pane = m.renderHistoryView()
		activeTab = 2
	default:
		pane = m.renderTodayView()
	}
	side := strings.TrimSpace(strings.Join([]string{m.renderCommandPalette(), m.renderHelpIfVisible()}, "\n"))

	return views.RenderApp(views.AppData{
		Header:       fmt.Sprintf("dayboard | today: %s | open: %s", m.Board.TodayKey(), m.Board.ActiveKey()),
		Tabs:         []string{m.Keys.Today + " today", m.Keys.Templates + " templates", m.Keys.History + " history"},
		ActiveTab:    activeTab,
		MainPane:     pane,
		SidePane:     side,
		StatusLine:   status,
		StatusError:  m.Status.IsError,
		Notification: m.renderNotificationsView(),
		Footer:       fmt.Sprintf("keys: %s today | %s templates | %s history | / cmd | %s help | %s quit", m.Keys.Today, m.Keys.Templates, m.Keys.History, m.Keys.Help, m.Keys.Quit),
	})
}
