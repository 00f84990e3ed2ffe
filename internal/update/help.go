package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"

	"github.com/sandeepkv93/dayboard/internal/daybook"
	"github.com/sandeepkv93/dayboard/internal/views"
)

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	return m.renderHelpView()
}

func (m Model) renderHelpView() string {
	bindings := m.helpBindings()
	var plain []string
	for _, kb := range m.tabBindings() {
		plain = append(plain, fmt.Sprintf("- %s: %s", kb.Key, kb.Action))
	}
	m.helpModel.ShowAll = true
	return views.RenderHelpPanel(views.HelpPanelData{
		CurrentTab: string(m.Board.Tab()),
		Bindings:   plain,
		HelpView: m.helpModel.View(helpKeyMap{
			short: bindings,
			full:  [][]key.Binding{m.asKeyBindings(m.globalBindings()), m.asKeyBindings(m.tabBindings())},
		}),
	})
}

func (m Model) globalBindings() []KeyBinding {
	return []KeyBinding{
		{Key: m.Keys.Today, Action: "today"},
		{Key: m.Keys.Templates, Action: "templates"},
		{Key: m.Keys.History, Action: "history"},
		{Key: "/", Action: "command palette"},
		{Key: m.Keys.Help, Action: "toggle help"},
		{Key: m.Keys.Quit, Action: "quit"},
	}
}

func (m Model) tabBindings() []KeyBinding {
	switch m.Board.Tab() {
	case daybook.TabTemplates:
		return []KeyBinding{
			{Key: "j/k", Action: "move"},
			{Key: "tab", Action: "next bucket"},
			{Key: "a", Action: "add template"},
			{Key: "d", Action: "remove template"},
		}
	case daybook.TabHistory:
		return []KeyBinding{
			{Key: "j/k", Action: "move"},
			{Key: "enter", Action: "open day"},
		}
	default:
		return []KeyBinding{
			{Key: "j/k", Action: "move"},
			{Key: "space", Action: "toggle done"},
			{Key: "a", Action: "add item"},
			{Key: "d", Action: "remove item"},
			{Key: "c", Action: "clear completed"},
			{Key: "m", Action: "mark bucket done"},
			{Key: "R", Action: "reset today"},
			{Key: "T", Action: "apply templates"},
			{Key: "t", Action: "back to today"},
		}
	}
}

func (m Model) asKeyBindings(in []KeyBinding) []key.Binding {
	out := make([]key.Binding, 0, len(in))
	for _, kb := range in {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	return out
}

func (m Model) helpBindings() []key.Binding {
	return append(m.asKeyBindings(m.globalBindings()), m.asKeyBindings(m.tabBindings())...)
}
