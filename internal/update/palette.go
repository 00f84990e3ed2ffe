package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/dayboard/internal/commands"
	"github.com/sandeepkv93/dayboard/internal/daybook"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		m.Status = StatusBar{Text: "command palette closed"}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		m = m.executePaletteCommand()
	default:
		m.commandInput = typeInto(m.commandInput, msg)
		m.Palette.Input = m.commandInput.Value()
	}
	return m
}

func (m Model) executePaletteCommand() Model {
	raw := strings.TrimSpace(m.Palette.Input)
	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m.closePalette()
	}

	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			it, ok := m.Board.Add(m.ctx, a.Text, a.Bucket)
			if !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "item text is empty"}
			}
			m.Board.SetTab(daybook.TabToday)
			return commands.Result{Message: fmt.Sprintf("added to %s: %s", it.Bucket.Label(), it.Text)}, nil
		},
		Template: func(a commands.TemplateArgs) (commands.Result, error) {
			if !m.Board.AddTemplate(m.ctx, a.Bucket, a.Text) {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "template text is empty"}
			}
			return commands.Result{Message: fmt.Sprintf("template added to %s", a.Bucket.Label())}, nil
		},
		Untemplate: func(a commands.UntemplateArgs) (commands.Result, error) {
			if !m.Board.RemoveTemplate(m.ctx, a.Bucket, a.Index) {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no %s template at position %d", a.Bucket.Label(), a.Index+1)}
			}
			return commands.Result{Message: fmt.Sprintf("template removed from %s", a.Bucket.Label())}, nil
		},
		Done: func(a commands.DoneArgs) (commands.Result, error) {
			n := m.Board.MarkAllDone(m.ctx, a.Bucket)
			return commands.Result{Message: fmt.Sprintf("marked %d %s item(s) done", n, a.Bucket.Label())}, nil
		},
		Clear: func() (commands.Result, error) {
			n := m.Board.ClearCompleted(m.ctx)
			return commands.Result{Message: fmt.Sprintf("cleared %d completed item(s)", n)}, nil
		},
		Reset: func() (commands.Result, error) {
			n := m.Board.ResetToday(m.ctx)
			m.Board.SetTab(daybook.TabToday)
			return commands.Result{Message: fmt.Sprintf("reset today to %d template item(s)", n)}, nil
		},
		Apply: func() (commands.Result, error) {
			n := m.Board.ApplyTemplatesToToday(m.ctx)
			return commands.Result{Message: fmt.Sprintf("applied templates: %d item(s)", n)}, nil
		},
		Open: func(a commands.OpenArgs) (commands.Result, error) {
			if a.Day == "today" || a.Day == m.Board.TodayKey() {
				m.Board.OpenToday(m.ctx)
			} else if err := m.Board.OpenHistoryDay(a.Day); err != nil {
				return commands.Result{}, err
			}
			m.Board.SetTab(daybook.TabToday)
			return commands.Result{Message: fmt.Sprintf("opened %s", m.Board.ActiveKey())}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.notify("Command Failed", err.Error(), "error")
	} else {
		m.Status = StatusBar{Text: res.Message}
		m.notify("Command", res.Message, "info")
	}
	m.Today.Cursor = 0
	m.clampCursors()
	m.refreshHistoryView()
	return m.closePalette()
}

func (m Model) closePalette() Model {
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Blur()
	return m
}
