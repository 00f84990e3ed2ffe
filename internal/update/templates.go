package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/dayboard/internal/model"
	"github.com/sandeepkv93/dayboard/internal/views"
)

func (m Model) handleTemplatesKey(msg tea.KeyMsg) Model {
	entries := m.Board.Templates()[m.Templates.Bucket]
	switch msg.String() {
	case "up", "k":
		if m.Templates.Cursor > 0 {
			m.Templates.Cursor--
		}
	case "down", "j":
		if m.Templates.Cursor < len(entries)-1 {
			m.Templates.Cursor++
		}
	case "tab":
		m.Templates.Bucket = nextBucket(m.Templates.Bucket)
		m.Templates.Cursor = 0
	case "a":
		m.Templates.Capturing = true
		m.captureInput.SetValue("")
		m.captureInput.Focus()
	case "d":
		if m.Templates.Cursor < len(entries) && m.Board.RemoveTemplate(m.ctx, m.Templates.Bucket, m.Templates.Cursor) {
			m.Status = StatusBar{Text: fmt.Sprintf("removed template: %s", entries[m.Templates.Cursor])}
		}
	}
	m.clampCursors()
	return m
}

func (m Model) handleTemplateCaptureKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.Templates.Capturing = false
		m.captureInput.SetValue("")
		m.captureInput.Blur()
	case "enter":
		text := m.captureInput.Value()
		if m.Board.AddTemplate(m.ctx, m.Templates.Bucket, text) {
			m.Templates.Cursor = 0
			m.Status = StatusBar{Text: fmt.Sprintf("template added to %s", m.Templates.Bucket.Label())}
		} else {
			m.Status = StatusBar{Text: "nothing to add", IsError: true}
		}
		m.Templates.Capturing = false
		m.captureInput.SetValue("")
		m.captureInput.Blur()
	default:
		m.captureInput = typeInto(m.captureInput, msg)
	}
	return m
}

func (m Model) renderTemplatesView() string {
	tpl := m.Board.Templates()
	data := views.TemplatesPanelData{
		Cursor:      m.Templates.Cursor,
		Capturing:   m.Templates.Capturing,
		CaptureView: m.captureInput.View(),
	}
	for _, b := range model.Buckets {
		data.Sections = append(data.Sections, views.TemplateSectionData{
			Label:    b.Label(),
			Entries:  tpl[b],
			Selected: b == m.Templates.Bucket,
		})
	}
	return views.RenderTemplatesPanel(data)
}
