package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/dayboard/internal/model"
	"github.com/sandeepkv93/dayboard/internal/views"
)

func (m Model) handleTodayKey(msg tea.KeyMsg) Model {
	items := m.Board.Snapshot().Ordered()
	switch msg.String() {
	case "up", "k":
		if m.Today.Cursor > 0 {
			m.Today.Cursor--
		}
	case "down", "j":
		if m.Today.Cursor < len(items)-1 {
			m.Today.Cursor++
		}
	case " ", "space", "x":
		if it, ok := m.currentTodayItem(items); ok && m.Board.Toggle(m.ctx, it.ID) {
			state := "open"
			if !it.Done {
				state = "done"
			}
			m.Status = StatusBar{Text: fmt.Sprintf("%s: %s", state, it.Text)}
		}
	case "d":
		if it, ok := m.currentTodayItem(items); ok && m.Board.Remove(m.ctx, it.ID) {
			m.Status = StatusBar{Text: fmt.Sprintf("removed: %s", it.Text)}
		}
	case "a":
		m.Today.Capturing = true
		if it, ok := m.currentTodayItem(items); ok {
			m.Today.CaptureBucket = it.Bucket
		}
		m.captureInput.SetValue("")
		m.captureInput.Focus()
	case "c":
		n := m.Board.ClearCompleted(m.ctx)
		m.Status = StatusBar{Text: fmt.Sprintf("cleared %d completed item(s)", n)}
	case "m":
		bucket := m.Today.CaptureBucket
		if it, ok := m.currentTodayItem(items); ok {
			bucket = it.Bucket
		}
		n := m.Board.MarkAllDone(m.ctx, bucket)
		m.Status = StatusBar{Text: fmt.Sprintf("marked %d %s item(s) done", n, bucket.Label())}
	case "R":
		n := m.Board.ResetToday(m.ctx)
		m.Today.Cursor = 0
		m.Status = StatusBar{Text: fmt.Sprintf("reset today to %d template item(s)", n)}
	case "T":
		n := m.Board.ApplyTemplatesToToday(m.ctx)
		m.Today.Cursor = 0
		m.Status = StatusBar{Text: fmt.Sprintf("applied templates: %d item(s)", n)}
	case "t":
		m.Board.OpenToday(m.ctx)
		m.Today.Cursor = 0
	}
	m.clampCursors()
	return m
}

func (m Model) handleCaptureKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.Today.Capturing = false
		m.captureInput.SetValue("")
		m.captureInput.Blur()
	case "tab":
		m.Today.CaptureBucket = nextBucket(m.Today.CaptureBucket)
	case "enter":
		text := m.captureInput.Value()
		if it, ok := m.Board.Add(m.ctx, text, m.Today.CaptureBucket); ok {
			m.Status = StatusBar{Text: fmt.Sprintf("added to %s: %s", it.Bucket.Label(), it.Text)}
		} else {
			m.Status = StatusBar{Text: "nothing to add", IsError: true}
		}
		m.Today.Capturing = false
		m.captureInput.SetValue("")
		m.captureInput.Blur()
	default:
		m.captureInput = typeInto(m.captureInput, msg)
	}
	return m
}

func (m Model) currentTodayItem(items []model.Item) (model.Item, bool) {
	if m.Today.Cursor < 0 || m.Today.Cursor >= len(items) {
		return model.Item{}, false
	}
	return items[m.Today.Cursor], true
}

func (m Model) renderTodayView() string {
	snap := m.Board.Snapshot()
	selectedID := ""
	if it, ok := m.currentTodayItem(snap.Ordered()); ok {
		selectedID = it.ID
	}

	data := views.TodayPanelData{
		DayKey:        snap.ActiveKey,
		IsToday:       snap.ViewingToday(),
		OverallView:   m.progressBar.ViewAs(ratio(snap.Overall)),
		OverallPct:    snap.Overall.Percent(),
		SelectedID:    selectedID,
		Capturing:     m.Today.Capturing,
		CaptureBucket: m.Today.CaptureBucket.Label(),
		CaptureView:   m.captureInput.View(),
	}
	for _, bv := range snap.Buckets {
		section := views.SectionData{
			Label:        bv.Bucket.Label(),
			Done:         bv.Progress.Done,
			Total:        bv.Progress.Total,
			ProgressView: m.progressBar.ViewAs(ratio(bv.Progress)),
		}
		for _, it := range bv.Items {
			section.Items = append(section.Items, views.ItemData{
				ID:           it.ID,
				Text:         it.Text,
				Done:         it.Done,
				FromTemplate: it.FromTemplate,
			})
		}
		data.Sections = append(data.Sections, section)
	}
	return views.RenderTodayPanel(data)
}
