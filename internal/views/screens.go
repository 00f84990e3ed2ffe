package views

import (
	"fmt"
	"strings"
)

type ItemData struct {
	ID           string
	Text         string
	Done         bool
	FromTemplate bool
}

type SectionData struct {
	Label        string
	Done         int
	Total        int
	ProgressView string
	Items        []ItemData
}

type TodayPanelData struct {
	DayKey        string
	IsToday       bool
	OverallView   string
	OverallPct    int
	Sections      []SectionData
	SelectedID    string
	Capturing     bool
	CaptureBucket string
	CaptureView   string
}

type TemplateSectionData struct {
	Label    string
	Entries  []string
	Selected bool
}

type TemplatesPanelData struct {
	Sections    []TemplateSectionData
	Cursor      int
	Capturing   bool
	CaptureView string
}

type HistoryDayData struct {
	Key      string
	Done     int
	Total    int
	Pct      int
	IsToday  bool
	IsActive bool
}

type HistoryPanelData struct {
	Days         []HistoryDayData
	Cursor       int
	MarkdownView string
}

type HelpPanelData struct {
	CurrentTab string
	Bindings   []string
	HelpView   string
}

func RenderTodayPanel(data TodayPanelData) string {
	var b strings.Builder
	if data.IsToday {
		b.WriteString(fmt.Sprintf("today %s:\n", data.DayKey))
	} else {
		b.WriteString(fmt.Sprintf("history %s ([t] back to today):\n", data.DayKey))
	}
	b.WriteString(fmt.Sprintf("overall: %s %d%%\n", data.OverallView, data.OverallPct))
	if data.Capturing {
		b.WriteString(fmt.Sprintf("add to %s [tab]bucket [enter]save [esc]cancel\n", data.CaptureBucket))
		b.WriteString(data.CaptureView + "\n")
	} else {
		b.WriteString("actions: [space]toggle [a]add [d]delete [c]clear [m]all-done [R]reset [T]templates\n")
	}
	for _, section := range data.Sections {
		renderSection(&b, section, data.SelectedID)
	}
	return strings.TrimSpace(b.String())
}

func renderSection(b *strings.Builder, section SectionData, selectedID string) {
	b.WriteString(fmt.Sprintf("\n%s %d/%d %s\n", section.Label, section.Done, section.Total, section.ProgressView))
	if len(section.Items) == 0 {
		b.WriteString("  (none)\n")
		return
	}
	for _, item := range section.Items {
		cursor := " "
		if item.ID == selectedID {
			cursor = ">"
		}
		box := "[ ]"
		if item.Done {
			box = "[x]"
		}
		marker := ""
		if item.FromTemplate {
			marker = " *"
		}
		b.WriteString(fmt.Sprintf("%s %s %s%s\n", cursor, box, item.Text, marker))
	}
}

func RenderTemplatesPanel(data TemplatesPanelData) string {
	var b strings.Builder
	b.WriteString("templates:\n")
	if data.Capturing {
		b.WriteString("new template [enter]save [esc]cancel\n")
		b.WriteString(data.CaptureView + "\n")
	} else {
		b.WriteString("actions: [tab]bucket [a]add [d]delete [j/k]move\n")
	}
	for _, section := range data.Sections {
		title := section.Label
		if section.Selected {
			title = "> " + title
		}
		b.WriteString(fmt.Sprintf("\n%s:\n", title))
		if len(section.Entries) == 0 {
			b.WriteString("  (none)\n")
			continue
		}
		for i, entry := range section.Entries {
			cursor := " "
			if section.Selected && i == data.Cursor {
				cursor = ">"
			}
			b.WriteString(fmt.Sprintf("%s %d. %s\n", cursor, i+1, entry))
		}
	}
	return strings.TrimSpace(b.String())
}

func RenderHistoryPanel(data HistoryPanelData) string {
	var b strings.Builder
	b.WriteString("history:\n")
	b.WriteString("actions: [j/k]move [enter]open day\n")
	if len(data.Days) == 0 {
		b.WriteString("(no days recorded)")
		return b.String()
	}
	for i, day := range data.Days {
		cursor := " "
		if i == data.Cursor {
			cursor = ">"
		}
		flags := ""
		if day.IsToday {
			flags += " (today)"
		}
		if day.IsActive {
			flags += " (open)"
		}
		b.WriteString(fmt.Sprintf("%s %s %d/%d %d%%%s\n", cursor, day.Key, day.Done, day.Total, day.Pct, flags))
	}
	if data.MarkdownView != "" {
		b.WriteString("\n" + data.MarkdownView)
	}
	return strings.TrimSpace(b.String())
}

// HistoryMarkdown builds the summary table shown under the history list.
func HistoryMarkdown(days []HistoryDayData) string {
	if len(days) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("| Day | Done | Total | % |\n")
	b.WriteString("|-----|------|-------|---|\n")
	for _, day := range days {
		b.WriteString(fmt.Sprintf("| %s | %d | %d | %d |\n", day.Key, day.Done, day.Total, day.Pct))
	}
	return b.String()
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

func RenderNotification(level string, body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	return fmt.Sprintf("notification: [%s] %s", strings.ToUpper(level), body)
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help (%s):\n%s\n%s",
		strings.ToLower(data.CurrentTab),
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
}
