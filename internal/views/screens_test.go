package views

import (
	"strings"
	"testing"
)

func TestRenderTodayPanelMarksSelectionAndState(t *testing.T) {
	out := RenderTodayPanel(TodayPanelData{
		DayKey:  "2024-01-02",
		IsToday: true,
		Sections: []SectionData{
			{Label: "Morning", Done: 1, Total: 2, Items: []ItemData{
				{ID: "a", Text: "Water", FromTemplate: true},
				{ID: "b", Text: "Stretch", Done: true},
			}},
			{Label: "Noon"},
		},
		SelectedID: "a",
	})
	if !strings.Contains(out, "today 2024-01-02") {
		t.Fatalf("missing day header: %q", out)
	}
	if !strings.Contains(out, "> [ ] Water *") {
		t.Fatalf("expected selected template item: %q", out)
	}
	if !strings.Contains(out, "  [x] Stretch") {
		t.Fatalf("expected done item: %q", out)
	}
	if !strings.Contains(out, "Noon 0/0") || !strings.Contains(out, "(none)") {
		t.Fatalf("expected empty noon section: %q", out)
	}
}

func TestRenderTodayPanelHistoryDay(t *testing.T) {
	out := RenderTodayPanel(TodayPanelData{DayKey: "2024-01-01"})
	if !strings.Contains(out, "history 2024-01-01") {
		t.Fatalf("expected history header: %q", out)
	}
}

func TestRenderTemplatesPanelCursor(t *testing.T) {
	out := RenderTemplatesPanel(TemplatesPanelData{
		Sections: []TemplateSectionData{
			{Label: "Morning", Entries: []string{"Water", "Read"}},
			{Label: "Noon", Entries: []string{"Walk", "Lunch"}, Selected: true},
		},
		Cursor: 1,
	})
	if !strings.Contains(out, "> Noon:") || !strings.Contains(out, "> 2. Lunch") {
		t.Fatalf("unexpected templates render: %q", out)
	}
	if strings.Contains(out, "> 2. Read") {
		t.Fatalf("cursor leaked into unselected bucket: %q", out)
	}
}

func TestHistoryMarkdownAndPanel(t *testing.T) {
	days := []HistoryDayData{
		{Key: "2024-01-02", Done: 1, Total: 3, Pct: 33, IsToday: true, IsActive: true},
		{Key: "2024-01-01", Done: 2, Total: 2, Pct: 100},
	}
	md := HistoryMarkdown(days)
	if !strings.Contains(md, "| 2024-01-01 | 2 | 2 | 100 |") {
		t.Fatalf("unexpected markdown: %q", md)
	}
	if HistoryMarkdown(nil) != "" {
		t.Fatal("expected empty markdown for no days")
	}

	out := RenderHistoryPanel(HistoryPanelData{Days: days, Cursor: 1})
	if !strings.Contains(out, "  2024-01-02 1/3 33% (today) (open)") {
		t.Fatalf("unexpected today row: %q", out)
	}
	if !strings.Contains(out, "> 2024-01-01 2/2 100%") {
		t.Fatalf("unexpected cursor row: %q", out)
	}
}

func TestRenderMarkdownEmpty(t *testing.T) {
	if RenderMarkdown("   ") != "" {
		t.Fatal("expected empty render for blank markdown")
	}
}
