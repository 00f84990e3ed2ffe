package model

import (
	"fmt"
	"reflect"
	"testing"
	"time"
)

func TestExpandOrderAndSharedTimestamp(t *testing.T) {
	now := time.Date(2024, 1, 2, 6, 0, 0, 0, time.UTC)
	items := Expand(Templates{
		BucketEvening: {"C"},
		BucketMorning: {"A", "  "},
		BucketNoon:    {"B"},
	}, now, seqIDs())

	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	for i, want := range []string{"A", "B", "C"} {
		if items[i].Text != want {
			t.Fatalf("item %d text = %q, want %q", i, items[i].Text, want)
		}
		if !items[i].FromTemplate || items[i].Done {
			t.Fatalf("unexpected flags on %#v", items[i])
		}
		if items[i].CreatedAt != now.UnixMilli() {
			t.Fatalf("expected shared createdAt, got %d", items[i].CreatedAt)
		}
	}
	if items[0].ID == items[1].ID {
		t.Fatal("expected distinct ids")
	}
}

func TestPruneKeepsNewestKeys(t *testing.T) {
	days := map[string][]Item{}
	for d := 1; d <= 10; d++ {
		days[fmt.Sprintf("2024-01-%02d", d)] = nil
	}
	days["2023-12-31"] = nil

	got := Prune(days, 7)
	if len(got) != 7 {
		t.Fatalf("expected 7 days, got %d", len(got))
	}
	for d := 4; d <= 10; d++ {
		if _, ok := got[fmt.Sprintf("2024-01-%02d", d)]; !ok {
			t.Fatalf("expected 2024-01-%02d to be retained", d)
		}
	}
	if len(days) != 11 {
		t.Fatalf("input mutated, len=%d", len(days))
	}

	small := map[string][]Item{"2024-01-01": nil, "2024-01-02": nil}
	if got := Prune(small, 0); len(got) != 2 {
		t.Fatalf("expected all days kept, got %d", len(got))
	}
}

func TestTemplatesAddRemove(t *testing.T) {
	tpl := EmptyTemplates()
	if tpl.Add(BucketNoon, "   ") {
		t.Fatal("expected empty template to be rejected")
	}
	if len(tpl[BucketNoon]) != 0 {
		t.Fatalf("expected empty noon list, got %#v", tpl[BucketNoon])
	}

	tpl.Add(BucketNoon, "first")
	tpl.Add(BucketNoon, " second ")
	if !reflect.DeepEqual(tpl[BucketNoon], []string{"second", "first"}) {
		t.Fatalf("expected newest first, got %#v", tpl[BucketNoon])
	}

	if tpl.Remove(BucketNoon, 5) || tpl.Remove(BucketNoon, -1) {
		t.Fatal("expected out-of-range removal to be ignored")
	}
	if !tpl.Remove(BucketNoon, 0) || !reflect.DeepEqual(tpl[BucketNoon], []string{"first"}) {
		t.Fatalf("unexpected list after remove: %#v", tpl[BucketNoon])
	}
}

func TestDisplayOrderAndProgress(t *testing.T) {
	items := []Item{
		{ID: "old-open", CreatedAt: 1},
		{ID: "new-done", CreatedAt: 5, Done: true},
		{ID: "new-open", CreatedAt: 4},
		{ID: "old-done", CreatedAt: 2, Done: true},
	}
	got := DisplayOrder(items)
	var ids []string
	for _, it := range got {
		ids = append(ids, it.ID)
	}
	want := []string{"new-open", "old-open", "new-done", "old-done"}
	if !reflect.DeepEqual(ids, want) {
		t.Fatalf("display order = %v, want %v", ids, want)
	}
	if items[0].ID != "old-open" {
		t.Fatal("display order must not reorder the input")
	}

	p := ProgressOf(items)
	if p.Done != 2 || p.Total != 4 || p.Percent() != 50 {
		t.Fatalf("unexpected progress: %+v %d", p, p.Percent())
	}
	if (Progress{Done: 1, Total: 3}).Percent() != 33 || (Progress{Done: 2, Total: 3}).Percent() != 67 {
		t.Fatal("expected rounded percentages")
	}
	if (Progress{}).Percent() != 0 {
		t.Fatal("expected 0 for empty progress")
	}
}

func TestDateKeys(t *testing.T) {
	ts := time.Date(2024, 3, 5, 23, 59, 0, 0, time.UTC)
	if DateKey(ts) != "2024-03-05" {
		t.Fatalf("unexpected date key %q", DateKey(ts))
	}
	for _, ok := range []string{"2024-03-05", "2023-12-31"} {
		if !IsDateKey(ok) {
			t.Fatalf("expected %q to be valid", ok)
		}
	}
	for _, bad := range []string{"2024-3-5", "2024-13-01", "today", ""} {
		if IsDateKey(bad) {
			t.Fatalf("expected %q to be invalid", bad)
		}
	}

	doc := Document{Days: map[string][]Item{"2024-01-01": nil, "2024-01-03": nil, "2024-01-02": nil}}
	if !reflect.DeepEqual(doc.DayKeys(), []string{"2024-01-03", "2024-01-02", "2024-01-01"}) {
		t.Fatalf("unexpected day keys: %v", doc.DayKeys())
	}
}
