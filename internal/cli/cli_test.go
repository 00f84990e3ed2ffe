package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sandeepkv93/dayboard/internal/daybook"
	"github.com/sandeepkv93/dayboard/internal/model"
)

func run(t *testing.T, backend, store string, args ...string) (string, error) {
	t.Helper()
	cmd := New()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--backend", backend, "--store", store}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func mustRun(t *testing.T, backend, store string, args ...string) string {
	t.Helper()
	out, err := run(t, backend, store, args...)
	if err != nil {
		t.Fatalf("%v failed: %v", args, err)
	}
	return out
}

func listSnapshot(t *testing.T, backend, store string) daybook.Snapshot {
	t.Helper()
	var snap daybook.Snapshot
	if err := json.Unmarshal([]byte(mustRun(t, backend, store, "list", "--json")), &snap); err != nil {
		t.Fatalf("decode list json: %v", err)
	}
	return snap
}

func findText(snap daybook.Snapshot, text string) (model.Item, bool) {
	for _, it := range snap.Ordered() {
		if it.Text == text {
			return it, true
		}
	}
	return model.Item{}, false
}

func TestAddToggleRemoveAcrossRuns(t *testing.T) {
	store := filepath.Join(t.TempDir(), "state.json")

	out := mustRun(t, "file", store, "add", "evening", "read", "a", "book")
	if !strings.Contains(out, "to Evening: read a book") {
		t.Fatalf("unexpected add output: %q", out)
	}

	it, ok := findText(listSnapshot(t, "file", store), "read a book")
	if !ok || it.Bucket != model.BucketEvening || it.Done {
		t.Fatalf("added item missing from list: %+v", it)
	}

	mustRun(t, "file", store, "toggle", it.ID[:8])
	if got, _ := findText(listSnapshot(t, "file", store), "read a book"); !got.Done {
		t.Fatalf("expected item done after toggle: %+v", got)
	}

	mustRun(t, "file", store, "remove", it.ID)
	if _, ok := findText(listSnapshot(t, "file", store), "read a book"); ok {
		t.Fatal("expected item removed")
	}
}

func TestListPrintsBuckets(t *testing.T) {
	store := filepath.Join(t.TempDir(), "state.json")
	mustRun(t, "file", store, "add", "noon", "lunch")
	out := mustRun(t, "file", store, "list")
	for _, want := range []string{"Morning", "Noon", "Evening", "lunch", "overall"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in list output: %q", want, out)
		}
	}
}

func TestUnknownPrefixAndBucket(t *testing.T) {
	store := filepath.Join(t.TempDir(), "state.json")
	if _, err := run(t, "file", store, "toggle", "does-not-exist"); !errors.Is(err, ErrNoMatch) {
		t.Fatalf("expected ErrNoMatch, got %v", err)
	}
	if _, err := run(t, "file", store, "add", "midnight", "snack"); !errors.Is(err, model.ErrInvalidBucket) {
		t.Fatalf("expected ErrInvalidBucket, got %v", err)
	}
	if _, err := run(t, "file", store, "list", "--date", "yesterday"); !errors.Is(err, daybook.ErrInvalidDateKey) {
		t.Fatalf("expected ErrInvalidDateKey, got %v", err)
	}
	if _, err := run(t, "file", store, "list", "--date", "2020-01-01"); !errors.Is(err, daybook.ErrUnknownDay) {
		t.Fatalf("expected ErrUnknownDay, got %v", err)
	}
}

func TestTemplatesCommands(t *testing.T) {
	store := filepath.Join(t.TempDir(), "state.json")
	before := templatesOf(t, store)

	mustRun(t, "file", store, "templates", "add", "noon", "go", "for", "a", "walk")
	after := templatesOf(t, store)
	if len(after[model.BucketNoon]) != len(before[model.BucketNoon])+1 || after[model.BucketNoon][0] != "go for a walk" {
		t.Fatalf("unexpected noon templates: %+v", after[model.BucketNoon])
	}

	mustRun(t, "file", store, "templates", "rm", "noon", "1")
	if got := templatesOf(t, store); len(got[model.BucketNoon]) != len(before[model.BucketNoon]) {
		t.Fatalf("expected template removed, got %+v", got[model.BucketNoon])
	}

	if _, err := run(t, "file", store, "templates", "rm", "noon", "99"); err == nil {
		t.Fatal("expected error for out of range position")
	}
}

func templatesOf(t *testing.T, store string) model.Templates {
	t.Helper()
	var tpl model.Templates
	if err := json.Unmarshal([]byte(mustRun(t, "file", store, "templates", "list", "--json")), &tpl); err != nil {
		t.Fatalf("decode templates: %v", err)
	}
	return tpl
}

func TestResetRequiresConfirmation(t *testing.T) {
	store := filepath.Join(t.TempDir(), "state.json")
	mustRun(t, "file", store, "add", "morning", "extra")

	if _, err := run(t, "file", store, "reset"); err == nil {
		t.Fatal("expected reset without --yes to fail")
	}
	if _, ok := findText(listSnapshot(t, "file", store), "extra"); !ok {
		t.Fatal("unconfirmed reset should keep items")
	}

	mustRun(t, "file", store, "reset", "--yes")
	if _, ok := findText(listSnapshot(t, "file", store), "extra"); ok {
		t.Fatal("confirmed reset should drop added items")
	}
}

func TestDoneAndClear(t *testing.T) {
	store := filepath.Join(t.TempDir(), "state.json")
	mustRun(t, "file", store, "add", "evening", "one")
	mustRun(t, "file", store, "add", "evening", "two")

	out := mustRun(t, "file", store, "done", "evening")
	if !strings.Contains(out, "Evening item(s) done") {
		t.Fatalf("unexpected done output: %q", out)
	}
	mustRun(t, "file", store, "clear")
	snap := listSnapshot(t, "file", store)
	for _, bv := range snap.Buckets {
		if bv.Bucket == model.BucketEvening && len(bv.Items) != 0 {
			t.Fatalf("expected evening cleared, got %+v", bv.Items)
		}
	}
}

func TestHistoryWithSQLite(t *testing.T) {
	store := filepath.Join(t.TempDir(), "dayboard.db")
	mustRun(t, "sqlite", store, "add", "morning", "water")

	var days []daybook.DaySummary
	if err := json.Unmarshal([]byte(mustRun(t, "sqlite", store, "history", "--json")), &days); err != nil {
		t.Fatalf("decode history: %v", err)
	}
	if len(days) != 1 || !days[0].IsToday || days[0].Progress.Total == 0 {
		t.Fatalf("unexpected history: %+v", days)
	}

	out := mustRun(t, "sqlite", store, "history")
	if !strings.Contains(out, days[0].Key) {
		t.Fatalf("expected %s in history table: %q", days[0].Key, out)
	}
}

func TestResolvePrefix(t *testing.T) {
	items := []model.Item{{ID: "abc1"}, {ID: "abc2"}, {ID: "xyz"}}
	if _, err := resolve(items, "abc"); !errors.Is(err, ErrAmbiguous) {
		t.Fatalf("expected ErrAmbiguous, got %v", err)
	}
	if it, err := resolve(items, "x"); err != nil || it.ID != "xyz" {
		t.Fatalf("expected xyz, got %+v %v", it, err)
	}
	if _, err := resolve(items, " "); !errors.Is(err, ErrNoMatch) {
		t.Fatalf("expected ErrNoMatch for blank prefix, got %v", err)
	}
}
