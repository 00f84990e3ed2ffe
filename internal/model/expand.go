package model

import (
	"sort"
	"strings"
	"time"
)

// Expand builds a fresh day from templates: morning, noon, then evening, each
// in stored order. Every item from one call shares the same CreatedAt.
func Expand(t Templates, now time.Time, newID func() string) []Item {
	createdAt := now.UnixMilli()
	out := make([]Item, 0)
	for _, b := range Buckets {
		for _, text := range t[b] {
			trimmed := strings.TrimSpace(text)
			if trimmed == "" {
				continue
			}
			out = append(out, Item{
				ID:           newID(),
				Text:         trimmed,
				Bucket:       b,
				CreatedAt:    createdAt,
				FromTemplate: true,
			})
		}
	}
	return out
}

// Prune keeps the keep most recent day keys. keep <= 0 means DefaultHistoryDays.
// The input map is left untouched.
func Prune(days map[string][]Item, keep int) map[string][]Item {
	if keep <= 0 {
		keep = DefaultHistoryDays
	}
	keys := make([]string, 0, len(days))
	for k := range days {
		keys = append(keys, k)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	if len(keys) > keep {
		keys = keys[:keep]
	}
	out := make(map[string][]Item, len(keys))
	for _, k := range keys {
		out[k] = days[k]
	}
	return out
}
