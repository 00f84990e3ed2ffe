package daybook

import (
	"context"
	"strings"

	"github.com/sandeepkv93/dayboard/internal/model"
)

// Items returns the normalized working list of the active day in stored order.
func (b *Board) Items() []model.Item {
	return model.Normalize(b.doc.Days[b.activeKey], b.clock.Now(), b.newID)
}

func (b *Board) Templates() model.Templates {
	return b.doc.Templates.Clone()
}

func (b *Board) mutateActive(ctx context.Context, edit func(items []model.Item) []model.Item) {
	now := b.clock.Now()
	key := b.activeKey
	b.applyAndPersist(ctx, func(doc *model.Document) {
		items := model.Normalize(doc.Days[key], now, b.newID)
		doc.Days[key] = edit(items)
	})
}

func (b *Board) indexOf(id string) int {
	for i, it := range b.doc.Days[b.activeKey] {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// Add prepends a new item to the active day. Blank text is ignored.
func (b *Board) Add(ctx context.Context, text string, bucket model.Bucket) (model.Item, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return model.Item{}, false
	}
	if !bucket.IsValid() {
		bucket = model.BucketMorning
	}
	item := model.Item{
		ID:        b.newID(),
		Text:      trimmed,
		Bucket:    bucket,
		CreatedAt: b.clock.Now().UnixMilli(),
	}
	b.mutateActive(ctx, func(items []model.Item) []model.Item {
		return append([]model.Item{item}, items...)
	})
	return item, true
}

func (b *Board) Toggle(ctx context.Context, id string) bool {
	if b.indexOf(id) < 0 {
		return false
	}
	b.mutateActive(ctx, func(items []model.Item) []model.Item {
		for i := range items {
			if items[i].ID == id {
				items[i].Done = !items[i].Done
			}
		}
		return items
	})
	return true
}

func (b *Board) Remove(ctx context.Context, id string) bool {
	if b.indexOf(id) < 0 {
		return false
	}
	b.mutateActive(ctx, func(items []model.Item) []model.Item {
		out := items[:0]
		for _, it := range items {
			if it.ID != id {
				out = append(out, it)
			}
		}
		return out
	})
	return true
}

// ClearCompleted drops every done item and reports how many were removed.
func (b *Board) ClearCompleted(ctx context.Context) int {
	removed := 0
	b.mutateActive(ctx, func(items []model.Item) []model.Item {
		out := make([]model.Item, 0, len(items))
		for _, it := range items {
			if it.Done {
				removed++
				continue
			}
			out = append(out, it)
		}
		return out
	})
	return removed
}

func (b *Board) MarkAllDone(ctx context.Context, bucket model.Bucket) int {
	changed := 0
	b.mutateActive(ctx, func(items []model.Item) []model.Item {
		for i := range items {
			if items[i].Bucket == bucket && !items[i].Done {
				items[i].Done = true
				changed++
			}
		}
		return items
	})
	return changed
}

// ResetToday points the board at today and replaces its list with a fresh
// template expansion. Existing items for today are discarded.
func (b *Board) ResetToday(ctx context.Context) int {
	now := b.clock.Now()
	b.todayKey = model.DateKey(now)
	b.activeKey = b.todayKey
	key := b.todayKey
	b.applyAndPersist(ctx, func(doc *model.Document) {
		doc.Days[key] = model.Expand(doc.Templates, now, b.newID)
	})
	return len(b.doc.Days[key])
}

// ApplyTemplatesToToday is ResetToday followed by a switch to the today tab.
func (b *Board) ApplyTemplatesToToday(ctx context.Context) int {
	n := b.ResetToday(ctx)
	b.tab = TabToday
	return n
}

func (b *Board) AddTemplate(ctx context.Context, bucket model.Bucket, text string) bool {
	if strings.TrimSpace(text) == "" || !bucket.IsValid() {
		return false
	}
	b.applyAndPersist(ctx, func(doc *model.Document) {
		doc.Templates.Add(bucket, text)
	})
	return true
}

// RemoveTemplate deletes the entry at index; out-of-range indexes are a no-op.
func (b *Board) RemoveTemplate(ctx context.Context, bucket model.Bucket, index int) bool {
	if index < 0 || index >= len(b.doc.Templates[bucket]) {
		return false
	}
	b.applyAndPersist(ctx, func(doc *model.Document) {
		doc.Templates.Remove(bucket, index)
	})
	return true
}
