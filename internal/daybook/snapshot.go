package daybook

import "github.com/sandeepkv93/dayboard/internal/model"

type BucketView struct {
	Bucket   model.Bucket
	Items    []model.Item
	Progress model.Progress
}

type DaySummary struct {
	Key      string
	Progress model.Progress
	IsToday  bool
	IsActive bool
}

// Snapshot is everything a renderer needs. It is rebuilt from the document on
// every call and never stored.
type Snapshot struct {
	ActiveKey string
	TodayKey  string
	Tab       Tab
	Buckets   []BucketView
	Overall   model.Progress
	Templates model.Templates
	History   []DaySummary
}

func (s Snapshot) ViewingToday() bool {
	return s.ActiveKey == s.TodayKey
}

// Ordered flattens the buckets in render order.
func (s Snapshot) Ordered() []model.Item {
	out := make([]model.Item, 0)
	for _, bv := range s.Buckets {
		out = append(out, bv.Items...)
	}
	return out
}

func (b *Board) Snapshot() Snapshot {
	items := b.Items()
	snap := Snapshot{
		ActiveKey: b.activeKey,
		TodayKey:  b.todayKey,
		Tab:       b.tab,
		Overall:   model.ProgressOf(items),
		Templates: b.Templates(),
		History:   b.History(),
	}
	for _, bucket := range model.Buckets {
		inBucket := model.ItemsIn(items, bucket)
		snap.Buckets = append(snap.Buckets, BucketView{
			Bucket:   bucket,
			Items:    model.DisplayOrder(inBucket),
			Progress: model.ProgressOf(inBucket),
		})
	}
	return snap
}

// History lists the retained days newest first with their completion counts.
func (b *Board) History() []DaySummary {
	keys := b.doc.DayKeys()
	out := make([]DaySummary, 0, len(keys))
	for _, k := range keys {
		out = append(out, DaySummary{
			Key:      k,
			Progress: model.ProgressOf(b.doc.Days[k]),
			IsToday:  k == b.todayKey,
			IsActive: k == b.activeKey,
		})
	}
	return out
}
