package model

import (
	"math"
	"sort"
)

type Progress struct {
	Done  int
	Total int
}

// Percent is round(100*done/total), 0 for an empty set.
func (p Progress) Percent() int {
	if p.Total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(p.Done) / float64(p.Total)))
}

func ProgressOf(items []Item) Progress {
	p := Progress{Total: len(items)}
	for _, it := range items {
		if it.Done {
			p.Done++
		}
	}
	return p
}

// ItemsIn returns the bucket's items in their stored order.
func ItemsIn(items []Item, b Bucket) []Item {
	out := make([]Item, 0)
	for _, it := range items {
		if it.Bucket == b {
			out = append(out, it)
		}
	}
	return out
}

// DisplayOrder sorts a copy: open items before done ones, newest first inside each group.
func DisplayOrder(items []Item) []Item {
	out := append([]Item{}, items...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Done != out[j].Done {
			return !out[i].Done
		}
		return out[i].CreatedAt > out[j].CreatedAt
	})
	return out
}
