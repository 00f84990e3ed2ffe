package model

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Normalize turns arbitrary decoded day data into well-formed items.
//
// raw may be a decoded JSON array ([]any) or a typed []Item; anything else
// yields an empty list. Elements that are not objects are skipped, items whose
// trimmed text is empty are dropped, and input order is preserved. Running
// Normalize over its own output returns the same list.
func Normalize(raw any, now time.Time, newID func() string) []Item {
	nowMs := now.UnixMilli()
	switch list := raw.(type) {
	case []Item:
		out := make([]Item, 0, len(list))
		for _, it := range list {
			if n, ok := normalizeItem(it, nowMs, newID); ok {
				out = append(out, n)
			}
		}
		return out
	case []any:
		out := make([]Item, 0, len(list))
		for _, el := range list {
			obj, ok := el.(map[string]any)
			if !ok || obj == nil {
				continue
			}
			if n, ok := normalizeItem(itemFromObject(obj), nowMs, newID); ok {
				out = append(out, n)
			}
		}
		return out
	default:
		return []Item{}
	}
}

func normalizeItem(it Item, nowMs int64, newID func() string) (Item, bool) {
	it.Text = strings.TrimSpace(it.Text)
	if it.Text == "" {
		return Item{}, false
	}
	if strings.TrimSpace(it.ID) == "" {
		it.ID = newID()
	}
	if !it.Bucket.IsValid() {
		it.Bucket = BucketMorning
	}
	if it.CreatedAt <= 0 {
		it.CreatedAt = nowMs
	}
	return it, true
}

func itemFromObject(obj map[string]any) Item {
	it := Item{
		Text:         coerceString(obj["text"]),
		Done:         truthy(obj["done"]),
		FromTemplate: truthy(obj["fromTemplate"]),
	}
	if id, ok := obj["id"].(string); ok {
		it.ID = id
	}
	if b, ok := obj["bucket"].(string); ok {
		it.Bucket = Bucket(b)
	}
	if ts, ok := obj["createdAt"].(float64); ok && !math.IsNaN(ts) && !math.IsInf(ts, 0) && ts > 0 {
		it.CreatedAt = int64(ts)
	}
	return it
}

func coerceString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return ""
	}
}

func truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case float64:
		return val != 0 && !math.IsNaN(val)
	case string:
		return val != ""
	default:
		return true
	}
}
