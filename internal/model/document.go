package model

import (
	"regexp"
	"sort"
	"strings"
	"time"
)

const (
	// CurrentVersion is the schema version written by this build.
	CurrentVersion = 2
	// DefaultHistoryDays bounds how many day records a document retains.
	DefaultHistoryDays = 7
	dateKeyLayout      = "2006-01-02"
)

// Templates holds the per-bucket template strings, newest first.
type Templates map[Bucket][]string

// Document is the single persisted source of truth.
type Document struct {
	Version   int               `json:"version"`
	Templates Templates         `json:"templates"`
	Days      map[string][]Item `json:"days"`
}

func EmptyTemplates() Templates {
	return Templates{
		BucketMorning: []string{},
		BucketNoon:    []string{},
		BucketEvening: []string{},
	}
}

func DefaultTemplates() Templates {
	return Templates{
		BucketMorning: []string{"Drink a glass of water", "Stretch for five minutes", "Review today's plan"},
		BucketNoon:    []string{"Take a short walk", "Eat lunch away from the desk"},
		BucketEvening: []string{"Tidy up the workspace", "Read for twenty minutes", "Plan tomorrow"},
	}
}

// NewDocument returns the first-run document.
func NewDocument() Document {
	return Document{
		Version:   CurrentVersion,
		Templates: DefaultTemplates(),
		Days:      map[string][]Item{},
	}
}

func (t Templates) Clone() Templates {
	out := make(Templates, len(Buckets))
	for _, b := range Buckets {
		out[b] = append([]string{}, t[b]...)
	}
	return out
}

// Add prepends trimmed text to the bucket. It reports false when nothing changed.
func (t Templates) Add(bucket Bucket, text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || !bucket.IsValid() {
		return false
	}
	t[bucket] = append([]string{trimmed}, t[bucket]...)
	return true
}

// Remove deletes the entry at index. Out-of-range indexes are ignored.
func (t Templates) Remove(bucket Bucket, index int) bool {
	list := t[bucket]
	if index < 0 || index >= len(list) {
		return false
	}
	next := make([]string, 0, len(list)-1)
	next = append(next, list[:index]...)
	next = append(next, list[index+1:]...)
	t[bucket] = next
	return true
}

func (d Document) Clone() Document {
	out := Document{
		Version:   d.Version,
		Templates: d.Templates.Clone(),
		Days:      make(map[string][]Item, len(d.Days)),
	}
	for k, items := range d.Days {
		out.Days[k] = append([]Item{}, items...)
	}
	return out
}

// DayKeys returns the document's day keys, newest first.
func (d Document) DayKeys() []string {
	keys := make([]string, 0, len(d.Days))
	for k := range d.Days {
		keys = append(keys, k)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	return keys
}

var dateKeyPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// DateKey formats t as YYYY-MM-DD in t's own location.
func DateKey(t time.Time) string {
	return t.Format(dateKeyLayout)
}

func IsDateKey(s string) bool {
	if !dateKeyPattern.MatchString(s) {
		return false
	}
	_, err := time.ParseInLocation(dateKeyLayout, s, time.Local)
	return err == nil
}
