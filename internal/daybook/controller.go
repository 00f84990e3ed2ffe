package daybook

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/sandeepkv93/dayboard/internal/model"
)

var (
	ErrInvalidDateKey = errors.New("daybook: invalid date key")
	ErrUnknownDay     = errors.New("daybook: day not in history")
)

type Tab string

const (
	TabToday     Tab = "today"
	TabTemplates Tab = "templates"
	TabHistory   Tab = "history"
)

func (t Tab) IsValid() bool {
	switch t {
	case TabToday, TabTemplates, TabHistory:
		return true
	default:
		return false
	}
}

type Clock interface {
	Now() time.Time
}

type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads the host clock in the host's local zone.
var SystemClock Clock = ClockFunc(time.Now)

// Persister writes the whole document. Save errors are logged by the board and
// never returned to callers.
type Persister interface {
	Save(ctx context.Context, doc model.Document) error
}

type Options struct {
	Clock       Clock
	NewID       func() string
	HistoryDays int
	Logger      *log.Logger
}

// Board owns the document and the active day. It is not safe for concurrent
// use; every call is expected to come from one event loop.
type Board struct {
	doc       model.Document
	activeKey string
	todayKey  string
	tab       Tab
	persist   Persister
	clock     Clock
	newID     func() string
	keep      int
	logger    *log.Logger
}

// Rollover describes the outcome of one CheckRollover call.
type Rollover struct {
	Changed  bool
	From     string
	To       string
	Seeded   bool
	Items    int
	Switched bool
	Evicted  bool
}

// NewBoard takes ownership of doc, seeds today and persists the result.
func NewBoard(ctx context.Context, doc model.Document, persist Persister, opts Options) *Board {
	b := &Board{
		doc:     doc,
		tab:     TabToday,
		persist: persist,
		clock:   opts.Clock,
		newID:   opts.NewID,
		keep:    opts.HistoryDays,
		logger:  opts.Logger,
	}
	if b.clock == nil {
		b.clock = SystemClock
	}
	if b.newID == nil {
		b.newID = model.NewID
	}
	if b.keep <= 0 {
		b.keep = model.DefaultHistoryDays
	}
	if b.logger == nil {
		b.logger = log.New(io.Discard, "", 0)
	}
	if b.doc.Templates == nil {
		b.doc.Templates = model.EmptyTemplates()
	}
	if b.doc.Version == 0 {
		b.doc.Version = model.CurrentVersion
	}

	b.todayKey = b.computeTodayKey()
	b.activeKey = b.todayKey
	b.seed(ctx, b.todayKey)
	return b
}

// EnsureDaySeeded fills an absent day from the templates and prunes history.
// It is the only seeding path, shared by startup and rollover. doc's day map
// is not modified.
func EnsureDaySeeded(doc model.Document, key string, now time.Time, newID func() string, keep int) model.Document {
	days := make(map[string][]model.Item, len(doc.Days)+1)
	for k, v := range doc.Days {
		days[k] = v
	}
	if _, ok := days[key]; !ok {
		days[key] = model.Expand(doc.Templates, now, newID)
	}
	doc.Days = model.Prune(days, keep)
	return doc
}

func (b *Board) computeTodayKey() string {
	return model.DateKey(b.clock.Now())
}

func (b *Board) seed(ctx context.Context, key string) {
	now := b.clock.Now()
	b.applyAndPersist(ctx, func(doc *model.Document) {
		*doc = EnsureDaySeeded(*doc, key, now, b.newID, b.keep)
	})
}

// CheckRollover runs on every poll. When the calendar date has moved it seeds
// the new day. The active day follows only if it was the previous today, or if
// the open history day fell out of the window; the tab is then forced back to
// today as well. Skipped dates are not replayed.
func (b *Board) CheckRollover(ctx context.Context) Rollover {
	today := b.computeTodayKey()
	if today == b.todayKey {
		return Rollover{}
	}
	r := Rollover{Changed: true, From: b.todayKey, To: today}
	_, existed := b.doc.Days[today]
	b.todayKey = today
	b.seed(ctx, today)
	r.Seeded = !existed
	r.Items = len(b.doc.Days[today])

	_, stillKept := b.doc.Days[b.activeKey]
	if b.activeKey == r.From || !stillKept {
		// The open day was pruned by the new day's seeding; edits to it would vanish.
		r.Evicted = b.activeKey != r.From
		b.activeKey = today
		b.tab = TabToday
		r.Switched = true
	}
	b.logger.Printf("daybook: rollover %s -> %s (seeded=%t switched=%t)", r.From, r.To, r.Seeded, r.Switched)
	return r
}

// applyAndPersist is the single write path: mutate, prune, save.
func (b *Board) applyAndPersist(ctx context.Context, mutate func(doc *model.Document)) {
	if b.doc.Days == nil {
		b.doc.Days = map[string][]model.Item{}
	}
	mutate(&b.doc)
	b.doc.Days = model.Prune(b.doc.Days, b.keep)
	if b.persist == nil {
		return
	}
	if err := b.persist.Save(ctx, b.doc); err != nil {
		b.logger.Printf("daybook: persist failed, keeping in-memory state: %v", err)
	}
}

func (b *Board) ActiveKey() string { return b.activeKey }

func (b *Board) TodayKey() string { return b.todayKey }

func (b *Board) Tab() Tab { return b.tab }

func (b *Board) ViewingToday() bool { return b.activeKey == b.todayKey }

func (b *Board) SetTab(tab Tab) {
	if tab.IsValid() {
		b.tab = tab
	}
}

// Document returns a copy of the owned document.
func (b *Board) Document() model.Document {
	return b.doc.Clone()
}

// OpenHistoryDay makes key the active day. It never seeds or writes. Only
// retained days and today can be opened; anything else would be pruned on the
// next write or push a real day out of the window.
func (b *Board) OpenHistoryDay(key string) error {
	if !model.IsDateKey(key) {
		return fmt.Errorf("%w: %s", ErrInvalidDateKey, key)
	}
	if _, ok := b.doc.Days[key]; !ok && key != b.todayKey {
		return fmt.Errorf("%w: %s", ErrUnknownDay, key)
	}
	b.activeKey = key
	return nil
}

// OpenToday returns to today, seeding it if it is missing.
func (b *Board) OpenToday(ctx context.Context) {
	b.activeKey = b.todayKey
	if _, ok := b.doc.Days[b.todayKey]; !ok {
		b.seed(ctx, b.todayKey)
	}
}
