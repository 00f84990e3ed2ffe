package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/sandeepkv93/dayboard/internal/model"
)

// DefaultKey is the blob key the document is stored under.
const DefaultKey = "dayboard.v2"

var ErrCorruptStore = errors.New("storage: corrupt store")

// Codec reads and writes the Document through a BlobStore.
type Codec struct {
	Store  BlobStore
	Key    string
	Now    func() time.Time
	NewID  func() string
	Logger *log.Logger
}

func NewCodec(store BlobStore, key string, logger *log.Logger) *Codec {
	if strings.TrimSpace(key) == "" {
		key = DefaultKey
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Codec{
		Store:  store,
		Key:    key,
		Now:    time.Now,
		NewID:  model.NewID,
		Logger: logger,
	}
}

// Load returns the persisted document. A missing blob yields a first-run
// document; an unparseable one yields an error wrapping ErrCorruptStore.
func (c *Codec) Load(ctx context.Context) (model.Document, error) {
	raw, err := c.Store.Get(ctx, c.Key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return model.NewDocument(), nil
		}
		return model.Document{}, err
	}
	return c.Decode(raw)
}

// LoadOrFresh is Load with a corrupt blob replaced by a first-run document.
// Store failures are returned as is so the caller never overwrites data it
// could not read.
func (c *Codec) LoadOrFresh(ctx context.Context) (model.Document, error) {
	doc, err := c.Load(ctx)
	if err == nil {
		return doc, nil
	}
	if !errors.Is(err, ErrCorruptStore) {
		return model.Document{}, fmt.Errorf("read %s: %w", c.Key, err)
	}
	c.Logger.Printf("store: load %s failed, starting fresh: %v", c.Key, err)
	return model.NewDocument(), nil
}

// Save writes the document. Callers on the interactive path log and drop the error.
func (c *Codec) Save(ctx context.Context, doc model.Document) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	if err := c.Store.Set(ctx, c.Key, payload); err != nil {
		return fmt.Errorf("write %s: %w", c.Key, err)
	}
	return nil
}

func (c *Codec) Decode(raw []byte) (model.Document, error) {
	var top any
	if err := json.Unmarshal(raw, &top); err != nil {
		return model.Document{}, fmt.Errorf("%w: %v", ErrCorruptStore, err)
	}
	obj, ok := top.(map[string]any)
	if !ok {
		return model.Document{}, fmt.Errorf("%w: top level is not an object", ErrCorruptStore)
	}
	now := c.Now()

	if dateKey, items, legacy := legacyShape(obj); legacy {
		return model.Document{
			Version:   model.CurrentVersion,
			Templates: model.EmptyTemplates(),
			Days:      map[string][]model.Item{dateKey: model.Normalize(items, now, c.NewID)},
		}, nil
	}

	doc := model.Document{
		Version:   model.CurrentVersion,
		Templates: decodeTemplates(obj["templates"]),
		Days:      map[string][]model.Item{},
	}
	if v, ok := obj["version"].(float64); ok {
		doc.Version = int(v)
	}
	if days, ok := obj["days"].(map[string]any); ok {
		for key, list := range days {
			doc.Days[key] = model.Normalize(list, now, c.NewID)
		}
	}
	return doc, nil
}

// legacyShape matches the single-day layout {dateKey, items} written before version 2.
func legacyShape(obj map[string]any) (string, []any, bool) {
	dateKey, ok := obj["dateKey"].(string)
	if !ok {
		return "", nil, false
	}
	items, ok := obj["items"].([]any)
	if !ok {
		return "", nil, false
	}
	return dateKey, items, true
}

func decodeTemplates(v any) model.Templates {
	out := model.EmptyTemplates()
	obj, ok := v.(map[string]any)
	if !ok {
		return out
	}
	for _, b := range model.Buckets {
		list, ok := obj[string(b)].([]any)
		if !ok {
			continue
		}
		for _, entry := range list {
			if s, ok := entry.(string); ok {
				out[b] = append(out[b], s)
			}
		}
	}
	return out
}
