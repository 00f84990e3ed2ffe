package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/sandeepkv93/dayboard/internal/config"
	"github.com/sandeepkv93/dayboard/internal/daybook"
	"github.com/sandeepkv93/dayboard/internal/model"
	"github.com/sandeepkv93/dayboard/internal/storage"
)

var (
	ErrNoMatch   = errors.New("cli: no item matches")
	ErrAmbiguous = errors.New("cli: ambiguous id prefix")
)

// app is one opened store plus the board driving it.
type app struct {
	board *daybook.Board
	codec *storage.Codec
	close func() error
}

func openApp(ctx context.Context, cfg config.RuntimeConfig, logger *log.Logger) (*app, error) {
	store, closeFn, err := storage.Open(cfg.StoreBackend, cfg.StorePath)
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.StoreBackend, err)
	}
	codec := storage.NewCodec(store, cfg.StoreKey, logger)
	doc, err := codec.LoadOrFresh(ctx)
	if err != nil {
		if cerr := closeFn(); cerr != nil {
			logger.Printf("close store: %v", cerr)
		}
		return nil, err
	}
	board := daybook.NewBoard(ctx, doc, codec, daybook.Options{
		HistoryDays: cfg.HistoryDays,
		Logger:      logger,
	})
	return &app{board: board, codec: codec, close: closeFn}, nil
}

func withApp(ctx context.Context, ro *rootOptions, logger *log.Logger, fn func(*app) error) error {
	cfg, err := ro.load()
	if err != nil {
		return err
	}
	a, err := openApp(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.close(); err != nil {
			logger.Printf("close store: %v", err)
		}
	}()
	return fn(a)
}

// resolve finds the single item on the active day whose id starts with prefix.
func resolve(items []model.Item, prefix string) (model.Item, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return model.Item{}, ErrNoMatch
	}
	var found []model.Item
	for _, it := range items {
		if strings.HasPrefix(it.ID, prefix) {
			found = append(found, it)
		}
	}
	switch len(found) {
	case 0:
		return model.Item{}, fmt.Errorf("%w: %s", ErrNoMatch, prefix)
	case 1:
		return found[0], nil
	default:
		return model.Item{}, fmt.Errorf("%w: %s matches %d items", ErrAmbiguous, prefix, len(found))
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
