package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidBucket = errors.New("model: invalid bucket")
	ErrEmptyText     = errors.New("model: item text is required")
)

type Bucket string

const (
	BucketMorning Bucket = "morning"
	BucketNoon    Bucket = "noon"
	BucketEvening Bucket = "evening"
)

// Buckets lists every bucket in display and expansion order.
var Buckets = []Bucket{BucketMorning, BucketNoon, BucketEvening}

func (b Bucket) IsValid() bool {
	switch b {
	case BucketMorning, BucketNoon, BucketEvening:
		return true
	default:
		return false
	}
}

func (b Bucket) Label() string {
	switch b {
	case BucketMorning:
		return "Morning"
	case BucketNoon:
		return "Noon"
	case BucketEvening:
		return "Evening"
	default:
		return string(b)
	}
}

func ParseBucket(raw string) (Bucket, error) {
	b := Bucket(strings.ToLower(strings.TrimSpace(raw)))
	if !b.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidBucket, raw)
	}
	return b, nil
}

// Item is a single checklist entry. CreatedAt is milliseconds since the Unix epoch.
type Item struct {
	ID           string `json:"id"`
	Text         string `json:"text"`
	Bucket       Bucket `json:"bucket"`
	Done         bool   `json:"done"`
	CreatedAt    int64  `json:"createdAt"`
	FromTemplate bool   `json:"fromTemplate"`
}

func (it Item) Validate() error {
	if strings.TrimSpace(it.ID) == "" {
		return errors.New("model: item id is required")
	}
	if strings.TrimSpace(it.Text) == "" {
		return ErrEmptyText
	}
	if !it.Bucket.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidBucket, it.Bucket)
	}
	if it.CreatedAt <= 0 {
		return errors.New("model: item createdAt is required")
	}
	return nil
}
