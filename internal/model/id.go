package model

import "github.com/google/uuid"

// NewID returns a fresh opaque item id.
func NewID() string {
	return uuid.NewString()
}
