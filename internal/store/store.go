package store

import (
	"context"
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("record not found")

// Key addresses one enriched climb side.
type Key struct {
	ClimbID string
	Side    string
}

func (k Key) String() string {
	return fmt.Sprintf("%s:%s", k.ClimbID, k.Side)
}

// Store persists records of type T by climb side.
type Store[T any] interface {
	// Get returns the record at key or an error wrapping ErrNotFound
	Get(ctx context.Context, key Key) (*T, error)
	Put(ctx context.Context, key Key, record *T) error
	Exists(ctx context.Context, key Key) (bool, error)
	Delete(ctx context.Context, key Key) error
}

const (
	opGet    = "get"
	opPut    = "put"
	opExists = "exists"
	opDelete = "delete"
)
