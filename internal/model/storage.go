package model

import "context"

// BlobStore keeps opaque payloads addressed by key.
// Get returns ErrNotFound when the key is absent.
type BlobStore interface {
	Put(ctx context.Context, key string, data []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}
