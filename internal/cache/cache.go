package cache

import (
	"context"
)

// ImageCache stores rendered certificate images by certificate id.
// Certificates never change, so an entry stays valid until the certificate
// is deleted.
type ImageCache interface {
	Get(ctx context.Context, id string) ([]byte, bool, error)
	Set(ctx context.Context, id string, image []byte) error
	Delete(ctx context.Context, id string) error
}

// Noop caches nothing.
type Noop struct{}

func (Noop) Get(ctx context.Context, id string) ([]byte, bool, error) { return nil, false, nil }
func (Noop) Set(ctx context.Context, id string, image []byte) error   { return nil }
func (Noop) Delete(ctx context.Context, id string) error              { return nil }

var _ ImageCache = Noop{}
