package certificate

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

var (
	ErrNotFound          = errors.New("certificate not found")
	ErrDuplicateID       = errors.New("certificate id already exists")
	ErrInvalidSubmission = errors.New("name, course and date are required")
)

// Certificate is one issued certificate. Records are written once and never
// updated; the admin list deletes them permanently.
type Certificate struct {
	// Key is the numeric internal key assigned by the store.
	Key       uint
	ID        string
	Name      string
	Course    string
	Date      string
	CreatedAt time.Time
}

// Store persists certificates. Implementations must reject a second record
// with the same ID with ErrDuplicateID and return ErrNotFound on misses.
type Store interface {
	// Create assigns Key and CreatedAt on success.
	Create(ctx context.Context, cert *Certificate) error
	FindByID(ctx context.Context, id string) (*Certificate, error)
	Get(ctx context.Context, key uint) (*Certificate, error)
	// List returns every certificate, newest first.
	List(ctx context.Context) ([]Certificate, error)
	Delete(ctx context.Context, key uint) error
}
