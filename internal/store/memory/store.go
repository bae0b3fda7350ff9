package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/cristianadrielbraun/certgen/internal/certificate"
	"github.com/pkg/errors"
)

// Store keeps certificates in process memory. It is meant for tests and
// throwaway instances.
type Store struct {
	mutex   sync.RWMutex
	nextKey uint
	byKey   map[uint]certificate.Certificate
	now     func() time.Time
}

func NewStore() *Store {
	return &Store{
		nextKey: 1,
		byKey:   make(map[uint]certificate.Certificate),
		now:     time.Now,
	}
}

// Create implements certificate.Store.
func (s *Store) Create(ctx context.Context, cert *certificate.Certificate) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, existing := range s.byKey {
		if existing.ID == cert.ID {
			return errors.WithStack(certificate.ErrDuplicateID)
		}
	}

	cert.Key = s.nextKey
	cert.CreatedAt = s.now()
	s.nextKey++
	s.byKey[cert.Key] = *cert

	return nil
}

// FindByID implements certificate.Store.
func (s *Store) FindByID(ctx context.Context, id string) (*certificate.Certificate, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	for _, c := range s.byKey {
		if c.ID == id {
			return &c, nil
		}
	}

	return nil, errors.WithStack(certificate.ErrNotFound)
}

// Get implements certificate.Store.
func (s *Store) Get(ctx context.Context, key uint) (*certificate.Certificate, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	c, exists := s.byKey[key]
	if !exists {
		return nil, errors.WithStack(certificate.ErrNotFound)
	}

	return &c, nil
}

// List implements certificate.Store.
func (s *Store) List(ctx context.Context) ([]certificate.Certificate, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	certs := make([]certificate.Certificate, 0, len(s.byKey))
	for _, c := range s.byKey {
		certs = append(certs, c)
	}

	sort.Slice(certs, func(i, j int) bool {
		if !certs[i].CreatedAt.Equal(certs[j].CreatedAt) {
			return certs[i].CreatedAt.After(certs[j].CreatedAt)
		}
		return certs[i].Key > certs[j].Key
	})

	return certs, nil
}

// Delete implements certificate.Store.
func (s *Store) Delete(ctx context.Context, key uint) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.byKey[key]; !exists {
		return errors.WithStack(certificate.ErrNotFound)
	}

	delete(s.byKey, key)

	return nil
}

var _ certificate.Store = &Store{}
