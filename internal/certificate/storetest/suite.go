// Package storetest holds the behaviour every certificate.Store must share.
package storetest

import (
	"context"
	"testing"

	"github.com/cristianadrielbraun/certgen/internal/certificate"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStore runs the store suite against a fresh store returned by newStore.
func TestStore(t *testing.T, newStore func(t *testing.T) certificate.Store) {
	t.Run("CreateAndFind", func(t *testing.T) {
		testCreateAndFind(t, newStore(t))
	})
	t.Run("DuplicateID", func(t *testing.T) {
		testDuplicateID(t, newStore(t))
	})
	t.Run("NotFound", func(t *testing.T) {
		testNotFound(t, newStore(t))
	})
	t.Run("ListNewestFirst", func(t *testing.T) {
		testListNewestFirst(t, newStore(t))
	})
	t.Run("Delete", func(t *testing.T) {
		testDelete(t, newStore(t))
	})
}

func newCert(id string) *certificate.Certificate {
	return &certificate.Certificate{
		ID:     id,
		Name:   "Ada Lovelace",
		Course: "Analytical Engines",
		Date:   "2026-10-18",
	}
}

func testCreateAndFind(t *testing.T, store certificate.Store) {
	ctx := context.Background()

	cert := newCert("CERT-20261018-0000000001")
	require.NoError(t, store.Create(ctx, cert))
	assert.NotZero(t, cert.Key)
	assert.False(t, cert.CreatedAt.IsZero())

	found, err := store.FindByID(ctx, cert.ID)
	require.NoError(t, err)
	assert.Equal(t, cert.Key, found.Key)
	assert.Equal(t, cert.Name, found.Name)
	assert.Equal(t, cert.Course, found.Course)
	assert.Equal(t, cert.Date, found.Date)

	byKey, err := store.Get(ctx, cert.Key)
	require.NoError(t, err)
	assert.Equal(t, cert.ID, byKey.ID)
}

func testDuplicateID(t *testing.T, store certificate.Store) {
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, newCert("CERT-20261018-0000000002")))

	err := store.Create(ctx, newCert("CERT-20261018-0000000002"))
	assert.True(t, errors.Is(err, certificate.ErrDuplicateID), "got %v", err)

	certs, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, certs, 1)
}

func testNotFound(t *testing.T, store certificate.Store) {
	ctx := context.Background()

	_, err := store.FindByID(ctx, "CERT-20261018-FFFFFFFFFF")
	assert.True(t, errors.Is(err, certificate.ErrNotFound))

	_, err = store.Get(ctx, 4242)
	assert.True(t, errors.Is(err, certificate.ErrNotFound))

	err = store.Delete(ctx, 4242)
	assert.True(t, errors.Is(err, certificate.ErrNotFound))
}

func testListNewestFirst(t *testing.T, store certificate.Store) {
	ctx := context.Background()

	ids := []string{"CERT-20261018-000000000A", "CERT-20261018-000000000B", "CERT-20261018-000000000C"}
	for _, id := range ids {
		require.NoError(t, store.Create(ctx, newCert(id)))
	}

	certs, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, certs, 3)

	assert.Equal(t, ids[2], certs[0].ID)
	assert.Equal(t, ids[1], certs[1].ID)
	assert.Equal(t, ids[0], certs[2].ID)
}

func testDelete(t *testing.T, store certificate.Store) {
	ctx := context.Background()

	keep := newCert("CERT-20261018-0000000010")
	drop := newCert("CERT-20261018-0000000011")
	require.NoError(t, store.Create(ctx, keep))
	require.NoError(t, store.Create(ctx, drop))

	require.NoError(t, store.Delete(ctx, drop.Key))

	_, err := store.FindByID(ctx, drop.ID)
	assert.True(t, errors.Is(err, certificate.ErrNotFound))

	_, err = store.FindByID(ctx, keep.ID)
	assert.NoError(t, err)

	// The id is free again once the record is gone.
	assert.NoError(t, store.Create(ctx, newCert(drop.ID)))
}
