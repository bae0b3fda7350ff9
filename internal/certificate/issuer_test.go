package certificate_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/cristianadrielbraun/certgen/internal/certificate"
	"github.com/cristianadrielbraun/certgen/internal/store/memory"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = func() time.Time {
	return time.Date(2026, time.October, 18, 12, 0, 0, 0, time.UTC)
}

func TestIssue(t *testing.T) {
	store := memory.NewStore()
	issuer := certificate.NewIssuer(store, certificate.WithClock(fixedNow))

	cert, err := issuer.Issue(context.Background(), certificate.Submission{
		Name:   " Ada <i>Lovelace</i> ",
		Course: "Analytical Engines",
		Date:   "2026-10-18",
	})
	require.NoError(t, err)

	assert.Regexp(t, `^CERT-20261018-[0-9A-F]{10}$`, cert.ID)
	assert.Equal(t, "Ada Lovelace", cert.Name)
	assert.NotZero(t, cert.Key)

	stored, err := store.FindByID(context.Background(), cert.ID)
	require.NoError(t, err)
	assert.Equal(t, cert.Key, stored.Key)
	assert.Equal(t, "Analytical Engines", stored.Course)
	assert.Equal(t, "2026-10-18", stored.Date)
}

func TestIssueInvalid(t *testing.T) {
	store := memory.NewStore()
	issuer := certificate.NewIssuer(store)

	subs := []certificate.Submission{
		{Course: "c", Date: "d"},
		{Name: "n", Date: "d"},
		{Name: "n", Course: "c"},
		{Name: "<p></p>", Course: "c", Date: "d"},
	}
	for _, sub := range subs {
		_, err := issuer.Issue(context.Background(), sub)
		assert.True(t, errors.Is(err, certificate.ErrInvalidSubmission), "%+v", sub)
	}

	certs, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, certs)
}

func TestIssueIdenticalSubmissionsGetDistinctIDs(t *testing.T) {
	store := memory.NewStore()
	issuer := certificate.NewIssuer(store, certificate.WithClock(fixedNow))
	sub := certificate.Submission{Name: "Ada", Course: "Engines", Date: "2026-10-18"}

	first, err := issuer.Issue(context.Background(), sub)
	require.NoError(t, err)
	second, err := issuer.Issue(context.Background(), sub)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.NotEqual(t, first.Key, second.Key)

	certs, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, certs, 2)
}

func TestIssueRegeneratesDuplicateID(t *testing.T) {
	store := memory.NewStore()
	random := bytes.NewReader([]byte{
		1, 1, 1, 1, 1,
		1, 1, 1, 1, 1,
		2, 2, 2, 2, 2,
	})
	issuer := certificate.NewIssuer(store, certificate.WithClock(fixedNow), certificate.WithRandom(random))
	sub := certificate.Submission{Name: "Ada", Course: "Engines", Date: "2026-10-18"}

	first, err := issuer.Issue(context.Background(), sub)
	require.NoError(t, err)
	assert.Equal(t, "CERT-20261018-0101010101", first.ID)

	second, err := issuer.Issue(context.Background(), sub)
	require.NoError(t, err)
	assert.Equal(t, "CERT-20261018-0202020202", second.ID)
}

type failingStore struct {
	*memory.Store
	err error
}

func (s *failingStore) Create(ctx context.Context, cert *certificate.Certificate) error {
	return s.err
}

func TestIssueStoreFailure(t *testing.T) {
	boom := errors.New("disk full")
	issuer := certificate.NewIssuer(&failingStore{Store: memory.NewStore(), err: boom})

	_, err := issuer.Issue(context.Background(), certificate.Submission{Name: "a", Course: "b", Date: "c"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
}

func TestIssueGivesUpAfterRepeatedDuplicates(t *testing.T) {
	store := &failingStore{Store: memory.NewStore(), err: errors.WithStack(certificate.ErrDuplicateID)}
	issuer := certificate.NewIssuer(store)

	_, err := issuer.Issue(context.Background(), certificate.Submission{Name: "a", Course: "b", Date: "c"})
	assert.True(t, errors.Is(err, certificate.ErrDuplicateID))
}
