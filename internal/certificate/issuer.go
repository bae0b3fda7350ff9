package certificate

import (
	"context"
	"crypto/rand"
	"io"
	"time"

	"github.com/cristianadrielbraun/certgen/internal/metrics"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const maxIssueAttempts = 3

// Submission is the raw form input for a new certificate.
type Submission struct {
	Name   string `form:"cg_name"`
	Course string `form:"cg_course"`
	Date   string `form:"cg_date"`
}

// Sanitized returns a copy with every field passed through Sanitize.
func (s Submission) Sanitized() Submission {
	return Submission{
		Name:   Sanitize(s.Name),
		Course: Sanitize(s.Course),
		Date:   Sanitize(s.Date),
	}
}

// Valid reports whether all three fields are non-empty.
func (s Submission) Valid() bool {
	return s.Name != "" && s.Course != "" && s.Date != ""
}

// Issuer creates certificates from submissions.
type Issuer struct {
	store  Store
	now    func() time.Time
	random io.Reader
}

type IssuerOption func(*Issuer)

func WithClock(now func() time.Time) IssuerOption {
	return func(i *Issuer) { i.now = now }
}

func WithRandom(r io.Reader) IssuerOption {
	return func(i *Issuer) { i.random = r }
}

func NewIssuer(store Store, opts ...IssuerOption) *Issuer {
	i := &Issuer{
		store:  store,
		now:    time.Now,
		random: rand.Reader,
	}
	for _, o := range opts {
		o(i)
	}
	return i
}

// Issue sanitizes the submission and stores a new certificate under a fresh
// identifier. An identifier already taken is regenerated.
func (i *Issuer) Issue(ctx context.Context, sub Submission) (*Certificate, error) {
	sub = sub.Sanitized()
	if !sub.Valid() {
		return nil, errors.WithStack(ErrInvalidSubmission)
	}

	for attempt := 1; ; attempt++ {
		id, err := NewID(i.now(), i.random)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		cert := &Certificate{
			ID:     id,
			Name:   sub.Name,
			Course: sub.Course,
			Date:   sub.Date,
		}

		err = i.store.Create(ctx, cert)
		if err == nil {
			metrics.CertificatesIssued.Inc()
			log.Ctx(ctx).Info().Str("certificate_id", cert.ID).Uint("key", cert.Key).Msg("certificate issued")
			return cert, nil
		}

		if !errors.Is(err, ErrDuplicateID) || attempt >= maxIssueAttempts {
			return nil, errors.Wrap(err, "could not store certificate")
		}

		log.Ctx(ctx).Warn().Str("certificate_id", id).Int("attempt", attempt).Msg("certificate id collision, regenerating")
	}
}
