package handlers

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/a-h/templ"
	"github.com/cristianadrielbraun/certgen/internal/certificate"
	"github.com/cristianadrielbraun/certgen/internal/metrics"
	"github.com/cristianadrielbraun/certgen/web/components"
	"github.com/cristianadrielbraun/certgen/web/components/ui/notice"
	"github.com/cristianadrielbraun/certgen/web/pages"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

const (
	deleteParam = "delete_cert"
	tokenParam  = "_token"
)

// RequireAdmin gates the admin pages behind basic auth. Without a password
// the admin pages are closed.
func RequireAdmin(user, password string) gin.HandlerFunc {
	if password == "" {
		return func(c *gin.Context) {
			c.String(http.StatusForbidden, "Forbidden")
			c.Abort()
		}
	}

	return gin.BasicAuthForRealm(gin.Accounts{user: password}, "certgen admin")
}

// AdminList lists all certificates. A delete_cert key with a matching token
// deletes that certificate first; anything else is ignored.
func (h *Handler) AdminList(c *gin.Context) {
	ctx := c.Request.Context()

	var flash *notice.Props
	if raw, ok := c.GetQuery(deleteParam); ok {
		flash = h.deleteCertificate(c, raw, c.Query(tokenParam))
	}

	certs, err := h.store.List(ctx)
	if err != nil {
		fail(c, err, "Error loading certificates.")
		return
	}

	rows := make([]components.CertificateRow, 0, len(certs))
	for _, cert := range certs {
		tok, err := h.tokens.DeleteToken(cert.Key)
		if err != nil {
			fail(c, err, "Error loading certificates.")
			return
		}

		rows = append(rows, components.CertificateRow{
			ID:        cert.ID,
			Name:      cert.Name,
			Course:    cert.Course,
			Date:      cert.Date,
			ViewURL:   h.validationURL(c, cert.ID),
			DeleteURL: deleteURL(cert.Key, tok),
		})
	}

	renderPage(c, http.StatusOK, pages.AdminListPage(pages.AdminListProps{
		Rows:      rows,
		Notice:    flash,
		DonateURL: h.donateURL,
	}))
}

func deleteURL(key uint, tok string) string {
	q := url.Values{}
	q.Set(deleteParam, strconv.FormatUint(uint64(key), 10))
	q.Set(tokenParam, tok)
	return pages.AdminListPath + "?" + q.Encode()
}

// deleteCertificate permanently removes the record when tok matches key. It
// returns the notice to display, nil when nothing happened.
func (h *Handler) deleteCertificate(c *gin.Context, raw, tok string) *notice.Props {
	ctx := c.Request.Context()

	key, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || !h.tokens.VerifyDelete(uint(key), tok) {
		return nil
	}

	cert, err := h.store.Get(ctx, uint(key))
	if err != nil {
		if !errors.Is(err, certificate.ErrNotFound) {
			logger(ctx).Error().Err(err).Uint64("key", key).Msg("could not load certificate to delete")
		}
		return nil
	}

	if err := h.store.Delete(ctx, cert.Key); err != nil {
		if errors.Is(err, certificate.ErrNotFound) {
			return nil
		}
		logger(ctx).Error().Err(err).Str("certificate_id", cert.ID).Msg("could not delete certificate")
		return &notice.Props{Message: "Could not delete certificate.", Variant: notice.VariantError}
	}

	if err := h.cache.Delete(ctx, cert.ID); err != nil {
		logger(ctx).Warn().Err(err).Str("certificate_id", cert.ID).Msg("could not evict image cache")
	}

	metrics.CertificatesDeleted.Inc()
	logger(ctx).Info().Str("certificate_id", cert.ID).Msg("certificate deleted")

	return &notice.Props{Message: "Deleted.", Variant: notice.VariantSuccess}
}

// AdminAddPage renders the certificate form inside the admin pages.
func (h *Handler) AdminAddPage(c *gin.Context) {
	renderPage(c, http.StatusOK, pages.AdminAddPage(components.FormData{Action: pages.AdminAddPath}))
}

// AdminSubmitCertificate issues a certificate from the admin form.
func (h *Handler) AdminSubmitCertificate(c *gin.Context) {
	h.issue(c, func(form components.FormData) templ.Component {
		form.Action = pages.AdminAddPath
		return pages.AdminAddPage(form)
	})
}

func (h *Handler) AdminDonatePage(c *gin.Context) {
	renderPage(c, http.StatusOK, pages.AdminDonatePage(h.donateURL))
}
