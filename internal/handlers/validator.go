package handlers

import (
	"bytes"
	"context"
	"net/http"

	"github.com/cristianadrielbraun/certgen/internal/certificate"
	"github.com/cristianadrielbraun/certgen/internal/metrics"
	"github.com/cristianadrielbraun/certgen/internal/render"
	"github.com/cristianadrielbraun/certgen/web/pages"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

const notFoundBody = "<h1>Certificate Not Found</h1>"

// CertificatePage resolves the certificate named in the path and renders
// the confirmation page, or streams its image when ?image or ?dl is set.
func (h *Handler) CertificatePage(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	if !certificate.ValidPathID(id) {
		h.notFound(c)
		return
	}

	cert, err := h.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, certificate.ErrNotFound) {
			h.notFound(c)
			return
		}
		metrics.CertificateLookups.WithLabelValues("error").Inc()
		fail(c, err, "Error loading certificate.")
		return
	}

	metrics.CertificateLookups.WithLabelValues("found").Inc()

	query := c.Request.URL.Query()
	if query.Has("image") {
		h.streamImage(c, cert, false)
		return
	}
	if query.Has("dl") {
		h.streamImage(c, cert, true)
		return
	}

	renderPage(c, http.StatusOK, pages.CertificatePage(pages.CertificateView{
		ID:        cert.ID,
		Name:      cert.Name,
		Course:    cert.Course,
		Date:      cert.Date,
		DonateURL: h.donateURL,
	}))
}

func (h *Handler) notFound(c *gin.Context) {
	metrics.CertificateLookups.WithLabelValues("not_found").Inc()
	c.Data(http.StatusNotFound, "text/html; charset=utf-8", []byte(notFoundBody))
	c.Abort()
}

// streamImage sends the certificate JPEG, inline or as an attachment. The
// image is fully composed before any byte is written.
func (h *Handler) streamImage(c *gin.Context, cert *certificate.Certificate, attachment bool) {
	data, err := h.certificateImage(c, cert)
	if err != nil {
		switch {
		case errors.Is(err, render.ErrTemplateMissing):
			fail(c, err, "Template missing.")
		case errors.Is(err, render.ErrFontMissing):
			fail(c, err, "Font missing.")
		default:
			fail(c, err, "Error rendering certificate.")
		}
		return
	}

	disposition := "inline"
	if attachment {
		disposition = "attachment"
		c.Header("Content-Disposition", `attachment; filename="`+cert.ID+`.jpg"`)
	}
	metrics.ImagesRendered.WithLabelValues(disposition).Inc()

	c.Data(http.StatusOK, "image/jpeg", data)
	c.Abort()
}

// certificateImage returns the cached image or renders and caches it.
// Images are only cached when the site URL is configured: otherwise the QR
// code depends on the request Host header. Cache failures are logged and
// otherwise ignored.
func (h *Handler) certificateImage(c *gin.Context, cert *certificate.Certificate) ([]byte, error) {
	ctx := c.Request.Context()
	cacheable := h.siteURL != ""

	if cacheable {
		data, found, err := h.cache.Get(ctx, cert.ID)
		if err != nil {
			logger(ctx).Warn().Err(err).Str("certificate_id", cert.ID).Msg("could not read image cache")
		}
		if found {
			return data, nil
		}
	}

	var buf bytes.Buffer
	err := h.renderer.Render(&buf, render.Fields{
		Name:          cert.Name,
		Course:        cert.Course,
		Date:          cert.Date,
		ID:            cert.ID,
		ValidationURL: h.validationURL(c, cert.ID),
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if cacheable {
		h.storeImage(ctx, cert.ID, buf.Bytes())
	}

	return buf.Bytes(), nil
}

func (h *Handler) storeImage(ctx context.Context, id string, data []byte) {
	if err := h.cache.Set(ctx, id, data); err != nil {
		logger(ctx).Warn().Err(err).Str("certificate_id", id).Msg("could not write image cache")
	}
}
