package handlers

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/cristianadrielbraun/certgen/internal/cache"
	"github.com/cristianadrielbraun/certgen/internal/certificate"
	"github.com/cristianadrielbraun/certgen/internal/render"
	"github.com/cristianadrielbraun/certgen/internal/token"
	"github.com/cristianadrielbraun/certgen/web/pages"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const certificatesPath = "/certificates/"

// ImageRenderer composes certificate images.
type ImageRenderer interface {
	Render(w io.Writer, f render.Fields) error
}

// Handler holds the dependencies of the HTTP handlers.
type Handler struct {
	store     certificate.Store
	issuer    *certificate.Issuer
	renderer  ImageRenderer
	tokens    *token.Signer
	cache     cache.ImageCache
	siteURL   string
	donateURL string
}

type Option func(*Handler)

// WithSiteURL fixes the base of validation URLs instead of deriving it from
// the request.
func WithSiteURL(u string) Option {
	return func(h *Handler) { h.siteURL = strings.TrimRight(u, "/") }
}

func WithCache(c cache.ImageCache) Option {
	return func(h *Handler) { h.cache = c }
}

func WithDonateURL(u string) Option {
	return func(h *Handler) { h.donateURL = u }
}

func WithIssuer(i *certificate.Issuer) Option {
	return func(h *Handler) { h.issuer = i }
}

// New returns a new Handler instance.
func New(store certificate.Store, renderer ImageRenderer, tokens *token.Signer, opts ...Option) *Handler {
	h := &Handler{
		store:     store,
		issuer:    certificate.NewIssuer(store),
		renderer:  renderer,
		tokens:    tokens,
		cache:     cache.Noop{},
		donateURL: "https://paypal.me/srisubaram",
	}
	for _, o := range opts {
		o(h)
	}
	return h
}

// baseURL returns the configured site URL or one derived from the request.
func (h *Handler) baseURL(c *gin.Context) string {
	if h.siteURL != "" {
		return h.siteURL
	}

	scheme := "http"
	if xf := c.Request.Header.Get("X-Forwarded-Proto"); xf != "" {
		scheme = xf
	} else if c.Request.TLS != nil {
		scheme = "https"
	}

	return scheme + "://" + c.Request.Host
}

// certificatePath is the public path of a certificate.
func certificatePath(id string) string {
	return certificatesPath + id
}

func (h *Handler) validationURL(c *gin.Context, id string) string {
	return h.baseURL(c) + certificatePath(id)
}

func renderPage(c *gin.Context, status int, page templ.Component) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	if err := page.Render(c.Request.Context(), c.Writer); err != nil {
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("could not render page")
	}
}

// fail terminates the request with a generic error page.
func fail(c *gin.Context, err error, message string) {
	zerolog.Ctx(c.Request.Context()).Error().Stack().Err(err).Msg(message)
	renderPage(c, http.StatusInternalServerError, pages.ErrorPage(message))
	c.Abort()
}

func logger(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}
