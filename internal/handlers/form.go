package handlers

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/cristianadrielbraun/certgen/internal/certificate"
	"github.com/cristianadrielbraun/certgen/web/components"
	"github.com/cristianadrielbraun/certgen/web/pages"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

const issueErrorMessage = "Error generating certificate."

// HomePage renders the public certificate form.
func (h *Handler) HomePage(c *gin.Context) {
	renderPage(c, http.StatusOK, pages.HomePage(components.FormData{Action: "/"}))
}

// SubmitCertificate issues a certificate from the public form and redirects
// to its validation page.
func (h *Handler) SubmitCertificate(c *gin.Context) {
	h.issue(c, func(form components.FormData) templ.Component {
		form.Action = "/"
		return pages.HomePage(form)
	})
}

// issue binds the form, stores the certificate and redirects. A submission
// with an empty field redisplays the form without creating anything.
func (h *Handler) issue(c *gin.Context, redisplay func(components.FormData) templ.Component) {
	var sub certificate.Submission
	if err := c.ShouldBind(&sub); err != nil {
		renderPage(c, http.StatusOK, redisplay(components.FormData{}))
		return
	}

	cert, err := h.issuer.Issue(c.Request.Context(), sub)
	if err != nil {
		if errors.Is(err, certificate.ErrInvalidSubmission) {
			clean := sub.Sanitized()
			renderPage(c, http.StatusOK, redisplay(components.FormData{
				Name:   clean.Name,
				Course: clean.Course,
				Date:   clean.Date,
			}))
			return
		}

		fail(c, err, issueErrorMessage)
		return
	}

	c.Redirect(http.StatusFound, certificatePath(cert.ID))
	c.Abort()
}
