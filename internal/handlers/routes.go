package handlers

import (
	"net/http"

	"github.com/cristianadrielbraun/certgen/web/pages"
	"github.com/gin-gonic/gin"
)

// Register mounts the public and admin routes. admin guards the admin group.
func (h *Handler) Register(r gin.IRouter, admin gin.HandlerFunc) {
	r.GET("/", h.HomePage)
	r.POST("/", h.SubmitCertificate)
	r.GET("/certificates/:id", h.CertificatePage)

	group := r.Group("/admin", admin)
	{
		group.GET("", func(c *gin.Context) {
			c.Redirect(http.StatusFound, pages.AdminListPath)
		})
		group.GET("/certificates", h.AdminList)
		group.GET("/certificates/add", h.AdminAddPage)
		group.POST("/certificates/add", h.AdminSubmitCertificate)
		group.GET("/donate", h.AdminDonatePage)
	}
}
