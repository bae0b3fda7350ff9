package pages

import (
	"github.com/cristianadrielbraun/certgen/web/components"
	"github.com/cristianadrielbraun/certgen/web/components/ui/notice"
)

const (
	AdminListPath   = "/admin/certificates"
	AdminAddPath    = "/admin/certificates/add"
	AdminDonatePath = "/admin/donate"
)

// AdminListProps feeds AdminListPage.
type AdminListProps struct {
	Rows      []components.CertificateRow
	Notice    *notice.Props
	DonateURL string
}
