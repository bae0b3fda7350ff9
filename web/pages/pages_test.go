package pages

import (
	"bytes"
	"context"
	"testing"

	"github.com/cristianadrielbraun/certgen/web/components"
	"github.com/cristianadrielbraun/certgen/web/components/ui/notice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCertificatePageEscapesValues(t *testing.T) {
	var buf bytes.Buffer
	err := CertificatePage(CertificateView{
		ID:        "CERT-20261018-0A1B2C3D4E",
		Name:      `Bobby "<b>" Tables`,
		Course:    "Go & Friends",
		Date:      "2026-10-18",
		DonateURL: "https://donate.example.com",
	}).Render(context.Background(), &buf)
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, "<title>Certificate CERT-20261018-0A1B2C3D4E</title>")
	assert.Contains(t, html, "Go &amp; Friends")
	assert.NotContains(t, html, "<b>")
	assert.Contains(t, html, "https://donate.example.com")
}

func TestAdminListPage(t *testing.T) {
	var buf bytes.Buffer
	err := AdminListPage(AdminListProps{
		Rows: []components.CertificateRow{{
			ID:        "CERT-20261018-0A1B2C3D4E",
			Name:      "Ada",
			Course:    "Engines",
			Date:      "2026-10-18",
			ViewURL:   "https://certs.example.com/certificates/CERT-20261018-0A1B2C3D4E",
			DeleteURL: "/admin/certificates?_token=abc&delete_cert=1",
		}},
		Notice: &notice.Props{Message: "Deleted.", Variant: notice.VariantSuccess},
	}).Render(context.Background(), &buf)
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, "Deleted.")
	assert.Contains(t, html, "<table")
	assert.Contains(t, html, "/admin/certificates?_token=abc&amp;delete_cert=1")
	assert.NotContains(t, html, "No certificates.")
}

func TestAdminListPageEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, AdminListPage(AdminListProps{}).Render(context.Background(), &buf))
	assert.Contains(t, buf.String(), "No certificates.")
	assert.NotContains(t, buf.String(), "<table")
}

func TestErrorPageEscapesMessage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ErrorPage("<script>alert(1)</script>").Render(context.Background(), &buf))

	html := buf.String()
	assert.Contains(t, html, "<!doctype html>")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.NotContains(t, html, "<script>")
}

func TestHomePageRendersForm(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, HomePage(components.FormData{Action: "/", Name: "Ada"}).Render(context.Background(), &buf))

	html := buf.String()
	assert.Contains(t, html, `action="/"`)
	assert.Contains(t, html, `value="Ada"`)
	assert.Contains(t, html, `name="cg_submit"`)
}
