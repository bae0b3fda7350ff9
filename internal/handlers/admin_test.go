package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/cristianadrielbraun/certgen/internal/store/memory"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminRequiresCredentials(t *testing.T) {
	env := setupTest(t, memory.NewStore())

	for _, path := range []string{"/admin/certificates", "/admin/certificates/add", "/admin/donate"} {
		w := env.get(path)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)

		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.SetBasicAuth(adminUser, "wrong")
		assert.Equal(t, http.StatusUnauthorized, env.do(req).Code, path)
	}
}

func TestAdminClosedWithoutPassword(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin", RequireAdmin(adminUser, ""), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.SetBasicAuth(adminUser, "")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminListNewestFirst(t *testing.T) {
	env := setupTest(t, memory.NewStore())

	empty := env.adminGet("/admin/certificates")
	require.Equal(t, http.StatusOK, empty.Code)
	assert.Contains(t, empty.Body.String(), "No certificates.")

	first := env.issue(t)
	second := env.issue(t)

	w := env.adminGet("/admin/certificates")
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	require.Contains(t, body, first)
	require.Contains(t, body, second)
	assert.Less(t, strings.Index(body, second), strings.Index(body, first))
	assert.Contains(t, body, siteURL+"/certificates/"+first)
	assert.Contains(t, body, "delete_cert=")
	assert.Contains(t, body, "Delete this?")
	assert.Contains(t, body, "Ada Lovelace")
	assert.NotContains(t, body, "Deleted.")
}

func TestAdminDeleteWithValidToken(t *testing.T) {
	env := setupTest(t, memory.NewStore())
	id := env.issue(t)
	other := env.issue(t)

	cert, err := env.store.FindByID(context.Background(), id)
	require.NoError(t, err)
	tok, err := env.tokens.DeleteToken(cert.Key)
	require.NoError(t, err)

	w := env.adminGet(deleteURL(cert.Key, tok))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Deleted.")
	assert.NotContains(t, w.Body.String(), id)

	assert.Equal(t, http.StatusNotFound, env.get("/certificates/"+id).Code)
	assert.Equal(t, http.StatusOK, env.get("/certificates/"+other).Code)

	// Replaying the token finds nothing left to delete.
	again := env.adminGet(deleteURL(cert.Key, tok))
	require.Equal(t, http.StatusOK, again.Code)
	assert.NotContains(t, again.Body.String(), "Deleted.")
}

func TestAdminDeleteWithInvalidToken(t *testing.T) {
	env := setupTest(t, memory.NewStore())
	id := env.issue(t)
	other := env.issue(t)

	cert, err := env.store.FindByID(context.Background(), id)
	require.NoError(t, err)
	otherCert, err := env.store.FindByID(context.Background(), other)
	require.NoError(t, err)
	otherTok, err := env.tokens.DeleteToken(otherCert.Key)
	require.NoError(t, err)

	paths := map[string]string{
		"missing token":      "/admin/certificates?delete_cert=" + strconv.FormatUint(uint64(cert.Key), 10),
		"garbage token":      deleteURL(cert.Key, "not-a-token"),
		"token of other key": deleteURL(cert.Key, otherTok),
		"non numeric key":    "/admin/certificates?delete_cert=abc&_token=" + url.QueryEscape(otherTok),
	}

	for name, path := range paths {
		t.Run(name, func(t *testing.T) {
			w := env.adminGet(path)
			require.Equal(t, http.StatusOK, w.Code)
			assert.NotContains(t, w.Body.String(), "Deleted.")
			assert.Contains(t, w.Body.String(), id)
		})
	}

	page := env.get("/certificates/" + id)
	assert.Equal(t, http.StatusOK, page.Code)
	assert.Contains(t, page.Body.String(), "Name: Ada Lovelace")

	certs, err := env.store.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, certs, 2)
}

func TestAdminAddCertificate(t *testing.T) {
	env := setupTest(t, memory.NewStore())

	page := env.adminGet("/admin/certificates/add")
	require.Equal(t, http.StatusOK, page.Code)
	assert.Contains(t, page.Body.String(), `action="/admin/certificates/add"`)

	req := formRequest("/admin/certificates/add", validForm())
	req.SetBasicAuth(adminUser, adminPassword)
	w := env.do(req)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Regexp(t, `^/certificates/CERT-\d{8}-[0-9A-F]{10}$`, w.Header().Get("Location"))

	invalid := validForm()
	invalid.Del("cg_date")
	req = formRequest("/admin/certificates/add", invalid)
	req.SetBasicAuth(adminUser, adminPassword)
	w = env.do(req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `value="Ada Lovelace"`)

	certs, err := env.store.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, certs, 1)
}

func TestAdminDonatePage(t *testing.T) {
	env := setupTest(t, memory.NewStore(), WithDonateURL("https://donate.example.com"))

	w := env.adminGet("/admin/donate")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "https://donate.example.com")
}

func TestAdminIndexRedirects(t *testing.T) {
	env := setupTest(t, memory.NewStore())

	w := env.adminGet("/admin")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/certificates", w.Header().Get("Location"))
}
