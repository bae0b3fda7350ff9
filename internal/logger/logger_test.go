package logger

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	SetupWriter(&buf, "debug", false)
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	r := gin.New()
	r.Use(Middleware())
	r.GET("/boom", func(c *gin.Context) {
		zerolog.Ctx(c.Request.Context()).Debug().Msg("inside")
		c.Status(http.StatusInternalServerError)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var inside map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &inside))
	assert.Equal(t, "/boom", inside["path"])
	assert.Equal(t, "inside", inside["message"])

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[1], &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, float64(http.StatusInternalServerError), entry["status"])
	assert.Equal(t, "GET", entry["method"])
}

func TestSetupWriterInvalidLevel(t *testing.T) {
	var buf bytes.Buffer
	SetupWriter(&buf, "loud", false)
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}
