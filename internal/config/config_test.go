package config

import (
	"bytes"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cristianadrielbraun/certgen/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, "sqlite://certgen.db", cfg.DatabaseURL)
	assert.Equal(t, filepath.Join("web/static", "certificate-template.svg"), cfg.TemplatePath)
	assert.Empty(t, cfg.FontPath)
	assert.Equal(t, "admin", cfg.AdminUser)
	assert.Equal(t, 24*time.Hour, cfg.TokenMaxAge)
	assert.True(t, cfg.MetricsEnabled)
	assert.False(t, cfg.IsProduction())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SITE_URL", "https://certs.example.com/")
	t.Setenv("ASSETS_DIR", "/srv/assets")
	t.Setenv("FONT_PATH", "/fonts/custom.ttf")
	t.Setenv("APP_ENV", EnvProduction)
	t.Setenv("METRICS_ENABLED", "false")

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "https://certs.example.com", cfg.SiteURL)
	assert.Equal(t, "/srv/assets/certificate-template.svg", cfg.TemplatePath)
	assert.Equal(t, "/fonts/custom.ttf", cfg.FontPath)
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.MetricsEnabled)
}

func TestLoadFromFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("ADMIN_PASSWORD=s3cret\nCACHE_TTL=1h\n"), 0o600))

	cfg, err := LoadFile(envFile)
	require.NoError(t, err)

	assert.Equal(t, "s3cret", cfg.AdminPassword)
	assert.Equal(t, time.Hour, cfg.CacheTTL)
}

func TestLoadInvalidTokenMaxAge(t *testing.T) {
	t.Setenv("TOKEN_MAX_AGE", "0s")

	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestRepositoryAssetsRender(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(filepath.Join("..", "..")))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	for _, envFile := range []string{"missing.env", ".env.example"} {
		t.Run(envFile, func(t *testing.T) {
			cfg, err := LoadFile(envFile)
			require.NoError(t, err)

			var buf bytes.Buffer
			err = render.NewRenderer(cfg.TemplatePath, cfg.FontPath).Render(&buf, render.Fields{
				Name:          "Ada Lovelace",
				Course:        "Analytical Engines",
				Date:          "2026-10-18",
				ID:            "CERT-20261018-0A1B2C3D4E",
				ValidationURL: "https://certs.example.com/certificates/CERT-20261018-0A1B2C3D4E",
			})
			require.NoError(t, err)

			img, err := jpeg.Decode(&buf)
			require.NoError(t, err)
			assert.Equal(t, 1123, img.Bounds().Dx())
			assert.Equal(t, 794, img.Bounds().Dy())
		})
	}
}
