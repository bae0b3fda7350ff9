package main

import (
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"github.com/cristianadrielbraun/certgen/internal/render"
	"github.com/cristianadrielbraun/certgen/internal/render/rendertest"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fields = render.Fields{
	Name:          "Ada Lovelace",
	Course:        "Analytical Engines",
	Date:          "2026-10-18",
	ID:            "CERT-20261018-0A1B2C3D4E",
	ValidationURL: "https://certs.example.com/certificates/CERT-20261018-0A1B2C3D4E",
}

func TestWriteImage(t *testing.T) {
	tpl, ttf := rendertest.Assets(t)
	out := filepath.Join(t.TempDir(), "cert.jpg")

	require.NoError(t, writeImage(render.NewRenderer(tpl, ttf), out, fields))

	file, err := os.Open(out)
	require.NoError(t, err)
	defer file.Close()

	img, err := jpeg.Decode(file)
	require.NoError(t, err)
	assert.Equal(t, rendertest.TemplateWidth, img.Bounds().Dx())
}

func TestWriteImageMissingTemplateLeavesNoFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "cert.jpg")

	err := writeImage(render.NewRenderer(filepath.Join(t.TempDir(), "missing.jpg"), ""), out, fields)
	require.Error(t, err)
	assert.True(t, errors.Is(err, render.ErrTemplateMissing))

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}
