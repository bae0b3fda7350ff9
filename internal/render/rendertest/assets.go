// Package rendertest provides template and font fixtures for tests that
// render certificates.
package rendertest

import (
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	TemplateWidth  = 1123
	TemplateHeight = 794
)

// Background is the fill color of the generated template.
var Background = color.RGBA{235, 225, 200, 255}

// Assets writes a plain JPEG template and a TrueType font to a temporary
// directory and returns their paths.
func Assets(t testing.TB) (templatePath string, fontPath string) {
	t.Helper()

	dir := t.TempDir()
	templatePath = filepath.Join(dir, "certificate-template.jpg")
	fontPath = filepath.Join(dir, "font.ttf")

	img := image.NewRGBA(image.Rect(0, 0, TemplateWidth, TemplateHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)

	file, err := os.Create(templatePath)
	require.NoError(t, err)
	defer file.Close()
	require.NoError(t, jpeg.Encode(file, img, &jpeg.Options{Quality: 95}))

	require.NoError(t, os.WriteFile(fontPath, goregular.TTF, 0o600))

	return templatePath, fontPath
}
