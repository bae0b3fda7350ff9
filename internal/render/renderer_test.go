package render

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"github.com/cristianadrielbraun/certgen/internal/render/rendertest"
	"github.com/golang/freetype/truetype"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

var testFields = Fields{
	Name:          "Ada Lovelace",
	Course:        "Analytical Engines",
	Date:          "2026-10-18",
	ID:            "CERT-20261018-0A1B2C3D4E",
	ValidationURL: "https://certs.example.com/certificates/CERT-20261018-0A1B2C3D4E",
}

func TestRenderKeepsTemplateDimensions(t *testing.T) {
	tpl, ttf := rendertest.Assets(t)

	var buf bytes.Buffer
	require.NoError(t, NewRenderer(tpl, ttf).Render(&buf, testFields))

	img, format, err := image.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, rendertest.TemplateWidth, img.Bounds().Dx())
	assert.Equal(t, rendertest.TemplateHeight, img.Bounds().Dy())
}

func TestRenderPlacesQRBottomRight(t *testing.T) {
	tpl, ttf := rendertest.Assets(t)

	var buf bytes.Buffer
	require.NoError(t, NewRenderer(tpl, ttf).Render(&buf, testFields))

	out, err := jpeg.Decode(&buf)
	require.NoError(t, err)

	qr, err := qrBitmap(testFields.ValidationURL, DefaultLayout)
	require.NoError(t, err)

	qw, qh := qr.Bounds().Dx(), qr.Bounds().Dy()
	originX := rendertest.TemplateWidth - qw - DefaultLayout.QRMargin
	originY := rendertest.TemplateHeight - qh - DefaultLayout.QRMargin
	quiet := DefaultLayout.QRQuietZone * int(DefaultLayout.QRModulePixels)

	// Inside the quiet zone: white. On the top-left finder ring: dark.
	assert.Greater(t, luminance(out.At(originX+1, originY+1)), uint8(200))
	assert.Less(t, luminance(out.At(originX+quiet+1, originY+quiet+1)), uint8(110))
	// Just outside the code: template background.
	assert.InDelta(t, luminance(color.RGBA{235, 225, 200, 255}), luminance(out.At(originX-5, originY-5)), 12)
}

func TestRenderMissingTemplate(t *testing.T) {
	_, ttf := rendertest.Assets(t)

	var buf bytes.Buffer
	err := NewRenderer(filepath.Join(t.TempDir(), "nope.jpg"), ttf).Render(&buf, testFields)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTemplateMissing))
	assert.Zero(t, buf.Len())
}

func TestRenderMissingFont(t *testing.T) {
	tpl, _ := rendertest.Assets(t)

	var buf bytes.Buffer
	err := NewRenderer(tpl, filepath.Join(t.TempDir(), "nope.ttf")).Render(&buf, testFields)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFontMissing))
	assert.Zero(t, buf.Len())
}

func TestQRBitmapSize(t *testing.T) {
	qr, err := qrBitmap("https://example.com/certificates/CERT-20261018-0A1B2C3D4E", DefaultLayout)
	require.NoError(t, err)

	b := qr.Bounds()
	assert.Equal(t, b.Dx(), b.Dy())

	// Module count is 21 + 4*(version-1); the side is (modules + 2*quiet) * px.
	px := int(DefaultLayout.QRModulePixels)
	modules := b.Dx()/px - 2*DefaultLayout.QRQuietZone
	assert.Zero(t, b.Dx()%px)
	assert.Zero(t, (modules-21)%4)
}

func TestDrawTextCentered(t *testing.T) {
	f, err := truetype.Parse(goregular.TTF)
	require.NoError(t, err)

	canvas := image.NewRGBA(image.Rect(0, 0, 600, 100))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	drawText(canvas, f, TextField{X: 5, Y: 60, Size: 20, Color: color.Black, Centered: true}, "Centered Name")

	minX, maxX := inkExtent(canvas)
	require.Less(t, minX, maxX)

	left := minX
	right := canvas.Bounds().Dx() - 1 - maxX
	assert.InDelta(t, left, right, 6, "left=%d right=%d", left, right)
}

func TestDrawTextAtOrigin(t *testing.T) {
	f, err := truetype.Parse(goregular.TTF)
	require.NoError(t, err)

	canvas := image.NewRGBA(image.Rect(0, 0, 600, 100))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	drawText(canvas, f, TextField{X: 40, Y: 60, Size: 20, Color: color.Black}, "Left")

	minX, _ := inkExtent(canvas)
	assert.InDelta(t, 40, minX, 4)
}

func TestLoadSVGTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "template.svg")
	svg := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 400 300" width="400" height="300">` +
		`<rect x="0" y="0" width="400" height="300" fill="#102030"/></svg>`
	require.NoError(t, os.WriteFile(path, []byte(svg), 0o600))

	canvas, err := loadTemplate(path)
	require.NoError(t, err)
	assert.Equal(t, 400, canvas.Bounds().Dx())
	assert.Equal(t, 300, canvas.Bounds().Dy())

	r, g, b, _ := canvas.At(200, 150).RGBA()
	assert.Equal(t, []uint32{0x10, 0x20, 0x30}, []uint32{r >> 8, g >> 8, b >> 8})
}

func TestParseHexColor(t *testing.T) {
	tests := map[string]struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		"with hash":    {in: "#ff8000", want: color.RGBA{255, 128, 0, 255}},
		"without hash": {in: "000000", want: color.RGBA{0, 0, 0, 255}},
		"short":        {in: "#fff", wantErr: true},
		"not hex":      {in: "#gg0000", wantErr: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseHexColor(tc.in)
			if tc.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidColor))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func luminance(c color.Color) uint8 {
	return color.GrayModel.Convert(c).(color.Gray).Y
}

func inkExtent(img *image.RGBA) (minX, maxX int) {
	b := img.Bounds()
	minX, maxX = b.Max.X, -1
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if luminance(img.At(x, y)) < 128 {
				if x < minX {
					minX = x
				}
				if x > maxX {
					maxX = x
				}
			}
		}
	}
	return minX, maxX
}

func TestBundledSVGTemplate(t *testing.T) {
	canvas, err := loadTemplate(filepath.Join("..", "..", "web", "static", "certificate-template.svg"))
	require.NoError(t, err)
	assert.Equal(t, 1123, canvas.Bounds().Dx())
	assert.Equal(t, 794, canvas.Bounds().Dy())
}

func TestRenderBundledFont(t *testing.T) {
	templatePath, _ := rendertest.Assets(t)

	var buf bytes.Buffer
	require.NoError(t, NewRenderer(templatePath, "").Render(&buf, testFields))

	_, err := jpeg.Decode(&buf)
	require.NoError(t, err)
}
