package render

import (
	"image"
	"image/draw"
	"image/jpeg"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

var (
	ErrTemplateMissing = errors.New("template missing")
	ErrFontMissing     = errors.New("font missing")
)

// loadTemplate decodes the background into a fresh RGBA canvas. JPEG is the
// expected format; an .svg template is rasterized at its viewBox size.
func loadTemplate(path string) (*image.RGBA, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrTemplateMissing, "'%s'", path)
		}
		return nil, errors.Wrap(err, "could not open template")
	}
	defer file.Close()

	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return rasterizeSVG(file)
	}

	img, err := jpeg.Decode(file)
	if err != nil {
		return nil, errors.Wrap(err, "could not decode template")
	}

	bounds := img.Bounds()
	canvas := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(canvas, canvas.Bounds(), img, bounds.Min, draw.Src)

	return canvas, nil
}

func rasterizeSVG(file *os.File) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(file, oksvg.WarnErrorMode)
	if err != nil {
		return nil, errors.Wrap(err, "could not parse svg template")
	}

	w, h := int(icon.ViewBox.W), int(icon.ViewBox.H)
	if w <= 0 || h <= 0 {
		return nil, errors.Errorf("svg template has an empty viewBox (%dx%d)", w, h)
	}

	canvas := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(white), image.Point{}, draw.Src)

	icon.SetTarget(0, 0, float64(w), float64(h))
	scanner := rasterx.NewScannerGV(w, h, canvas, canvas.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)

	return canvas, nil
}
