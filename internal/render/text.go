package render

import (
	"image"
	"os"

	"github.com/golang/freetype/truetype"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

const fontDPI = 96

// loadFont reads the TrueType font at path, or the bundled Go Regular font
// when path is empty.
func loadFont(path string) (*truetype.Font, error) {
	data := goregular.TTF
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, errors.Wrapf(ErrFontMissing, "'%s'", path)
			}
			return nil, errors.Wrap(err, "could not read font")
		}
	}

	f, err := truetype.Parse(data)
	if err != nil {
		return nil, errors.Wrap(err, "could not parse font")
	}

	return f, nil
}

// drawText draws s at the field position. A centered field ignores X and
// centers the measured glyph run on the canvas width.
func drawText(canvas *image.RGBA, f *truetype.Font, field TextField, s string) {
	face := truetype.NewFace(f, &truetype.Options{
		Size:    field.Size,
		DPI:     fontDPI,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	x := field.X
	if field.Centered {
		width := font.MeasureString(face, s)
		x = float64(canvas.Bounds().Dx())/2 - float64(width)/64/2
	}

	drawer := &font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(field.Color),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(field.Y * 64)},
	}
	drawer.DrawString(s)
}
