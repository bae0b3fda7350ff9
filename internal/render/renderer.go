package render

import (
	"image/jpeg"
	"io"

	"github.com/pkg/errors"
)

// Fields are the values printed on a certificate.
type Fields struct {
	Name   string
	Course string
	Date   string
	ID     string
	// ValidationURL is encoded in the QR code.
	ValidationURL string
}

type Renderer struct {
	templatePath string
	fontPath     string
	layout       Layout
}

type Option func(*Renderer)

func WithLayout(layout Layout) Option {
	return func(r *Renderer) { r.layout = layout }
}

func NewRenderer(templatePath, fontPath string, opts ...Option) *Renderer {
	r := &Renderer{
		templatePath: templatePath,
		fontPath:     fontPath,
		layout:       DefaultLayout,
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Render composes the certificate and writes it to w as a JPEG. w is only
// written to once composition succeeded.
func (r *Renderer) Render(w io.Writer, f Fields) error {
	canvas, err := loadTemplate(r.templatePath)
	if err != nil {
		return errors.WithStack(err)
	}

	ttf, err := loadFont(r.fontPath)
	if err != nil {
		return errors.WithStack(err)
	}

	drawText(canvas, ttf, r.layout.Name, f.Name)
	drawText(canvas, ttf, r.layout.Course, f.Course)
	drawText(canvas, ttf, r.layout.Date, f.Date)
	drawText(canvas, ttf, r.layout.ID, f.ID)

	qr, err := qrBitmap(f.ValidationURL, r.layout)
	if err != nil {
		return errors.WithStack(err)
	}
	overlayQR(canvas, qr, r.layout.QRMargin)

	if err := jpeg.Encode(w, canvas, &jpeg.Options{Quality: r.layout.JPEGQuality}); err != nil {
		return errors.Wrap(err, "could not encode jpeg")
	}

	return nil
}
