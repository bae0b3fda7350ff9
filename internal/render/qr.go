package render

import (
	"bytes"
	"image"
	"image/draw"
	"image/png"

	"github.com/pkg/errors"
	"github.com/yeqown/go-qrcode/v2"
	"github.com/yeqown/go-qrcode/writer/standard"
)

// bufferCloser lets the standard writer encode into memory.
type bufferCloser struct {
	*bytes.Buffer
}

func (bufferCloser) Close() error { return nil }

// qrBitmap encodes content with low error correction at the layout's
// module size and quiet zone.
func qrBitmap(content string, layout Layout) (image.Image, error) {
	qrc, err := qrcode.NewWith(content, qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionLow))
	if err != nil {
		return nil, errors.Wrap(err, "could not create qr code")
	}

	var buf bytes.Buffer
	writer := standard.NewWithWriter(
		bufferCloser{&buf},
		standard.WithQRWidth(layout.QRModulePixels),
		standard.WithBorderWidth(layout.QRQuietZone*int(layout.QRModulePixels)),
		standard.WithFgColor(layout.QRForeground),
		standard.WithBgColor(layout.QRBackground),
		standard.WithBuiltinImageEncoder(standard.PNG_FORMAT),
	)

	if err := qrc.Save(writer); err != nil {
		return nil, errors.Wrap(err, "could not generate qr code image")
	}

	img, err := png.Decode(&buf)
	if err != nil {
		return nil, errors.Wrap(err, "could not decode qr code image")
	}

	return img, nil
}

// overlayQR copies the code pixels into the bottom right corner of canvas,
// margin pixels away from both edges. No blending is applied.
func overlayQR(canvas *image.RGBA, qr image.Image, margin int) {
	qb := qr.Bounds()
	cb := canvas.Bounds()

	origin := image.Pt(cb.Dx()-qb.Dx()-margin, cb.Dy()-qb.Dy()-margin)
	dst := image.Rectangle{Min: origin, Max: origin.Add(qb.Size())}

	draw.Draw(canvas, dst, qr, qb.Min, draw.Src)
}
