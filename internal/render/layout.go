package render

import (
	"image/color"
)

// TextField places one string on the template. X and Y are the pen origin
// (left end of the baseline) in pixels, Size is in points at 96 DPI.
type TextField struct {
	X        float64
	Y        float64
	Size     float64
	Color    color.Color
	Centered bool
}

// Layout holds the template specific constants. Changing the template means
// recalibrating these values.
type Layout struct {
	Name   TextField
	Course TextField
	Date   TextField
	ID     TextField

	// QRModulePixels is the size of one QR module.
	QRModulePixels uint8
	// QRQuietZone is the blank border around the code, in modules.
	QRQuietZone int
	// QRMargin is the distance between the code and the right/bottom template edges.
	QRMargin     int
	QRForeground color.Color
	QRBackground color.Color

	JPEGQuality int
}

var (
	black = color.RGBA{0, 0, 0, 255}
	grey  = color.RGBA{128, 128, 128, 255}
	white = color.RGBA{255, 255, 255, 255}
)

// DefaultLayout matches the bundled certificate template.
var DefaultLayout = Layout{
	Name:   TextField{X: 550, Y: 227, Size: 15, Color: black, Centered: true},
	Course: TextField{X: 375, Y: 290, Size: 32, Color: black},
	Date:   TextField{X: 570, Y: 346, Size: 15, Color: black},
	ID:     TextField{X: 460, Y: 682, Size: 10, Color: grey},

	QRModulePixels: 3,
	QRQuietZone:    2,
	QRMargin:       100,
	QRForeground:   black,
	QRBackground:   white,

	JPEGQuality: 90,
}
