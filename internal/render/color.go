package render

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var ErrInvalidColor = errors.New("invalid color")

// ParseHexColor parses a #rrggbb (or rrggbb) color.
func ParseHexColor(s string) (color.RGBA, error) {
	v := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(v) != 6 {
		return color.RGBA{}, errors.Wrapf(ErrInvalidColor, "'%s'", s)
	}

	r, err1 := strconv.ParseUint(v[0:2], 16, 8)
	g, err2 := strconv.ParseUint(v[2:4], 16, 8)
	b, err3 := strconv.ParseUint(v[4:6], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return color.RGBA{}, errors.Wrapf(ErrInvalidColor, "'%s'", s)
	}

	return color.RGBA{uint8(r), uint8(g), uint8(b), 255}, nil
}
