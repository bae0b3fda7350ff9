package certificate

import (
	"encoding/hex"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	idPrefix     = "CERT-"
	idDateLayout = "20060102"
	idRandomSize = 5
)

var (
	// IDPattern matches identifiers produced by NewID.
	IDPattern = regexp.MustCompile(`^CERT-\d{8}-[0-9A-F]{10}$`)
	// PathPattern is what the validator route accepts as an identifier.
	PathPattern = regexp.MustCompile(`^[A-Z0-9-]+$`)
)

// NewID returns CERT-<YYYYMMDD>-<10 upper hex chars>, the suffix being read
// from r. Collisions are not checked here.
func NewID(now time.Time, r io.Reader) (string, error) {
	suffix := make([]byte, idRandomSize)
	if _, err := io.ReadFull(r, suffix); err != nil {
		return "", errors.Wrap(err, "could not read random suffix")
	}

	return idPrefix + now.Format(idDateLayout) + "-" + strings.ToUpper(hex.EncodeToString(suffix)), nil
}

// ValidPathID reports whether id can be looked up by the validator page.
func ValidPathID(id string) bool {
	return id != "" && PathPattern.MatchString(id)
}
