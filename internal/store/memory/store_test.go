package memory

import (
	"testing"

	"github.com/cristianadrielbraun/certgen/internal/certificate"
	"github.com/cristianadrielbraun/certgen/internal/certificate/storetest"
)

func TestStore(t *testing.T) {
	storetest.TestStore(t, func(t *testing.T) certificate.Store {
		return NewStore()
	})
}
