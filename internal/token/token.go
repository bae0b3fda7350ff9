package token

import (
	"fmt"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/pkg/errors"
)

const deleteAction = "cg_delete_cert_"

// Signer issues and checks the tokens that authorize admin actions on a
// single record. A token is bound to the action name and the numeric record
// key and expires after maxAge.
type Signer struct {
	codec *securecookie.SecureCookie
}

// NewSigner returns a signer using secret as HMAC key. An empty secret is
// replaced by a random one, invalidating tokens on restart.
func NewSigner(secret []byte, maxAge time.Duration) *Signer {
	if len(secret) == 0 {
		secret = securecookie.GenerateRandomKey(32)
	}

	codec := securecookie.New(secret, nil)
	codec.MaxAge(int(maxAge / time.Second))
	codec.SetSerializer(securecookie.JSONEncoder{})

	return &Signer{codec: codec}
}

// DeleteToken returns the token authorizing the deletion of the record key.
func (s *Signer) DeleteToken(key uint) (string, error) {
	token, err := s.codec.Encode(deleteName(key), key)
	if err != nil {
		return "", errors.WithStack(err)
	}
	return token, nil
}

// VerifyDelete reports whether token authorizes deleting the record key.
func (s *Signer) VerifyDelete(key uint, token string) bool {
	if token == "" {
		return false
	}

	var decoded uint
	if err := s.codec.Decode(deleteName(key), token, &decoded); err != nil {
		return false
	}

	return decoded == key
}

func deleteName(key uint) string {
	return fmt.Sprintf("%s%d", deleteAction, key)
}
