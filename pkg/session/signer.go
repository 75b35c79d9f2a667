package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strings"
)

// Signer binds session ids to the application secret so cookies cannot be forged.
type Signer struct {
	secret []byte
}

func NewSigner(secret string) Signer {
	return Signer{secret: []byte(secret)}
}

// Sign returns "<id>.<mac>".
func (s Signer) Sign(id string) string {
	return id + "." + s.mac(id)
}

// Verify returns the session id carried by a signed cookie value.
func (s Signer) Verify(value string) (string, error) {
	i := strings.LastIndexByte(value, '.')
	if i <= 0 || i == len(value)-1 {
		return "", ErrInvalidSignature
	}
	id, sig := value[:i], value[i+1:]

	expected, err := base64.RawURLEncoding.DecodeString(s.mac(id))
	if err != nil {
		return "", ErrInvalidSignature
	}
	actual, err := base64.RawURLEncoding.DecodeString(sig)
	if err != nil {
		return "", ErrInvalidSignature
	}
	if !hmac.Equal(expected, actual) {
		return "", ErrInvalidSignature
	}
	return id, nil
}

func (s Signer) mac(id string) string {
	m := hmac.New(sha256.New, s.secret)
	m.Write([]byte(id))
	return base64.RawURLEncoding.EncodeToString(m.Sum(nil))
}
