package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Signer authenticates session cookies so a tampered token is rejected
// before any store lookup. The cookie value is "<token>.<hex hmac>".
type Signer struct {
	secret []byte
}

// NewSigner creates a Signer keyed by the server's SECRET_KEY
func NewSigner(secret string) *Signer {
	return &Signer{secret: []byte(secret)}
}

// Sign returns the cookie value for a token
func (s *Signer) Sign(token string) string {
	return token + "." + s.mac(token)
}

// Verify checks a cookie value and returns the embedded token.
// ok is false for malformed or tampered values.
func (s *Signer) Verify(value string) (token string, ok bool) {
	i := strings.LastIndexByte(value, '.')
	if i < 0 {
		return "", false
	}
	token, sig := value[:i], value[i+1:]
	if !hmac.Equal([]byte(sig), []byte(s.mac(token))) {
		return "", false
	}
	return token, true
}

func (s *Signer) mac(token string) string {
	h := hmac.New(sha256.New, s.secret)
	h.Write([]byte(token))
	return hex.EncodeToString(h.Sum(nil))
}
