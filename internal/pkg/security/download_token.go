package security

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// DownloadTokenClaims binds a signed download token to a user, font and
// license. Nonce identifies the token in the server-side registry; the
// signature only proves the token was issued here, single use is enforced
// by the registry.
type DownloadTokenClaims struct {
	Nonce     string `json:"nonce"`
	UserID    string `json:"user_id"`
	FontID    string `json:"font_id"`
	LicenseID string `json:"license_id"`
	ExpiresAt int64  `json:"exp"`
}

var ErrTokenInvalid = errors.New("invalid download token")

// GenerateDownloadToken creates a signed single-use download token.
func GenerateDownloadToken(userID, fontID, licenseID string, ttl time.Duration, secret string) (string, *DownloadTokenClaims, error) {
	if secret == "" {
		return "", nil, errors.New("secret is required for token generation")
	}
	nonce := make([]byte, 16)
	if _, err := rand.Read(nonce); err != nil {
		return "", nil, err
	}
	claims := &DownloadTokenClaims{
		Nonce:     hex.EncodeToString(nonce),
		UserID:    userID,
		FontID:    fontID,
		LicenseID: licenseID,
		ExpiresAt: time.Now().Add(ttl).Unix(),
	}
	payload, err := json.Marshal(claims)
	if err != nil {
		return "", nil, err
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	sig := mac.Sum(nil)
	token := fmt.Sprintf("%s.%s", base64.RawURLEncoding.EncodeToString(payload), base64.RawURLEncoding.EncodeToString(sig))
	return token, claims, nil
}

// VerifyDownloadToken checks the token signature and shape. Expiry and
// single-use enforcement are the registry's job; this only rejects tokens
// we never issued.
func VerifyDownloadToken(token, secret string) (*DownloadTokenClaims, error) {
	if secret == "" {
		return nil, errors.New("secret is required for token verification")
	}
	parts := strings.SplitN(token, ".", 2)
	if len(parts) != 2 {
		return nil, ErrTokenInvalid
	}
	payloadBytes, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return nil, ErrTokenInvalid
	}
	sigBytes, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, ErrTokenInvalid
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payloadBytes)
	expected := mac.Sum(nil)
	if !hmac.Equal(sigBytes, expected) {
		return nil, ErrTokenInvalid
	}
	var claims DownloadTokenClaims
	if err := json.Unmarshal(payloadBytes, &claims); err != nil {
		return nil, ErrTokenInvalid
	}
	if claims.Nonce == "" {
		return nil, ErrTokenInvalid
	}
	return &claims, nil
}
