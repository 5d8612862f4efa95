package social

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"solosuccess.app/api/internal/model"
)

var ErrInvalidState = errors.New("invalid or expired oauth state")

const stateTTL = 10 * time.Minute

// StateSigner issues self-verifying OAuth state values bound to a user and platform.
// The PKCE verifier is derived from the state with the same key, so nothing is stored
// between the redirect and the callback.
type StateSigner struct {
	key []byte
	now func() time.Time
}

func NewStateSigner(secret string) *StateSigner {
	return &StateSigner{key: []byte(secret), now: time.Now}
}

// Issue returns the state to send to the provider and the matching PKCE verifier.
func (s *StateSigner) Issue(userID int64, platform model.SocialPlatform) (string, string, error) {
	nonce := make([]byte, 12)
	if _, err := rand.Read(nonce); err != nil {
		return "", "", fmt.Errorf("generating state nonce: %w", err)
	}

	payload := strings.Join([]string{
		strconv.FormatInt(userID, 10),
		string(platform),
		strconv.FormatInt(s.now().Add(stateTTL).Unix(), 10),
		base64.RawURLEncoding.EncodeToString(nonce),
	}, "|")
	encoded := base64.RawURLEncoding.EncodeToString([]byte(payload))
	state := encoded + "." + s.sign("state:"+encoded)

	return state, s.sign("verifier:" + encoded), nil
}

// Verify checks the signature, owner and expiry and returns the PKCE verifier.
func (s *StateSigner) Verify(state string, userID int64, platform model.SocialPlatform) (string, error) {
	encoded, sig, ok := strings.Cut(state, ".")
	if !ok || !hmac.Equal([]byte(sig), []byte(s.sign("state:"+encoded))) {
		return "", ErrInvalidState
	}

	raw, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return "", ErrInvalidState
	}
	parts := strings.Split(string(raw), "|")
	if len(parts) != 4 {
		return "", ErrInvalidState
	}

	owner, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil || owner != userID || parts[1] != string(platform) {
		return "", ErrInvalidState
	}

	expires, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil || s.now().Unix() > expires {
		return "", ErrInvalidState
	}

	return s.sign("verifier:" + encoded), nil
}

func (s *StateSigner) sign(msg string) string {
	mac := hmac.New(sha256.New, s.key)
	mac.Write([]byte(msg))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
