package middleware

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Nonces are per-subject anti-forgery tokens bound to a single action name.
// A token minted for "campaign_update_status" does not validate against the
// export action, and it expires after the configured TTL.

// CreateNonce mints a nonce for the given action and subject.
func CreateNonce(secret, action, subject string, now time.Time) string {
	ts := strconv.FormatInt(now.Unix(), 10)
	sig := nonceSign(secret, action, subject, ts)
	return ts + "." + sig
}

// VerifyNonce checks a nonce against the calling action and subject.
func VerifyNonce(secret, action, subject, nonce string, now time.Time, ttl time.Duration) error {
	parts := strings.SplitN(nonce, ".", 2)
	if len(parts) != 2 {
		return fmt.Errorf("malformed nonce")
	}
	ts, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return fmt.Errorf("malformed nonce")
	}
	expected := nonceSign(secret, action, subject, parts[0])
	if !hmac.Equal([]byte(expected), []byte(parts[1])) {
		return fmt.Errorf("nonce mismatch")
	}
	issued := time.Unix(ts, 0)
	if issued.After(now.Add(time.Minute)) || now.Sub(issued) > ttl {
		return fmt.Errorf("nonce expired")
	}
	return nil
}

func nonceSign(secret, action, subject, ts string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(action + "|" + subject + "|" + ts))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
