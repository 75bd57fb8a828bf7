package auth

import (
	"encoding/base64"
	"errors"
	"strings"
)

// Credential extraction errors. A missing header and a malformed one are kept
// distinct for logging, but callers treat both as "no usable credentials".
var (
	ErrNoCredentials   = errors.New("no credentials provided")
	ErrMalformedHeader = errors.New("malformed authorization header")
)

// ParseBasicCredentials decodes an HTTP Basic authorization header into an
// (email, password) pair. The payload must base64-decode into two
// colon-separated parts; the password may itself contain colons.
func ParseBasicCredentials(header string) (string, string, error) {
	if header == "" {
		return "", "", ErrNoCredentials
	}

	scheme, payload, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Basic") {
		return "", "", ErrMalformedHeader
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(payload))
	if err != nil {
		return "", "", ErrMalformedHeader
	}

	email, password, found := strings.Cut(string(decoded), ":")
	if !found {
		return "", "", ErrMalformedHeader
	}

	return email, password, nil
}
