// Package share encodes form contents into a self-contained link so state
// can be reconstructed by the recipient without any server storage, and
// renders that link as a QR image.
package share

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// ParamName is the query parameter carrying the encoded payload.
const ParamName = "d"

// Payload is the form data carried inside a share link.
type Payload struct {
	Task         string `json:"task"`
	Project      string `json:"project,omitempty"`
	Organization string `json:"organization,omitempty"`
	DueDate      string `json:"dueDate,omitempty"`
}

// Encode serializes the payload to JSON and base64-encodes it with the
// URL-unsafe characters (+, /, =) substituted for URL-safe ones.
func Encode(p Payload) (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("failed to encode payload: %w", err)
	}
	enc := base64.StdEncoding.EncodeToString(data)
	enc = strings.ReplaceAll(enc, "+", "-")
	enc = strings.ReplaceAll(enc, "/", "_")
	enc = strings.TrimRight(enc, "=")
	return enc, nil
}

// Decode reverses Encode: the substitution is undone, padding restored,
// then the payload is base64-decoded and JSON-parsed. Any malformed input
// yields an error, never a panic; callers surface it as a warning.
func Decode(s string) (Payload, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Payload{}, fmt.Errorf("empty share data")
	}
	s = strings.ReplaceAll(s, "-", "+")
	s = strings.ReplaceAll(s, "_", "/")
	if pad := len(s) % 4; pad != 0 {
		s += strings.Repeat("=", 4-pad)
	}

	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return Payload{}, fmt.Errorf("malformed share data: %w", err)
	}

	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return Payload{}, fmt.Errorf("malformed share data: %w", err)
	}
	return p, nil
}

// Link builds a full share URL on the given base.
func Link(base string, p Payload) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid share base URL: %w", err)
	}
	enc, err := Encode(p)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set(ParamName, enc)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// ParseLink extracts and decodes the payload from a share URL.
func ParseLink(raw string) (Payload, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return Payload{}, fmt.Errorf("malformed share link: %w", err)
	}
	enc := u.Query().Get(ParamName)
	if enc == "" {
		return Payload{}, fmt.Errorf("share link carries no %q parameter", ParamName)
	}
	return Decode(enc)
}
