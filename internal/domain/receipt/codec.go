// Package receipt turns an order plus its client into a self-contained,
// URL-safe token and back. It never reads or writes any store.
package receipt

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"taller_jaison/internal/domain/entities"
)

var (
	ErrMissingReceiptToken = errors.New("receipt token is missing")
	ErrInvalidReceiptToken = errors.New("receipt token is incomplete or damaged")
	ErrIncompleteSnapshot  = errors.New("receipt snapshot requires order id and client id")
)

// Snapshot is everything a guest needs to render a receipt offline.
type Snapshot struct {
	Order  entities.ServiceOrder `json:"order"`
	Client entities.Client       `json:"client"`
}

var encoding = base64.RawURLEncoding

// Encode serializes s as UTF-8 JSON and wraps it in unpadded base64url.
func Encode(s Snapshot) (string, error) {
	if strings.TrimSpace(s.Order.ID) == "" || strings.TrimSpace(s.Client.ID) == "" {
		return "", ErrIncompleteSnapshot
	}
	raw, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("encode receipt snapshot: %w", err)
	}
	return encoding.EncodeToString(raw), nil
}

// Decode is the inverse of Encode. Anything that is not exactly one
// well-formed snapshot is reported as ErrInvalidReceiptToken.
func Decode(token string) (Snapshot, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Snapshot{}, ErrMissingReceiptToken
	}
	raw, err := encoding.DecodeString(strings.TrimRight(token, "="))
	if err != nil {
		// links produced before the switch to base64url used the standard alphabet
		legacy, legacyErr := base64.StdEncoding.DecodeString(token)
		if legacyErr != nil {
			return Snapshot{}, fmt.Errorf("%w: %v", ErrInvalidReceiptToken, err)
		}
		raw = legacy
	}
	if !utf8.Valid(raw) {
		return Snapshot{}, fmt.Errorf("%w: payload is not utf-8", ErrInvalidReceiptToken)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	var s Snapshot
	if err := dec.Decode(&s); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrInvalidReceiptToken, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return Snapshot{}, fmt.Errorf("%w: trailing data", ErrInvalidReceiptToken)
	}
	if s.Order.ID == "" || s.Client.ID == "" {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrInvalidReceiptToken, ErrIncompleteSnapshot)
	}
	if s.Order.ClientID != "" && s.Order.ClientID != s.Client.ID {
		return Snapshot{}, fmt.Errorf("%w: client does not own the order", ErrInvalidReceiptToken)
	}
	return s, nil
}
