// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

var (
	ErrInvalidCallerKey = errors.New("invalid caller key")
	ErrInvalidAddress   = errors.New("invalid address")
)

// ParseAddress parses a 0x-prefixed (or bare) 40 hex digit address
func ParseAddress(s string) (common.Address, error) {
	s = strings.TrimSpace(s)
	if !common.IsHexAddress(s) {
		return common.Address{}, ErrInvalidAddress
	}
	return common.HexToAddress(s), nil
}

// GenerateCallerKey creates an HMAC-based key proving control of an address
// This is deterministic and verifiable
func GenerateCallerKey(addr common.Address, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	// Checksummed form so the key does not depend on input casing
	h.Write([]byte(addr.Hex()))
	sum := h.Sum(nil)
	// Use URL-safe base64 and trim padding for cleaner keys
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// ValidateCallerKey checks if the provided key is valid for the address
func ValidateCallerKey(addr common.Address, key, salt string) error {
	expected := GenerateCallerKey(addr, salt)
	if !hmac.Equal([]byte(key), []byte(expected)) {
		return ErrInvalidCallerKey
	}
	return nil
}

// HashIP creates a one-way hash of an IP address for privacy
// Includes salt to prevent rainbow table attacks
func HashIP(ip, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(ip))
	sum := h.Sum(nil)
	// Return first 16 hex chars (64 bits) - enough for log correlation
	return hex.EncodeToString(sum[:8])
}
