// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
)

func TestParseAddress(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"checksummed", "0x5B38Da6a701c568545dCfcB03FcB875f56beddC4", false},
		{"lowercase", "0x5b38da6a701c568545dcfcb03fcb875f56beddc4", false},
		{"no prefix", "5b38da6a701c568545dcfcb03fcb875f56beddc4", false},
		{"surrounding space", "  0x5b38da6a701c568545dcfcb03fcb875f56beddc4 ", false},
		{"too short", "0x5b38da6a", true},
		{"not hex", "0xzz38da6a701c568545dcfcb03fcb875f56beddc4", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr, err := ParseAddress(tt.input)
			if tt.wantErr {
				if err != ErrInvalidAddress {
					t.Errorf("ParseAddress() error = %v, want ErrInvalidAddress", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAddress() error = %v", err)
			}
			if addr.Hex() != "0x5B38Da6a701c568545dCfcB03FcB875f56beddC4" {
				t.Errorf("ParseAddress() = %s", addr.Hex())
			}
		})
	}
}

func TestGenerateCallerKey(t *testing.T) {
	tests := []struct {
		name string
		addr common.Address
		salt string
	}{
		{"standard", common.HexToAddress("0x01"), "secret-salt"},
		{"zero address", common.Address{}, "salt"},
		{"empty salt", common.HexToAddress("0x02"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := GenerateCallerKey(tt.addr, tt.salt)

			// Should not be empty
			if key == "" {
				t.Error("GenerateCallerKey() returned empty string")
			}

			// Should be deterministic
			key2 := GenerateCallerKey(tt.addr, tt.salt)
			if key != key2 {
				t.Error("GenerateCallerKey() is not deterministic")
			}

			// Different addresses should produce different keys
			other := common.HexToAddress("0xff")
			if GenerateCallerKey(other, tt.salt) == key {
				t.Error("GenerateCallerKey() produced same key for different addresses")
			}

			// Should be URL-safe (no +, /, or =)
			if strings.ContainsAny(key, "+/=") {
				t.Errorf("GenerateCallerKey() contains non-URL-safe chars: %s", key)
			}
		})
	}
}

func TestValidateCallerKey(t *testing.T) {
	addr := common.HexToAddress("0x5B38Da6a701c568545dCfcB03FcB875f56beddC4")
	salt := "test-salt"
	validKey := GenerateCallerKey(addr, salt)

	tests := []struct {
		name    string
		addr    common.Address
		key     string
		salt    string
		wantErr bool
	}{
		{"valid key", addr, validKey, salt, false},
		{"wrong key", addr, "invalid-key", salt, true},
		{"wrong address", common.HexToAddress("0x01"), validKey, salt, true},
		{"wrong salt", addr, validKey, "wrong-salt", true},
		{"empty key", addr, "", salt, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCallerKey(tt.addr, tt.key, tt.salt)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCallerKey() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && err != ErrInvalidCallerKey {
				t.Errorf("ValidateCallerKey() should return ErrInvalidCallerKey, got %v", err)
			}
		})
	}
}

func TestHashIP(t *testing.T) {
	h1 := HashIP("192.168.1.1", "salt")
	h2 := HashIP("192.168.1.1", "salt")
	h3 := HashIP("192.168.1.2", "salt")

	if h1 != h2 {
		t.Error("HashIP() is not deterministic")
	}
	if h1 == h3 {
		t.Error("HashIP() produced same hash for different IPs")
	}
	if len(h1) != 16 {
		t.Errorf("HashIP() length = %d, want 16", len(h1))
	}
	if HashIP("192.168.1.1", "other") == h1 {
		t.Error("HashIP() ignores salt")
	}
}
