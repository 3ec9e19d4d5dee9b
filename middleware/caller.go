// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/ethereum/go-ethereum/common"

	"github.com/danielhkuo/quickly-elect/auth"
)

const (
	HeaderCallerAddress = "X-Caller-Address"
	HeaderCallerKey     = "X-Caller-Key"
)

type callerKey struct{}

// WithCaller authenticates the caller from the X-Caller-Address and
// X-Caller-Key headers and stores the address in the request context.
// Requests without a valid pair get 401.
func WithCaller(salt string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(HeaderCallerAddress)
		key := r.Header.Get(HeaderCallerKey)
		if raw == "" || key == "" {
			ErrorResponse(w, http.StatusUnauthorized, "X-Caller-Address and X-Caller-Key headers required")
			return
		}

		addr, err := auth.ParseAddress(raw)
		if err != nil {
			ErrorResponse(w, http.StatusUnauthorized, "Invalid caller address")
			return
		}

		if err := auth.ValidateCallerKey(addr, key, salt); err != nil {
			slog.Warn("caller key rejected", "caller", addr.Hex(), "remote", GetClientIP(r))
			ErrorResponse(w, http.StatusUnauthorized, "Invalid caller key")
			return
		}

		next(w, r.WithContext(WithCallerAddress(r.Context(), addr)))
	}
}

// WithCallerAddress returns a copy of ctx carrying addr.
func WithCallerAddress(ctx context.Context, addr common.Address) context.Context {
	return context.WithValue(ctx, callerKey{}, addr)
}

// CallerFromContext returns the authenticated caller, if any.
func CallerFromContext(ctx context.Context) (common.Address, bool) {
	addr, ok := ctx.Value(callerKey{}).(common.Address)
	return addr, ok
}
