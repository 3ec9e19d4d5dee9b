// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides caller authentication utilities.

# Addresses

Callers are identified by 20-byte hex addresses:

	addr, err := auth.ParseAddress("0x5B38Da6a701c568545dCfcB03FcB875f56beddC4")

# Caller Keys

Caller keys use HMAC-SHA256 over the checksummed address:

	key := auth.GenerateCallerKey(addr, salt)
	err := auth.ValidateCallerKey(addr, key, salt)

The key is URL-safe base64 encoded without padding. Since it's deterministic,
the same address and salt always produce the same key, so nothing has to be
stored. The administrator obtains their key from the caller-key command;
voter keys are returned when the administrator registers a voter.

# IP Hashing

For privacy-preserving request correlation in logs:

	hash := auth.HashIP(ipAddress, salt)

Returns first 8 bytes (16 hex chars) of HMAC-SHA256.
*/
package auth
