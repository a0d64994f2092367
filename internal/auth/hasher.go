// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Motel Bela Vista

package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// Password hashing parameters. The iteration count is part of the stored hash,
// so it can be raised later without invalidating existing credentials.
const (
	hashAlgorithmID = "pbkdf2_sha256"
	hashIterations  = 150_000
	hashSaltLen     = 16 // salt length in bytes
	hashKeyLen      = 32 // derived key length in bytes
)

// HashPassword derives a storable credential token from a plaintext password.
//
// Each call generates a fresh random salt, so hashing the same password twice
// yields two different strings that both verify. The result is self-describing:
//
//	pbkdf2_sha256$<iterations>$<base64url(salt)>$<base64url(derived_key)>
//
// The only error condition is an exhausted entropy source, which callers must
// treat as fatal.
func HashPassword(password string) (string, error) {
	salt := make([]byte, hashSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("error generating password salt: %w", err)
	}

	dk := pbkdf2.Key([]byte(password), salt, hashIterations, hashKeyLen, sha256.New)

	return hashAlgorithmID + "$" +
		strconv.Itoa(hashIterations) + "$" +
		base64.URLEncoding.EncodeToString(salt) + "$" +
		base64.URLEncoding.EncodeToString(dk), nil
}

// VerifyPassword reports whether password matches the stored credential token.
//
// Malformed input — wrong field count, unknown algorithm id, non-numeric
// iteration count, invalid base64 — yields false, never an error: a consumer
// holding a hash produced by a future format must fail closed, not crash.
// The derived-key comparison is constant-time.
func VerifyPassword(password, stored string) bool {
	parts := strings.Split(stored, "$")
	if len(parts) != 4 {
		return false
	}

	if parts[0] != hashAlgorithmID {
		return false
	}

	iterations, err := strconv.Atoi(parts[1])
	if err != nil || iterations < 1 {
		return false
	}

	salt, err := base64.URLEncoding.DecodeString(parts[2])
	if err != nil {
		return false
	}

	expected, err := base64.URLEncoding.DecodeString(parts[3])
	if err != nil || len(expected) == 0 {
		return false
	}

	dk := pbkdf2.Key([]byte(password), salt, iterations, len(expected), sha256.New)

	return subtle.ConstantTimeCompare(dk, expected) == 1
}
