// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Motel Bela Vista

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Signer issues and verifies stateless session tokens. A token binds a user id
// and an issuance timestamp under an HMAC-SHA256 tag computed with the server
// secret; validity is recomputed from the token bytes on every request, so
// nothing is stored server-side.
//
// The signer itself enforces no expiry: a token stays valid until its tag stops
// verifying (secret rotation) or its subject is deactivated or deleted. The
// timestamp rides in the signed payload so a TTL check can be added later
// without changing the wire format.
type Signer struct {
	secret []byte
	now    func() time.Time
}

// NewSigner constructs a Signer around the given server secret. An empty
// secret is accepted here so construction can happen before validation, but
// every Sign call will fail with [ErrSecretNotConfigured] until a non-empty
// secret is supplied.
func NewSigner(secret string) *Signer {
	return &Signer{
		secret: []byte(secret),
		now:    time.Now,
	}
}

// Sign issues a token for the given user id.
//
// Wire format (the "." separator and field order are part of the contract):
//
//	base64url("<user_id>:<unix_ts>") + "." + base64url(hmac_sha256_tag)
//
// Returns [ErrSecretNotConfigured] when the server secret is empty; the
// service must never issue unsigned or weakly signed sessions.
func (s *Signer) Sign(userID int64) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrSecretNotConfigured
	}

	payload := strconv.FormatInt(userID, 10) + ":" + strconv.FormatInt(s.now().Unix(), 10)
	tag := s.tag([]byte(payload))

	return base64.URLEncoding.EncodeToString([]byte(payload)) + "." +
		base64.URLEncoding.EncodeToString(tag), nil
}

// Unsign validates a token and extracts the user id it was issued for.
//
// Any structural defect — missing separator, invalid base64, non-UTF8 payload,
// missing ":", non-integer id — and any tag mismatch yield (0, false); the
// caller learns nothing about why verification failed. The tag comparison is
// constant-time.
func (s *Signer) Unsign(token string) (int64, bool) {
	if len(s.secret) == 0 {
		return 0, false
	}

	payloadB64, tagB64, found := strings.Cut(token, ".")
	if !found {
		return 0, false
	}

	payload, err := base64.URLEncoding.DecodeString(payloadB64)
	if err != nil {
		return 0, false
	}

	tag, err := base64.URLEncoding.DecodeString(tagB64)
	if err != nil {
		return 0, false
	}

	if !hmac.Equal(tag, s.tag(payload)) {
		return 0, false
	}

	if !utf8.Valid(payload) {
		return 0, false
	}

	idPart, _, found := strings.Cut(string(payload), ":")
	if !found {
		return 0, false
	}

	userID, err := strconv.ParseInt(idPart, 10, 64)
	if err != nil {
		return 0, false
	}

	return userID, true
}

func (s *Signer) tag(payload []byte) []byte {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write(payload)
	return mac.Sum(nil)
}
