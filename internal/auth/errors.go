// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Motel Bela Vista

package auth

import "errors"

// Sentinel errors returned by the session subsystem. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrSecretNotConfigured is returned by [Signer.Sign] when the server
	// session secret is empty. This is a misconfiguration, not a bad-input
	// condition: the operator must be surfaced immediately and the affected
	// endpoint must not proceed.
	ErrSecretNotConfigured = errors.New("session secret is not configured")

	// ErrUnauthenticated is returned by [Guard.Require] when no valid session
	// resolves to an active user. Missing tokens, malformed tokens, tampered
	// tokens, deleted subjects and deactivated subjects all collapse into this
	// one condition so that nothing about account existence leaks to an
	// unauthenticated caller.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrUnauthorized is returned by [Guard.Require] when the session resolves
	// to an active user whose role is not in the allowed set. Distinct from
	// ErrUnauthenticated so callers can answer "log in" vs "access denied".
	ErrUnauthorized = errors.New("access denied")
)
