// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Motel Bela Vista

// Package auth implements the credential and session subsystem of the site:
// salted PBKDF2 password hashing, HMAC-signed stateless session tokens, and
// role-gated request authorization.
//
// The package is deliberately free of transport and storage concerns. The
// [Signer] is constructed with an explicit secret, the [Guard] with an
// explicit [UserDirectory], so every piece can be exercised in tests with
// injected fakes. All operations are short-lived, synchronous and safe for
// concurrent use; nothing in this package holds mutable state after
// construction.
package auth
