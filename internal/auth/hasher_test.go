// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Motel Bela Vista

package auth

import (
	"strings"
	"testing"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	stored, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !VerifyPassword("s3cret", stored) {
		t.Fatal("hashed password must verify against itself")
	}

	if VerifyPassword("wrong-password", stored) {
		t.Fatal("different password must not verify")
	}
}

func TestHashPassword_SaltRandomization(t *testing.T) {
	first, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first == second {
		t.Fatal("two hashes of the same password must differ (fresh salt per call)")
	}

	if !VerifyPassword("same-password", first) || !VerifyPassword("same-password", second) {
		t.Fatal("both hashes must verify for the original password")
	}
}

func TestHashPassword_Format(t *testing.T) {
	stored, err := HashPassword("anything")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parts := strings.Split(stored, "$")
	if len(parts) != 4 {
		t.Fatalf("expected 4 $-delimited fields, got %d: %q", len(parts), stored)
	}

	if parts[0] != "pbkdf2_sha256" {
		t.Errorf("expected algorithm id pbkdf2_sha256, got %q", parts[0])
	}

	if parts[1] != "150000" {
		t.Errorf("expected iteration count 150000, got %q", parts[1])
	}
}

func TestHashPassword_EmptyPassword(t *testing.T) {
	stored, err := HashPassword("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !VerifyPassword("", stored) {
		t.Fatal("empty password must round-trip")
	}

	if VerifyPassword("not-empty", stored) {
		t.Fatal("non-empty password must not match an empty-password hash")
	}
}

// VerifyPassword must resolve every malformed stored value to false without
// panicking or returning an error to the caller.
func TestVerifyPassword_MalformedStored(t *testing.T) {
	valid, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fields := strings.Split(valid, "$")

	cases := map[string]string{
		"empty string":          "",
		"no delimiters":         "pbkdf2_sha256",
		"three fields":          strings.Join(fields[:3], "$"),
		"five fields":           valid + "$extra",
		"unknown algorithm":     "pbkdf2_sha512$" + strings.Join(fields[1:], "$"),
		"future algorithm":      "argon2id$" + strings.Join(fields[1:], "$"),
		"non-numeric iters":     fields[0] + "$abc$" + fields[2] + "$" + fields[3],
		"negative iters":        fields[0] + "$-1$" + fields[2] + "$" + fields[3],
		"zero iters":            fields[0] + "$0$" + fields[2] + "$" + fields[3],
		"invalid salt base64":   fields[0] + "$" + fields[1] + "$!!notbase64!!$" + fields[3],
		"invalid key base64":    fields[0] + "$" + fields[1] + "$" + fields[2] + "$!!notbase64!!",
		"empty derived key":     fields[0] + "$" + fields[1] + "$" + fields[2] + "$",
		"plaintext masquerade":  "s3cret",
		"whitespace only":       "   ",
		"delimiter soup":        "$$$",
		"standard b64 with +/+": fields[0] + "$" + fields[1] + "$++//$" + fields[3],
	}

	for name, stored := range cases {
		if VerifyPassword("s3cret", stored) {
			t.Errorf("%s: malformed stored value %q must not verify", name, stored)
		}
	}
}
