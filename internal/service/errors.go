package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is the single login failure the service exposes:
	// an unknown username, a disabled account and a wrong password are
	// deliberately indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrTokenCreationFailed = errors.New("session token creation failed")
)
