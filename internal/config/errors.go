package config

import "errors"

var (
	// ErrInvalidStorageConfigs is returned when no database DSN is configured.
	ErrInvalidStorageConfigs = errors.New("invalid storage configs: database DSN is required")

	// ErrMissingSessionSecret is returned when the session signing secret is
	// absent from every configuration source. This is fatal by design: the
	// service must not silently issue unsigned sessions.
	ErrMissingSessionSecret = errors.New("invalid app configs: session secret is required")
)
