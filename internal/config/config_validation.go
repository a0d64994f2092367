// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Motel Bela Vista

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The session secret is a hard requirement: without it every issued session
// would be unsigned, so the server refuses to start rather than degrade.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.SessionSecret == "" {
		return ErrMissingSessionSecret
	}

	return nil
}
