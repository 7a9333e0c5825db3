// SPDX-License-Identifier: MIT
// Package: ramsey/builder
//
// config.go — immutable builder configuration resolved from options.

package builder

import "github.com/katalvlaran/ramsey/core"

// builderConfig holds the knobs every constructor reads. It is resolved once
// per BuildGraph call and passed by value, so constructors cannot mutate it.
type builderConfig struct {
	// color is assigned to every edge a constructor creates.
	color core.Color
}

// newBuilderConfig applies opts over the defaults (Neutral edges).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{color: core.Neutral}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
