// SPDX-License-Identifier: MIT
// Package: ramsey/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and PANIC on meaningless inputs.
//     Constructors themselves never panic.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ramsey/core"
)

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithEdgeColor makes every constructed edge carry color c instead of
// Neutral. Handy for host fixtures: a red K5 is
// BuildGraph([]BuilderOption{WithEdgeColor(core.Red)}, Complete(5)).
// Panics on an unknown color.
func WithEdgeColor(c core.Color) BuilderOption {
	if !c.Valid() {
		panic(fmt.Sprintf("builder: WithEdgeColor(%d)", c))
	}
	return func(cfg *builderConfig) {
		cfg.color = c
	}
}
