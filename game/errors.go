// SPDX-License-Identifier: MIT
// Package: ramsey/game
//
// errors.go — sentinel errors surfaced by the Engine.
//
// Error policy:
//   • Every failing operation leaves the engine exactly as it was.
//   • Callers branch with errors.Is; the structural sentinels below are the
//     same values the lower packages return, re-exported so callers need
//     only import game.

package game

import (
	"errors"

	"github.com/katalvlaran/ramsey/core"
	"github.com/katalvlaran/ramsey/history"
	"github.com/katalvlaran/ramsey/snapshot"
)

var (
	// ErrIllegalMove: wrong phase, no/other selected edge, or a recolor to
	// the edge's current color or to Neutral.
	ErrIllegalMove = errors.New("game: illegal move")

	// ErrInvalidPattern: the goal pattern is missing, unparsable or edgeless.
	ErrInvalidPattern = errors.New("game: invalid pattern")

	// errStaleCommand: a command's recorded colors disagree with the board.
	// Only reachable through a corrupt snapshot.
	errStaleCommand = errors.New("game: command does not match board")
)

// Structural and history errors, re-exported.
var (
	ErrInvalidEdge     = core.ErrInvalidEdge
	ErrDuplicateEdge   = core.ErrDuplicateEdge
	ErrVertexNotFound  = core.ErrVertexNotFound
	ErrEdgeNotFound    = core.ErrEdgeNotFound
	ErrNothingToUndo   = history.ErrNothingToUndo
	ErrNothingToRedo   = history.ErrNothingToRedo
	ErrCorruptSnapshot = snapshot.ErrCorruptSnapshot
)
