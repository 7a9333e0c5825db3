// SPDX-License-Identifier: MIT
//
// File: board.go
// Role: Mutable game position (graph + turn) and the command interpreter.
// Atomicity:
//   - apply and invert either complete or leave the board untouched.

package game

import (
	"fmt"

	"github.com/katalvlaran/ramsey/core"
	"github.com/katalvlaran/ramsey/turn"
)

// board is the state commands act upon.
type board struct {
	g    *core.Graph
	turn turn.State
}

func newBoard() *board {
	return &board{g: core.NewGraph(), turn: turn.New()}
}

func (b *board) clone() *board {
	return &board{g: b.g.Clone(), turn: b.turn}
}

// apply performs cmd's forward effect.
func (b *board) apply(cmd Command) error {
	switch cmd.Kind {
	case CreateNode:
		return b.g.RestoreVertex(cmd.Vertex)

	case CreateEdge:
		if err := b.g.AddEdge(cmd.U, cmd.V, core.Neutral); err != nil {
			return err
		}
		if err := b.turn.EdgeCreated(); err != nil {
			_ = b.g.RemoveEdge(cmd.U, cmd.V)
			return err
		}
		return nil

	case SetEdgeColor:
		if err := b.expectColor(cmd, cmd.From); err != nil {
			return err
		}
		if err := b.turn.EdgeColored(); err != nil {
			return err
		}
		return b.g.SetEdgeColor(cmd.U, cmd.V, cmd.To)

	default:
		return fmt.Errorf("apply %s: %w", cmd.Kind, errStaleCommand)
	}
}

// invert performs cmd's inverse effect.
func (b *board) invert(cmd Command) error {
	switch cmd.Kind {
	case CreateNode:
		return b.g.RemoveVertex(cmd.Vertex)

	case CreateEdge:
		if !b.g.HasEdge(cmd.U, cmd.V) {
			return fmt.Errorf("invert %s: %w", cmd, core.ErrEdgeNotFound)
		}
		if err := b.turn.RevertEdgeCreated(); err != nil {
			return err
		}
		return b.g.RemoveEdge(cmd.U, cmd.V)

	case SetEdgeColor:
		if err := b.expectColor(cmd, cmd.To); err != nil {
			return err
		}
		if err := b.turn.RevertEdgeColored(); err != nil {
			return err
		}
		return b.g.SetEdgeColor(cmd.U, cmd.V, cmd.From)

	default:
		return fmt.Errorf("invert %s: %w", cmd.Kind, errStaleCommand)
	}
}

// expectColor checks the edge's current color before a recolor or its undo.
func (b *board) expectColor(cmd Command, want core.Color) error {
	got, err := b.g.EdgeColor(cmd.U, cmd.V)
	if err != nil {
		return err
	}
	if got != want {
		return fmt.Errorf("%s: edge is %s: %w", cmd, got, errStaleCommand)
	}

	return nil
}
