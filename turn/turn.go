// Package turn implements the Builder/Painter turn state machine.
//
// States: BuilderTurn, PainterTurn. The counter starts at 1 and counts the
// turn in progress; CompletedTurns is therefore Counter-1.
//
//	BuilderTurn --EdgeCreated-->        PainterTurn
//	PainterTurn --EdgeColored-->        BuilderTurn, Counter+1
//	PainterTurn --RevertEdgeCreated-->  BuilderTurn
//	BuilderTurn --RevertEdgeColored-->  PainterTurn, Counter-1 (never below 1)
//
// Node creation does not change the state. There is no terminal state: a win
// is reported by the engine, not by this machine.
package turn

import (
	"errors"
	"fmt"
)

var (
	// ErrWrongPhase is returned when a transition is requested from the
	// other phase.
	ErrWrongPhase = errors.New("turn: wrong phase")

	// ErrInvalidState is returned by Restore and ParsePhase on values no
	// sequence of transitions can produce.
	ErrInvalidState = errors.New("turn: invalid state")
)

// Phase says whose move it is.
type Phase uint8

const (
	BuilderTurn Phase = iota
	PainterTurn
)

// FirstTurn is the counter value of a fresh game.
const FirstTurn = 1

// String returns "builder" or "painter".
func (p Phase) String() string {
	switch p {
	case BuilderTurn:
		return "builder"
	case PainterTurn:
		return "painter"
	default:
		return fmt.Sprintf("phase(%d)", uint8(p))
	}
}

// ParsePhase is the inverse of Phase.String.
func ParsePhase(s string) (Phase, error) {
	switch s {
	case "builder":
		return BuilderTurn, nil
	case "painter":
		return PainterTurn, nil
	default:
		return 0, fmt.Errorf("ParsePhase(%q): %w", s, ErrInvalidState)
	}
}

// State is the value-typed machine; the zero value is not valid, use New.
type State struct {
	Phase   Phase
	Counter int
}

// New returns {BuilderTurn, 1}.
func New() State {
	return State{Phase: BuilderTurn, Counter: FirstTurn}
}

// CompletedTurns is the number of fully completed turns.
func (s State) CompletedTurns() int { return s.Counter - 1 }

// EdgeCreated moves the turn to the Painter.
func (s *State) EdgeCreated() error {
	if s.Phase != BuilderTurn {
		return fmt.Errorf("EdgeCreated in %s turn: %w", s.Phase, ErrWrongPhase)
	}
	s.Phase = PainterTurn

	return nil
}

// EdgeColored hands the turn back to the Builder and closes the turn.
func (s *State) EdgeColored() error {
	if s.Phase != PainterTurn {
		return fmt.Errorf("EdgeColored in %s turn: %w", s.Phase, ErrWrongPhase)
	}
	s.Phase = BuilderTurn
	s.Counter++

	return nil
}

// RevertEdgeCreated undoes EdgeCreated.
func (s *State) RevertEdgeCreated() error {
	if s.Phase != PainterTurn {
		return fmt.Errorf("RevertEdgeCreated in %s turn: %w", s.Phase, ErrWrongPhase)
	}
	s.Phase = BuilderTurn

	return nil
}

// RevertEdgeColored undoes EdgeColored. The counter never drops below
// FirstTurn, so it stays well-defined even for histories that were not
// produced by this machine.
func (s *State) RevertEdgeColored() error {
	if s.Phase != BuilderTurn {
		return fmt.Errorf("RevertEdgeColored in %s turn: %w", s.Phase, ErrWrongPhase)
	}
	s.Phase = PainterTurn
	if s.Counter > FirstTurn {
		s.Counter--
	}

	return nil
}

// Restore validates and returns a state read back from a snapshot.
func Restore(phase Phase, counter int) (State, error) {
	if phase != BuilderTurn && phase != PainterTurn {
		return State{}, fmt.Errorf("Restore: phase %d: %w", phase, ErrInvalidState)
	}
	if counter < FirstTurn {
		return State{}, fmt.Errorf("Restore: counter %d < %d: %w", counter, FirstTurn, ErrInvalidState)
	}

	return State{Phase: phase, Counter: counter}, nil
}
