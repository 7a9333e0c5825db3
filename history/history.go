// Package history records reversible commands on two stacks and replays
// them for undo/redo with linear-history discipline.
//
//	Execute: apply(cmd); push Done; clear Undone
//	Undo:    pop Done;   invert(cmd); push Undone
//	Redo:    pop Undone; apply(cmd);  push Done
//
// The callbacks perform the side effects; History only orders them. When a
// callback fails, both stacks are left exactly as they were, so a command is
// never recorded as done unless its effect actually happened.
//
// History is not safe for concurrent use; the owner serializes access.
package history

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"
)

var (
	// ErrNothingToUndo is returned by Undo on an empty Done stack.
	ErrNothingToUndo = errors.New("history: nothing to undo")

	// ErrNothingToRedo is returned by Redo on an empty Undone stack.
	ErrNothingToRedo = errors.New("history: nothing to redo")
)

// Option configures a History.
type Option[T any] func(*History[T])

// WithMarker installs a predicate whose matching Done entries are indexed,
// so LastMarked answers "most recent matching command still done" without
// scanning the stack.
func WithMarker[T any](fn func(T) bool) Option[T] {
	if fn == nil {
		panic("history: WithMarker(nil)")
	}
	return func(h *History[T]) {
		h.marker = fn
	}
}

// History is a pair of command stacks. The zero value is not usable; call New.
type History[T any] struct {
	done   *arraystack.Stack
	undone *arraystack.Stack
	marker func(T) bool
	marks  []int // Done positions (0 = bottom) whose command matched marker
	marked []T   // commands at those positions, parallel to marks
}

// New returns an empty History.
func New[T any](opts ...Option[T]) *History[T] {
	h := &History[T]{done: arraystack.New(), undone: arraystack.New()}
	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Execute applies cmd and, on success, records it as the newest done
// command and discards every redo candidate.
func (h *History[T]) Execute(cmd T, apply func(T) error) error {
	if err := apply(cmd); err != nil {
		return fmt.Errorf("Execute: %w", err)
	}
	h.pushDone(cmd)
	h.undone.Clear()

	return nil
}

// Undo inverts the newest done command and moves it to Undone.
func (h *History[T]) Undo(invert func(T) error) (T, error) {
	var zero T
	top, ok := h.done.Peek()
	if !ok {
		return zero, ErrNothingToUndo
	}
	cmd := top.(T)
	if err := invert(cmd); err != nil {
		return zero, fmt.Errorf("Undo: %w", err)
	}
	h.popDone()
	h.undone.Push(cmd)

	return cmd, nil
}

// Redo re-applies the newest undone command and moves it back to Done.
func (h *History[T]) Redo(apply func(T) error) (T, error) {
	var zero T
	top, ok := h.undone.Peek()
	if !ok {
		return zero, ErrNothingToRedo
	}
	cmd := top.(T)
	if err := apply(cmd); err != nil {
		return zero, fmt.Errorf("Redo: %w", err)
	}
	h.undone.Pop()
	h.pushDone(cmd)

	return cmd, nil
}

// CanUndo reports whether Undo has a candidate.
func (h *History[T]) CanUndo() bool { return !h.done.Empty() }

// CanRedo reports whether Redo has a candidate.
func (h *History[T]) CanRedo() bool { return !h.undone.Empty() }

// Len returns the sizes of the Done and Undone stacks.
func (h *History[T]) Len() (done, undone int) {
	return h.done.Size(), h.undone.Size()
}

// Done returns the done commands, oldest first.
func (h *History[T]) Done() []T { return bottomUp[T](h.done) }

// Undone returns the redo candidates, oldest first (the next Redo is last).
func (h *History[T]) Undone() []T { return bottomUp[T](h.undone) }

// LastMarked returns the newest done command matching the WithMarker
// predicate in O(1). Without a marker it always reports false.
func (h *History[T]) LastMarked() (T, bool) {
	if len(h.marked) == 0 {
		var zero T
		return zero, false
	}

	return h.marked[len(h.marked)-1], true
}

// Restore replaces both stacks; slices are oldest first, as returned by
// Done and Undone.
func (h *History[T]) Restore(done, undone []T) {
	h.Clear()
	for _, cmd := range done {
		h.pushDone(cmd)
	}
	for _, cmd := range undone {
		h.undone.Push(cmd)
	}
}

// Clear empties both stacks.
func (h *History[T]) Clear() {
	h.done.Clear()
	h.undone.Clear()
	h.marks = h.marks[:0]
	h.marked = h.marked[:0]
}

func (h *History[T]) pushDone(cmd T) {
	if h.marker != nil && h.marker(cmd) {
		h.marks = append(h.marks, h.done.Size())
		h.marked = append(h.marked, cmd)
	}
	h.done.Push(cmd)
}

func (h *History[T]) popDone() {
	h.done.Pop()
	if n := len(h.marks); n > 0 && h.marks[n-1] == h.done.Size() {
		h.marks = h.marks[:n-1]
		h.marked = h.marked[:n-1]
	}
}

// bottomUp copies a stack's values oldest first; arraystack.Values is LIFO.
func bottomUp[T any](s *arraystack.Stack) []T {
	vals := s.Values()
	out := make([]T, len(vals))
	for i, v := range vals {
		out[len(vals)-1-i] = v.(T)
	}

	return out
}
