// SPDX-License-Identifier: MIT
//
// File: engine.go
// Role: Game Engine façade: legality gating, command execution, undo/redo,
//       selection and goal re-evaluation.
// Concurrency:
//   - One mutex serializes every public method; each runs to completion.
//   - Goal evaluation runs inline after every committed mutation.

package game

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/ramsey/core"
	"github.com/katalvlaran/ramsey/history"
	"github.com/katalvlaran/ramsey/matcher"
	"github.com/katalvlaran/ramsey/turn"
)

// Engine owns one game session: board, turn machine, history, selection
// and goal status. The zero value is not usable; call New.
type Engine struct {
	mu sync.Mutex

	base *zap.Logger
	log  *zap.Logger
	obs  Observer

	session     uuid.UUID
	patternName string
	pattern     *core.Graph

	st       *board
	hist     *history.History[Command]
	selected *core.EdgeKey

	goal      GoalStatus
	goalColor core.Color
	goalCopy  []core.EdgeKey
}

// New creates an engine at the initial position: empty board, BuilderTurn,
// turn counter 1, no goal. The pattern defaults to DefaultPattern.
func New(opts ...Option) (*Engine, error) {
	cfg := defaultEngineConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	pattern, err := cfg.resolvePattern()
	if err != nil {
		return nil, fmt.Errorf("New: pattern %q: %v: %w", cfg.patternName, err, ErrInvalidPattern)
	}
	if pattern.EdgeCount() == 0 {
		return nil, fmt.Errorf("New: pattern %q has no edges: %w", cfg.patternName, ErrInvalidPattern)
	}

	session := cfg.session
	if session == uuid.Nil {
		session = uuid.New()
	}

	e := &Engine{
		base:        cfg.log,
		log:         cfg.log.With(zap.String("session", session.String())),
		obs:         cfg.obs,
		session:     session,
		patternName: cfg.patternName,
		pattern:     pattern,
		st:          newBoard(),
		hist:        newHistory(),
	}
	e.log.Debug("engine created",
		zap.String("pattern", e.patternName),
		zap.Int("pattern_vertices", pattern.VertexCount()),
		zap.Int("pattern_edges", pattern.EdgeCount()))

	return e, nil
}

func newHistory() *history.History[Command] {
	return history.New[Command](history.WithMarker(isCreateEdge))
}

// Session returns the session ID carried into snapshots.
func (e *Engine) Session() uuid.UUID {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session
}

// Reset starts a new session with the same pattern.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.session = uuid.New()
	e.log = e.base.With(zap.String("session", e.session.String()))
	e.st = newBoard()
	e.hist = newHistory()
	e.selected = nil
	e.reevaluate()
	e.log.Info("game reset")
}

// CreateNode adds a vertex. Legal only during BuilderTurn; does not change
// the turn.
func (e *Engine) CreateNode() (core.VertexID, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.st.turn.Phase != turn.BuilderTurn {
		return 0, e.reject("CreateNode", "phase", fmt.Errorf("CreateNode in %s turn: %w", e.st.turn.Phase, ErrIllegalMove))
	}
	cmd := Command{Kind: CreateNode, Vertex: e.st.g.NextID()}
	if err := e.execute(cmd); err != nil {
		return 0, e.reject("CreateNode", "store", err)
	}

	return cmd.Vertex, nil
}

// CreateEdge joins u and v with a Neutral edge, selects it and passes the
// turn to the Painter. Legal only during BuilderTurn.
func (e *Engine) CreateEdge(u, v core.VertexID) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.st.turn.Phase != turn.BuilderTurn {
		return e.reject("CreateEdge", "phase", fmt.Errorf("CreateEdge in %s turn: %w", e.st.turn.Phase, ErrIllegalMove))
	}
	k := core.Key(u, v)
	cmd := Command{Kind: CreateEdge, U: k.U, V: k.V}
	if err := e.execute(cmd); err != nil {
		return e.reject("CreateEdge", "store", err)
	}
	e.selected = &k

	return nil
}

// SelectEdge marks an existing edge as selected. It never changes game
// state and is allowed in either phase.
func (e *Engine) SelectEdge(u, v core.VertexID) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.st.g.HasEdge(u, v) {
		return e.reject("SelectEdge", "store", fmt.Errorf("SelectEdge(%d,%d): %w", u, v, core.ErrEdgeNotFound))
	}
	k := core.Key(u, v)
	e.selected = &k

	return nil
}

// ClearSelection drops the selection, if any.
func (e *Engine) ClearSelection() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.selected = nil
}

// ColorEdge paints the selected edge Red or Blue and closes the turn.
// Legal only during PainterTurn, with an edge selected, and only when c
// differs from the edge's current color.
func (e *Engine) ColorEdge(c core.Color) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch {
	case e.st.turn.Phase != turn.PainterTurn:
		return e.reject("ColorEdge", "phase", fmt.Errorf("ColorEdge in %s turn: %w", e.st.turn.Phase, ErrIllegalMove))
	case e.selected == nil:
		return e.reject("ColorEdge", "selection", fmt.Errorf("ColorEdge: no edge selected: %w", ErrIllegalMove))
	case !c.Paint():
		return e.reject("ColorEdge", "color", fmt.Errorf("ColorEdge(%s): %w", c, ErrIllegalMove))
	}

	k := *e.selected
	cur, err := e.st.g.EdgeColor(k.U, k.V)
	if err != nil {
		return e.reject("ColorEdge", "store", fmt.Errorf("ColorEdge: %w", err))
	}
	if cur == c {
		return e.reject("ColorEdge", "same_color", fmt.Errorf("ColorEdge: edge %d-%d already %s: %w", k.U, k.V, c, ErrIllegalMove))
	}

	cmd := Command{Kind: SetEdgeColor, U: k.U, V: k.V, From: cur, To: c}
	if err = e.execute(cmd); err != nil {
		return e.reject("ColorEdge", "store", err)
	}

	return nil
}

// Undo reverts the most recent done command.
func (e *Engine) Undo() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	cmd, err := e.hist.Undo(e.st.invert)
	if err != nil {
		return e.reject(OpUndo, "history", err)
	}
	if cmd.Kind == CreateEdge {
		e.selected = nil
		if last, ok := e.hist.LastMarked(); ok {
			k := last.Edge()
			e.selected = &k
		}
	}
	e.committed(OpUndo, cmd)

	return nil
}

// Redo re-applies the most recently undone command.
func (e *Engine) Redo() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	cmd, err := e.hist.Redo(e.st.apply)
	if err != nil {
		return e.reject(OpRedo, "history", err)
	}
	if cmd.Kind == CreateEdge {
		k := cmd.Edge()
		e.selected = &k
	}
	e.committed(OpRedo, cmd)

	return nil
}

// execute runs a gated command through history.
func (e *Engine) execute(cmd Command) error {
	if err := e.hist.Execute(cmd, e.st.apply); err != nil {
		return err
	}
	e.committed(OpExecute, cmd)

	return nil
}

// committed logs, notifies and re-evaluates after any mutation.
func (e *Engine) committed(op string, cmd Command) {
	e.log.Debug("command "+op,
		zap.Stringer("command", cmd),
		zap.Stringer("phase", e.st.turn.Phase),
		zap.Int("turn", e.st.turn.Counter))
	e.obs.CommandDone(op, cmd.Kind)
	e.reevaluate()
}

// reject logs and reports a failed operation, returning err unchanged.
func (e *Engine) reject(op, reason string, err error) error {
	e.log.Debug("operation rejected", zap.String("op", op), zap.String("reason", reason), zap.Error(err))
	e.obs.MoveRejected(op, reason)
	return err
}

// reevaluate runs the goal matcher on the current board. A status already
// achieved keeps its turn while a copy exists.
func (e *Engine) reevaluate() { e.reevaluateFrom(e.goal) }

// reevaluateFrom is reevaluate with an explicit prior status to carry.
func (e *Engine) reevaluateFrom(carry GoalStatus) {
	start := time.Now()
	color, m, found := matcher.Evaluate(e.pattern, e.st.g)
	e.obs.GoalChecked(time.Since(start), found)

	prev := e.goal
	switch {
	case !found:
		e.goal, e.goalColor, e.goalCopy = NotAchieved(), core.Neutral, nil
	case carry.Achieved:
		// Undo may rewind past the turn that was recorded; the goal can never
		// postdate the last completed turn.
		at := carry.Turn
		if done := e.st.turn.CompletedTurns(); at > done {
			at = done
		}
		e.goal = AchievedAtTurn(at)
		e.goalColor, e.goalCopy = color, m.Edges(e.pattern)
	default:
		e.goal = AchievedAtTurn(e.st.turn.CompletedTurns())
		e.goalColor, e.goalCopy = color, m.Edges(e.pattern)
	}

	if e.goal != prev {
		e.log.Info("goal status changed",
			zap.Stringer("status", e.goal),
			zap.Stringer("color", e.goalColor))
		e.obs.GoalChanged(e.goal)
	}
}
