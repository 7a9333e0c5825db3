// SPDX-License-Identifier: MIT
//
// File: persist.go
// Role: Save/Load through the snapshot codec.
// Atomicity:
//   - Load builds and verifies a complete replacement before touching the
//     engine; on any failure the engine is unchanged.

package game

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/ramsey/core"
	"github.com/katalvlaran/ramsey/history"
	"github.com/katalvlaran/ramsey/snapshot"
	"github.com/katalvlaran/ramsey/turn"
)

// Save encodes the whole game: board, turn, selection, both history stacks,
// goal turn and pattern.
func (e *Engine) Save() ([]byte, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	blob, err := snapshot.Encode(e.record())
	if err != nil {
		return nil, fmt.Errorf("Save: %w", err)
	}
	e.log.Debug("game saved", zap.Int("bytes", len(blob)))

	return blob, nil
}

// Record returns the snapshot record Save would encode.
func (e *Engine) Record() snapshot.Record {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.record()
}

func (e *Engine) record() snapshot.Record {
	gs := e.st.g.Snapshot()
	r := snapshot.Record{
		Version:     snapshot.Version,
		Session:     e.session.String(),
		NextVertex:  int(gs.NextID),
		Nodes:       make([]int, 0, len(gs.Vertices)),
		Edges:       make([]snapshot.Edge, 0, len(gs.Edges)),
		TurnCounter: e.st.turn.Counter,
		Phase:       e.st.turn.Phase.String(),
		DoneStack:   []snapshot.Command{},
		UndoneStack: []snapshot.Command{},
		TargetPattern: snapshot.Pattern{
			Name: e.patternName,
		},
	}
	if e.goal.Achieved {
		r.GoalTurn = e.goal.Turn
	}
	for _, id := range gs.Vertices {
		r.Nodes = append(r.Nodes, int(id))
	}
	for _, edge := range gs.Edges {
		r.Edges = append(r.Edges, snapshot.Edge{U: int(edge.U), V: int(edge.V), Color: edge.Color.String()})
	}
	if e.selected != nil {
		r.Selected = &[2]int{int(e.selected.U), int(e.selected.V)}
	}
	for _, cmd := range e.hist.Done() {
		r.DoneStack = append(r.DoneStack, cmd.record())
	}
	for _, cmd := range e.hist.Undone() {
		r.UndoneStack = append(r.UndoneStack, cmd.record())
	}
	for _, id := range e.pattern.Vertices() {
		r.TargetPattern.Nodes = append(r.TargetPattern.Nodes, int(id))
	}
	for _, edge := range e.pattern.Edges() {
		r.TargetPattern.Edges = append(r.TargetPattern.Edges, [2]int{int(edge.U), int(edge.V)})
	}

	return r
}

// Load replaces the whole game with the one encoded in blob and re-runs goal
// evaluation once. Besides structural validation, the Done stack is
// replayed from an empty board and must reproduce the saved board and turn
// exactly, and the Undone stack must be redoable on top of it; anything else
// is ErrCorruptSnapshot.
func (e *Engine) Load(blob []byte) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	r, err := snapshot.Decode(blob)
	if err != nil {
		return e.reject(OpLoad, "decode", fmt.Errorf("Load: %w", err))
	}
	next, err := restore(r)
	if err != nil {
		return e.reject(OpLoad, "replay", fmt.Errorf("Load: %w", err))
	}

	e.session = next.session
	e.log = e.base.With(zap.String("session", e.session.String()))
	e.patternName, e.pattern = r.TargetPattern.Name, next.pattern
	e.st, e.hist, e.selected = next.st, next.hist, next.selected

	// The saved turn of an achieved goal survives if the copy is still there.
	carry := NotAchieved()
	if r.GoalTurn > 0 {
		carry = AchievedAtTurn(r.GoalTurn)
	}
	e.reevaluateFrom(carry)

	e.log.Info("game loaded",
		zap.Int("vertices", e.st.g.VertexCount()),
		zap.Int("edges", e.st.g.EdgeCount()),
		zap.Int("turn", e.st.turn.Counter),
		zap.Stringer("goal", e.goal))

	return nil
}

// restored is a fully verified replacement for the engine's state.
type restored struct {
	session  uuid.UUID
	pattern  *core.Graph
	st       *board
	hist     *history.History[Command]
	selected *core.EdgeKey
}

// restore turns a validated record into engine state, checking history
// consistency by replay.
func restore(r snapshot.Record) (*restored, error) {
	out := &restored{hist: newHistory()}

	var err error
	if r.Session != "" {
		if out.session, err = uuid.Parse(r.Session); err != nil {
			return nil, fmt.Errorf("session: %v: %w", err, ErrCorruptSnapshot)
		}
	} else {
		out.session = uuid.New()
	}
	if out.pattern, err = r.PatternGraph(); err != nil {
		return nil, err
	}
	g, err := r.Board()
	if err != nil {
		return nil, err
	}
	phase, err := turn.ParsePhase(r.Phase)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrCorruptSnapshot)
	}
	ts, err := turn.Restore(phase, r.TurnCounter)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrCorruptSnapshot)
	}
	out.st = &board{g: g, turn: ts}

	done, err := commandsFromRecords(r.DoneStack)
	if err != nil {
		return nil, err
	}
	undone, err := commandsFromRecords(r.UndoneStack)
	if err != nil {
		return nil, err
	}

	// Replay Done from scratch; it must land exactly on the saved position.
	replay := newBoard()
	for i, cmd := range done {
		if cmd.Kind == CreateNode && replay.turn.Phase != turn.BuilderTurn {
			return nil, fmt.Errorf("done_stack[%d] %s in %s turn: %w", i, cmd, replay.turn.Phase, ErrCorruptSnapshot)
		}
		if err = replay.apply(cmd); err != nil {
			return nil, fmt.Errorf("done_stack[%d] %s: %v: %w", i, cmd, err, ErrCorruptSnapshot)
		}
	}
	if err = samePosition(replay, out.st); err != nil {
		return nil, err
	}

	// Redo the Undone stack (top first) on a scratch copy.
	scratch := out.st.clone()
	for i := len(undone) - 1; i >= 0; i-- {
		cmd := undone[i]
		if cmd.Kind == CreateNode && cmd.Vertex >= g.NextID() {
			return nil, fmt.Errorf("undone_stack[%d] %s: vertex never allocated: %w", i, cmd, ErrCorruptSnapshot)
		}
		if err = scratch.apply(cmd); err != nil {
			return nil, fmt.Errorf("undone_stack[%d] %s: %v: %w", i, cmd, err, ErrCorruptSnapshot)
		}
	}

	out.hist.Restore(done, undone)
	if r.Selected != nil {
		k := core.Key(core.VertexID(r.Selected[0]), core.VertexID(r.Selected[1]))
		out.selected = &k
	}

	return out, nil
}

func commandsFromRecords(rs []snapshot.Command) ([]Command, error) {
	out := make([]Command, 0, len(rs))
	for _, rc := range rs {
		cmd, err := commandFromRecord(rc)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", err, ErrCorruptSnapshot)
		}
		out = append(out, cmd)
	}

	return out, nil
}

// samePosition compares vertices, colored edges and turn state.
func samePosition(replayed, saved *board) error {
	if replayed.turn != saved.turn {
		return fmt.Errorf("history replays to %s turn %d, saved %s turn %d: %w",
			replayed.turn.Phase, replayed.turn.Counter, saved.turn.Phase, saved.turn.Counter, ErrCorruptSnapshot)
	}
	a, b := replayed.g.Snapshot(), saved.g.Snapshot()
	if len(a.Vertices) != len(b.Vertices) || len(a.Edges) != len(b.Edges) {
		return fmt.Errorf("history replays to %d vertices/%d edges, saved %d/%d: %w",
			len(a.Vertices), len(a.Edges), len(b.Vertices), len(b.Edges), ErrCorruptSnapshot)
	}
	for i := range a.Vertices {
		if a.Vertices[i] != b.Vertices[i] {
			return fmt.Errorf("history replays vertex %d, saved %d: %w", a.Vertices[i], b.Vertices[i], ErrCorruptSnapshot)
		}
	}
	for i := range a.Edges {
		if a.Edges[i] != b.Edges[i] {
			return fmt.Errorf("history replays edge %v, saved %v: %w", a.Edges[i], b.Edges[i], ErrCorruptSnapshot)
		}
	}

	return nil
}
