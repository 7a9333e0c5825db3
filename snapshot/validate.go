package snapshot

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/ramsey/core"
	"github.com/katalvlaran/ramsey/turn"
)

// corrupt builds an ErrCorruptSnapshot with context.
func corrupt(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrCorruptSnapshot)
}

// Validate checks everything that can be checked without replaying history:
// version, session, turn state, board structure, selection, pattern, and
// the shape of every command. Done-stack commands must refer to vertices
// and edges present on the board.
func (r Record) Validate() error {
	if r.Version != Version {
		return corrupt("version %d, want %d", r.Version, Version)
	}
	if r.Session != "" {
		if _, err := uuid.Parse(r.Session); err != nil {
			return corrupt("session %q: %v", r.Session, err)
		}
	}
	if _, err := turn.ParsePhase(r.Phase); err != nil {
		return corrupt("phase: %v", err)
	}
	if r.TurnCounter < turn.FirstTurn {
		return corrupt("turn_counter %d < %d", r.TurnCounter, turn.FirstTurn)
	}

	if r.GoalTurn < 0 || r.GoalTurn >= r.TurnCounter {
		return corrupt("goal_turn %d outside [0,%d)", r.GoalTurn, r.TurnCounter)
	}

	board, err := r.Board()
	if err != nil {
		return err
	}
	if r.Selected != nil && !board.HasEdge(core.VertexID(r.Selected[0]), core.VertexID(r.Selected[1])) {
		return corrupt("selected edge %v not on board", *r.Selected)
	}
	if _, err = r.PatternGraph(); err != nil {
		return err
	}

	for i, c := range r.DoneStack {
		if err = c.validate(); err != nil {
			return corrupt("done_stack[%d]: %v", i, err)
		}
		if c.Kind == KindCreateNode && !board.HasVertex(core.VertexID(c.Vertex)) {
			return corrupt("done_stack[%d]: vertex %d not on board", i, c.Vertex)
		}
		if c.Kind != KindCreateNode && !board.HasEdge(core.VertexID(c.U), core.VertexID(c.V)) {
			return corrupt("done_stack[%d]: edge (%d,%d) not on board", i, c.U, c.V)
		}
	}
	for i, c := range r.UndoneStack {
		if err = c.validate(); err != nil {
			return corrupt("undone_stack[%d]: %v", i, err)
		}
	}

	return nil
}

// Board rebuilds the board graph, reporting structural problems as
// ErrCorruptSnapshot.
func (r Record) Board() (*core.Graph, error) {
	snap := core.GraphSnapshot{NextID: core.VertexID(r.NextVertex)}
	for _, id := range r.Nodes {
		snap.Vertices = append(snap.Vertices, core.VertexID(id))
	}
	for _, e := range r.Edges {
		c, err := core.ParseColor(e.Color)
		if err != nil {
			return nil, corrupt("edge (%d,%d): %v", e.U, e.V, err)
		}
		snap.Edges = append(snap.Edges, core.Edge{U: core.VertexID(e.U), V: core.VertexID(e.V), Color: c})
	}
	g, err := core.FromSnapshot(snap)
	if err != nil {
		return nil, corrupt("board: %v", err)
	}

	return g, nil
}

// PatternGraph rebuilds the goal pattern; it must have at least one edge.
func (r Record) PatternGraph() (*core.Graph, error) {
	p := r.TargetPattern
	if len(p.Edges) == 0 {
		return nil, corrupt("target_pattern %q has no edges", p.Name)
	}
	snap := core.GraphSnapshot{}
	for _, id := range p.Nodes {
		snap.Vertices = append(snap.Vertices, core.VertexID(id))
		if core.VertexID(id) >= snap.NextID {
			snap.NextID = core.VertexID(id) + 1
		}
	}
	for _, e := range p.Edges {
		snap.Edges = append(snap.Edges, core.Edge{U: core.VertexID(e[0]), V: core.VertexID(e[1])})
	}
	g, err := core.FromSnapshot(snap)
	if err != nil {
		return nil, corrupt("target_pattern: %v", err)
	}

	return g, nil
}

// validate checks one command's fields for its kind.
func (c Command) validate() error {
	switch c.Kind {
	case KindCreateNode:
		if c.Vertex < int(core.FirstVertexID) {
			return fmt.Errorf("create_node vertex %d", c.Vertex)
		}
	case KindCreateEdge, KindSetEdgeColor:
		if c.U < int(core.FirstVertexID) || c.V < int(core.FirstVertexID) || c.U == c.V {
			return fmt.Errorf("%s edge (%d,%d)", c.Kind, c.U, c.V)
		}
		if c.Kind == KindCreateEdge {
			return nil
		}
		from, err := core.ParseColor(c.From)
		if err != nil {
			return err
		}
		to, err := core.ParseColor(c.To)
		if err != nil {
			return err
		}
		if from == to || !to.Paint() {
			return fmt.Errorf("set_edge_color %s -> %s", from, to)
		}
	default:
		return fmt.Errorf("unknown kind %q", c.Kind)
	}

	return nil
}
