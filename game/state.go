package game

import (
	"github.com/katalvlaran/ramsey/core"
	"github.com/katalvlaran/ramsey/turn"
)

// EdgeView is one edge as a presentation layer draws it.
type EdgeView struct {
	U, V     core.VertexID
	Color    core.Color
	Display  core.DisplayColor
	Selected bool
}

// State is a detached, read-only view of the engine.
type State struct {
	Session     string
	Pattern     string
	Vertices    []core.VertexID
	Edges       []EdgeView
	Selected    *core.EdgeKey
	Phase       turn.Phase
	TurnCounter int
	Goal        GoalStatus
	// GoalColor and GoalEdges describe the copy found, when Goal.Achieved.
	GoalColor   core.Color
	GoalEdges   []core.EdgeKey
	DoneDepth   int
	UndoneDepth int
	CanUndo     bool
	CanRedo     bool
}

// State returns the current view. Vertices ascend; edges are sorted by (U,V).
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := State{
		Session:     e.session.String(),
		Pattern:     e.patternName,
		Vertices:    e.st.g.Vertices(),
		Phase:       e.st.turn.Phase,
		TurnCounter: e.st.turn.Counter,
		Goal:        e.goal,
		GoalColor:   e.goalColor,
		GoalEdges:   append([]core.EdgeKey(nil), e.goalCopy...),
	}
	s.DoneDepth, s.UndoneDepth = e.hist.Len()
	s.CanUndo, s.CanRedo = e.hist.CanUndo(), e.hist.CanRedo()

	if e.selected != nil {
		k := *e.selected
		s.Selected = &k
	}
	for _, edge := range e.st.g.Edges() {
		sel := e.selected != nil && *e.selected == edge.Key()
		s.Edges = append(s.Edges, EdgeView{
			U:        edge.U,
			V:        edge.V,
			Color:    edge.Color,
			Display:  edge.Color.Display(sel),
			Selected: sel,
		})
	}

	return s
}

// Pattern returns the goal's name and a copy of its graph.
func (e *Engine) Pattern() (string, *core.Graph) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.patternName, e.pattern.Clone()
}

// History returns copies of the Done and Undone stacks, oldest first.
func (e *Engine) History() (done, undone []Command) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.hist.Done(), e.hist.Undone()
}
