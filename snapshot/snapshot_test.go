package snapshot_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ramsey/snapshot"
)

// validRecord is a triangle board after three full turns, goal reached on
// turn 3, with the last paint undone.
func validRecord() snapshot.Record {
	return snapshot.Record{
		Version:    snapshot.Version,
		Session:    uuid.NewString(),
		NextVertex: 4,
		Nodes:      []int{1, 2, 3},
		Edges: []snapshot.Edge{
			{U: 1, V: 2, Color: "red"},
			{U: 1, V: 3, Color: "neutral"},
			{U: 2, V: 3, Color: "red"},
		},
		TurnCounter: 3,
		Phase:       "painter",
		Selected:    &[2]int{1, 3},
		DoneStack: []snapshot.Command{
			{Kind: snapshot.KindCreateNode, Vertex: 1},
			{Kind: snapshot.KindCreateNode, Vertex: 2},
			{Kind: snapshot.KindCreateNode, Vertex: 3},
			{Kind: snapshot.KindCreateEdge, U: 1, V: 2},
			{Kind: snapshot.KindSetEdgeColor, U: 1, V: 2, From: "neutral", To: "red"},
			{Kind: snapshot.KindCreateEdge, U: 2, V: 3},
			{Kind: snapshot.KindSetEdgeColor, U: 2, V: 3, From: "neutral", To: "red"},
			{Kind: snapshot.KindCreateEdge, U: 1, V: 3},
		},
		UndoneStack: []snapshot.Command{
			{Kind: snapshot.KindSetEdgeColor, U: 1, V: 3, From: "neutral", To: "red"},
		},
		TargetPattern: snapshot.Pattern{
			Name:  "triangle",
			Nodes: []int{1, 2, 3},
			Edges: [][2]int{{1, 2}, {2, 3}, {1, 3}},
		},
	}
}

func TestRoundTrip(t *testing.T) {
	r := validRecord()
	blob, err := snapshot.Encode(r)
	require.NoError(t, err)

	back, err := snapshot.Decode(blob)
	require.NoError(t, err)
	assert.Equal(t, r, back)

	board, err := back.Board()
	require.NoError(t, err)
	assert.Equal(t, 3, board.EdgeCount())
	p, err := back.PatternGraph()
	require.NoError(t, err)
	assert.Equal(t, 3, p.EdgeCount())
}

func TestWireNames(t *testing.T) {
	blob, err := snapshot.Encode(validRecord())
	require.NoError(t, err)
	for _, key := range []string{
		`"next_vertex":4`, `"turn_counter":3`, `"phase":"painter"`, `"selected":[1,3]`,
		`"done_stack":`, `"undone_stack":`, `"target_pattern":`, `"kind":"set_edge_color"`,
	} {
		assert.Contains(t, string(blob), key)
	}
	assert.NotContains(t, string(blob), "goal_turn", "zero goal turn is omitted")
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]func(*snapshot.Record){
		"version":              func(r *snapshot.Record) { r.Version = 2 },
		"session":              func(r *snapshot.Record) { r.Session = "not-a-uuid" },
		"phase":                func(r *snapshot.Record) { r.Phase = "referee" },
		"counter":              func(r *snapshot.Record) { r.TurnCounter = 0 },
		"goal turn ahead":      func(r *snapshot.Record) { r.GoalTurn = 3 },
		"negative goal turn":   func(r *snapshot.Record) { r.GoalTurn = -1 },
		"edge color":           func(r *snapshot.Record) { r.Edges[0].Color = "green" },
		"dangling edge":        func(r *snapshot.Record) { r.Edges[0].V = 9 },
		"self loop":            func(r *snapshot.Record) { r.Edges[0].V = 1 },
		"allocator behind":     func(r *snapshot.Record) { r.NextVertex = 2 },
		"selection off board":  func(r *snapshot.Record) { r.Selected = &[2]int{2, 4} },
		"edgeless pattern":     func(r *snapshot.Record) { r.TargetPattern.Edges = nil },
		"pattern loop":         func(r *snapshot.Record) { r.TargetPattern.Edges[0] = [2]int{2, 2} },
		"unknown kind":         func(r *snapshot.Record) { r.DoneStack[0].Kind = "delete_node" },
		"done vertex missing":  func(r *snapshot.Record) { r.DoneStack[0].Vertex = 7 },
		"done edge missing":    func(r *snapshot.Record) { r.DoneStack[3].V = 4 },
		"paint to neutral":     func(r *snapshot.Record) { r.UndoneStack[0].To = "neutral" },
		"paint same color":     func(r *snapshot.Record) { r.DoneStack[4].From = "red" },
		"undone bad endpoints": func(r *snapshot.Record) { r.UndoneStack[0].U = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			r := validRecord()
			mutate(&r)
			require.ErrorIs(t, r.Validate(), snapshot.ErrCorruptSnapshot)

			_, err := snapshot.Encode(r)
			require.ErrorIs(t, err, snapshot.ErrCorruptSnapshot, "Encode refuses what Validate rejects")
		})
	}
}

func TestValidateAccepts(t *testing.T) {
	r := validRecord()
	r.Session = ""
	r.Selected = nil
	r.GoalTurn = 2
	require.NoError(t, r.Validate())

	empty := snapshot.Record{
		Version:       snapshot.Version,
		NextVertex:    1,
		TurnCounter:   1,
		Phase:         "builder",
		TargetPattern: snapshot.Pattern{Name: "k2", Nodes: []int{1, 2}, Edges: [][2]int{{1, 2}}},
	}
	require.NoError(t, empty.Validate())
}

func TestDecodeRejects(t *testing.T) {
	good, err := snapshot.Encode(validRecord())
	require.NoError(t, err)

	cases := map[string][]byte{
		"garbage":       []byte("\x80\x04pickle"),
		"empty":         nil,
		"unknown field": append([]byte(`{"cheat":true,`), good[1:]...),
		"trailing data": append(append([]byte{}, good...), []byte(` {"version":1}`)...),
		"wrong type":    []byte(`{"version":"one"}`),
	}
	for name, blob := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := snapshot.Decode(blob)
			require.ErrorIs(t, err, snapshot.ErrCorruptSnapshot)
		})
	}
}
