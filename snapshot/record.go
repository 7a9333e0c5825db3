// Package snapshot defines the persisted form of a game: a versioned record,
// its structural validation and its byte encoding.
//
// The record is logical, not a memory dump: vertices, colored edges, turn
// state, selection, both history stacks and the goal pattern. Every field is
// a plain value so a record can be produced, stored and checked without an
// engine. Validate rejects anything an engine could not have produced;
// Decode always validates.
package snapshot

import "errors"

// Version is the only record layout this package reads and writes.
const Version = 1

// ErrCorruptSnapshot wraps every decoding or validation failure.
var ErrCorruptSnapshot = errors.New("snapshot: corrupt snapshot")

// Command kinds as they appear in done_stack/undone_stack.
const (
	KindCreateNode   = "create_node"
	KindCreateEdge   = "create_edge"
	KindSetEdgeColor = "set_edge_color"
)

// Edge is one board edge. Color is a core.Color name.
type Edge struct {
	U     int    `json:"u"`
	V     int    `json:"v"`
	Color string `json:"color"`
}

// Command is one history entry. Vertex is set for create_node; U and V for
// the edge kinds; From and To (color names) for set_edge_color.
type Command struct {
	Kind   string `json:"kind"`
	Vertex int    `json:"vertex,omitempty"`
	U      int    `json:"u,omitempty"`
	V      int    `json:"v,omitempty"`
	From   string `json:"from,omitempty"`
	To     string `json:"to,omitempty"`
}

// Pattern is the goal graph.
type Pattern struct {
	Name  string   `json:"name"`
	Nodes []int    `json:"nodes"`
	Edges [][2]int `json:"edges"`
}

// Record is the full persisted game.
type Record struct {
	Version       int       `json:"version"`
	Session       string    `json:"session,omitempty"`
	NextVertex    int       `json:"next_vertex"`
	Nodes         []int     `json:"nodes"`
	Edges         []Edge    `json:"edges"`
	TurnCounter   int       `json:"turn_counter"`
	Phase         string    `json:"phase"`
	Selected      *[2]int   `json:"selected,omitempty"`
	GoalTurn      int       `json:"goal_turn,omitempty"`
	DoneStack     []Command `json:"done_stack"`
	UndoneStack   []Command `json:"undone_stack"`
	TargetPattern Pattern   `json:"target_pattern"`
}
