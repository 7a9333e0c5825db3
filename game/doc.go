// Package game is the Builder/Painter engine: two players on one evolving
// graph. The Builder adds vertices and edges; the Painter colors each new
// edge Red or Blue; the Builder wins once the board holds a monochromatic
// copy of the goal pattern.
//
// Turn discipline:
//
//	BuilderTurn: CreateNode (free, any number), CreateEdge (ends the move)
//	PainterTurn: ColorEdge on the selected edge (ends the turn, counter+1)
//
// Every move is a Command executed through a two-stack history, so Undo and
// Redo revert and replay board and turn state together. After every
// committed change the goal matcher re-checks the Red and Blue subgraphs;
// the status is AchievedAtTurn(n) from the first detection (n = completed
// turns) for as long as a copy exists, and NotAchieved otherwise.
//
// Selection is presentation state kept by the engine: a new edge is
// selected automatically; undoing an edge creation selects the newest edge
// still created, or nothing; redoing one selects it again.
//
// Errors:
//
//	ErrIllegalMove      move out of phase, without selection, or same color
//	ErrInvalidEdge      self-loop
//	ErrDuplicateEdge    edge already present
//	ErrVertexNotFound   unknown endpoint
//	ErrEdgeNotFound     selecting a missing edge
//	ErrNothingToUndo    empty Done stack
//	ErrNothingToRedo    empty Undone stack
//	ErrCorruptSnapshot  Load input failed validation or replay
//	ErrInvalidPattern   New with an unusable goal
package game
