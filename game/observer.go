package game

import "time"

// Operation names passed to an Observer.
const (
	OpExecute = "execute"
	OpUndo    = "undo"
	OpRedo    = "redo"
	OpLoad    = "load"
)

// Observer receives engine events, e.g. to feed metrics. Calls happen
// synchronously under the engine lock, so implementations must not call
// back into the Engine.
type Observer interface {
	// CommandDone fires after a command is executed, undone or redone.
	CommandDone(op string, kind CommandKind)
	// MoveRejected fires when an operation fails; reason is a short tag.
	MoveRejected(op, reason string)
	// GoalChecked fires after every goal evaluation.
	GoalChecked(elapsed time.Duration, found bool)
	// GoalChanged fires when the goal status flips.
	GoalChanged(status GoalStatus)
}

type nopObserver struct{}

func (nopObserver) CommandDone(string, CommandKind) {}
func (nopObserver) MoveRejected(string, string) {}
func (nopObserver) GoalChecked(time.Duration, bool) {}
func (nopObserver) GoalChanged(GoalStatus) {}
