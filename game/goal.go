package game

import "fmt"

// GoalStatus is NotAchieved or AchievedAtTurn(n), n being the number of
// completed turns when the monochromatic copy first appeared.
type GoalStatus struct {
	Achieved bool
	Turn     int
}

// NotAchieved is the status of a board without a monochromatic copy.
func NotAchieved() GoalStatus { return GoalStatus{} }

// AchievedAtTurn is the status of a board whose copy appeared at turn n.
func AchievedAtTurn(n int) GoalStatus { return GoalStatus{Achieved: true, Turn: n} }

// String is the status line shown to players.
func (s GoalStatus) String() string {
	if !s.Achieved {
		return "Builder wins on turn ?"
	}
	return fmt.Sprintf("Builder wins on turn %d", s.Turn)
}
