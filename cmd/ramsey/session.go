package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/ramsey/core"
	"github.com/katalvlaran/ramsey/game"
	"github.com/katalvlaran/ramsey/store"
)

var errUsage = errors.New("usage")

// copyLimit caps the per-color copy count shown by 'state' and GET /state.
const copyLimit = 1000

const helpText = `commands:
  node | n                 Builder: add a vertex
  edge | e U V             Builder: add edge U-V (auto-selected)
  select | s U V           select edge U-V
  unselect                 clear the selection
  red | r, blue | b        Painter: paint the selected edge
  undo | u, redo | y       walk the history
  state | .                show the board
  history                  list done and undone commands
  save [SLOT]              save to a slot (default game_state)
  load [SLOT]              load from a slot
  slots                    list saved slots
  reset                    start over
  quit | q                 leave`

// session drives one engine from a line-oriented stream.
type session struct {
	eng   *game.Engine
	slots *store.Store
	out   io.Writer
	log   *zap.Logger
}

func newSession(eng *game.Engine, slots *store.Store, out io.Writer, log *zap.Logger) *session {
	return &session{eng: eng, slots: slots, out: out, log: log}
}

// run reads commands until EOF, quit or ctx cancellation. Command errors are
// printed and the loop continues; only I/O and context errors end it.
func (s *session) run(ctx context.Context, in io.Reader) error {
	sc := bufio.NewScanner(in)
	s.status()
	for {
		fmt.Fprint(s.out, "> ")
		if !sc.Scan() {
			fmt.Fprintln(s.out)
			return sc.Err()
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		quit, err := s.exec(ctx, sc.Text())
		if err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
		if quit {
			return nil
		}
	}
}

// exec runs one command line.
func (s *session) exec(ctx context.Context, line string) (quit bool, err error) {
	f := strings.Fields(line)
	if len(f) == 0 {
		return false, nil
	}
	cmd, args := strings.ToLower(f[0]), f[1:]

	switch cmd {
	case "help", "?", "h":
		fmt.Fprintln(s.out, helpText)
	case "node", "n":
		id, err := s.eng.CreateNode()
		if err != nil {
			return false, err
		}
		fmt.Fprintf(s.out, "vertex %d\n", id)
	case "edge", "e":
		u, v, err := parsePair(cmd, args)
		if err != nil {
			return false, err
		}
		if err = s.eng.CreateEdge(u, v); err != nil {
			return false, err
		}
		s.status()
	case "select", "s":
		u, v, err := parsePair(cmd, args)
		if err != nil {
			return false, err
		}
		if err = s.eng.SelectEdge(u, v); err != nil {
			return false, err
		}
		fmt.Fprintf(s.out, "selected %d-%d\n", min(u, v), max(u, v))
	case "unselect":
		s.eng.ClearSelection()
	case "red", "r", "blue", "b":
		c, _ := core.ParseColor(cmd)
		if err := s.eng.ColorEdge(c); err != nil {
			return false, err
		}
		s.status()
	case "undo", "u":
		if err := s.eng.Undo(); err != nil {
			return false, err
		}
		s.status()
	case "redo", "y":
		if err := s.eng.Redo(); err != nil {
			return false, err
		}
		s.status()
	case "state", ".":
		return false, s.render(ctx)
	case "history":
		s.history()
	case "save":
		return false, s.save(ctx, slotArg(args))
	case "load":
		return false, s.load(ctx, slotArg(args))
	case "slots":
		return false, s.list(ctx)
	case "reset":
		s.eng.Reset()
		s.status()
	case "quit", "q", "exit":
		return true, nil
	default:
		return false, fmt.Errorf("unknown command %q (try 'help')", f[0])
	}

	return false, nil
}

func parsePair(cmd string, args []string) (core.VertexID, core.VertexID, error) {
	if len(args) != 2 {
		return 0, 0, fmt.Errorf("%w: %s U V", errUsage, cmd)
	}
	u, errU := strconv.Atoi(args[0])
	v, errV := strconv.Atoi(args[1])
	if errU != nil || errV != nil {
		return 0, 0, fmt.Errorf("%w: %s U V (integers)", errUsage, cmd)
	}
	return core.VertexID(u), core.VertexID(v), nil
}

func slotArg(args []string) string {
	if len(args) == 0 {
		return store.DefaultSlot
	}
	return args[0]
}

func (s *session) save(ctx context.Context, slot string) error {
	blob, err := s.eng.Save()
	if err != nil {
		return err
	}
	if err = s.slots.Save(ctx, slot, blob); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "saved %s (%d bytes)\n", slot, len(blob))
	return nil
}

func (s *session) load(ctx context.Context, slot string) error {
	blob, err := s.slots.Load(ctx, slot)
	if err != nil {
		return err
	}
	if err = s.eng.Load(blob); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "loaded %s\n", slot)
	s.status()
	return nil
}

func (s *session) list(ctx context.Context) error {
	slots, err := s.slots.List(ctx)
	if err != nil {
		return err
	}
	if len(slots) == 0 {
		fmt.Fprintln(s.out, "no saved games")
	}
	for _, sl := range slots {
		fmt.Fprintf(s.out, "%-20s %6d bytes  %s\n", sl.Name, sl.Size, sl.SavedAt.Format("2006-01-02 15:04:05"))
	}
	return nil
}

// status prints the one-line summary shown after every move.
func (s *session) status() {
	st := s.eng.State()
	var walk []string
	if st.CanUndo {
		walk = append(walk, "undo")
	}
	if st.CanRedo {
		walk = append(walk, "redo")
	}
	line := fmt.Sprintf("turn %d, %s to move | goal %s: %s", st.TurnCounter, st.Phase, st.Pattern, st.Goal)
	if len(walk) > 0 {
		line += " | " + strings.Join(walk, "/")
	}
	fmt.Fprintln(s.out, line)
}

// render prints the full board, the copy found and the per-color copy counts.
func (s *session) render(ctx context.Context) error {
	st := s.eng.State()
	s.status()

	ids := make([]string, len(st.Vertices))
	for i, id := range st.Vertices {
		ids[i] = strconv.Itoa(int(id))
	}
	fmt.Fprintf(s.out, "vertices: %s\n", strings.Join(ids, " "))

	fmt.Fprintf(s.out, "edges: %d\n", len(st.Edges))
	for _, e := range st.Edges {
		mark := ""
		if e.Selected {
			mark = " *"
		}
		fmt.Fprintf(s.out, "  %d-%d %s%s\n", e.U, e.V, e.Display, mark)
	}

	if st.Goal.Achieved {
		keys := make([]string, len(st.GoalEdges))
		for i, k := range st.GoalEdges {
			keys[i] = fmt.Sprintf("%d-%d", k.U, k.V)
		}
		fmt.Fprintf(s.out, "%s copy: %s\n", st.GoalColor, strings.Join(keys, " "))
	}

	copies, err := s.eng.Copies(ctx, copyLimit)
	if err != nil {
		return err
	}
	counts := make([]string, len(core.PaintColors))
	for i, c := range core.PaintColors {
		counts[i] = fmt.Sprintf("%s %d", c, copies[c])
	}
	fmt.Fprintf(s.out, "copies: %s\n", strings.Join(counts, ", "))

	return nil
}

func (s *session) history() {
	done, undone := s.eng.History()
	fmt.Fprintf(s.out, "done (%d):\n", len(done))
	for _, c := range done {
		fmt.Fprintf(s.out, "  %s\n", c)
	}
	fmt.Fprintf(s.out, "undone (%d):\n", len(undone))
	for i := len(undone) - 1; i >= 0; i-- {
		fmt.Fprintf(s.out, "  %s\n", undone[i])
	}
}

// stateDoc is the JSON shape served on GET /state.
type stateDoc struct {
	Session  string         `json:"session"`
	Pattern  string         `json:"pattern"`
	Phase    string         `json:"phase"`
	Turn     int            `json:"turn_counter"`
	Vertices []int          `json:"vertices"`
	Edges    []edgeDoc      `json:"edges"`
	Goal     string         `json:"goal"`
	GoalTurn int            `json:"goal_turn,omitempty"`
	Selected *[2]int        `json:"selected,omitempty"`
	CanUndo  bool           `json:"can_undo"`
	CanRedo  bool           `json:"can_redo"`
	Copies   map[string]int `json:"copies,omitempty"`
}

type edgeDoc struct {
	U       int    `json:"u"`
	V       int    `json:"v"`
	Color   string `json:"color"`
	Display string `json:"display"`
}

func newStateDoc(st game.State) stateDoc {
	d := stateDoc{
		Session:  st.Session,
		Pattern:  st.Pattern,
		Phase:    st.Phase.String(),
		Turn:     st.TurnCounter,
		Vertices: make([]int, len(st.Vertices)),
		Edges:    make([]edgeDoc, len(st.Edges)),
		Goal:     st.Goal.String(),
		GoalTurn: st.Goal.Turn,
		CanUndo:  st.CanUndo,
		CanRedo:  st.CanRedo,
	}
	for i, id := range st.Vertices {
		d.Vertices[i] = int(id)
	}
	for i, e := range st.Edges {
		d.Edges[i] = edgeDoc{U: int(e.U), V: int(e.V), Color: e.Color.String(), Display: e.Display.String()}
	}
	if st.Selected != nil {
		d.Selected = &[2]int{int(st.Selected.U), int(st.Selected.V)}
	}
	return d
}

// setCopies stores per-color copy counts keyed by color name.
func (d *stateDoc) setCopies(copies map[core.Color]int) {
	d.Copies = make(map[string]int, len(copies))
	for c, n := range copies {
		d.Copies[c.String()] = n
	}
}
