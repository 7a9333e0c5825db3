package game

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/ramsey/core"
	"github.com/katalvlaran/ramsey/matcher"
)

// Copies counts the monochromatic copies of the goal pattern on the board,
// per paint color. A copy is a set of host vertices and edges, so mappings
// that differ only by a symmetry of the pattern count once. When limit > 0
// each color's search stops once limit copies' worth of mappings is found,
// so a capped count never exceeds limit.
//
// The board is cloned under the engine lock and searched outside it; a long
// count never blocks moves. Cancellation returns ctx.Err().
func (e *Engine) Copies(ctx context.Context, limit int) (map[core.Color]int, error) {
	e.mu.Lock()
	pattern, g := e.pattern.Clone(), e.st.g.Clone()
	e.mu.Unlock()

	autos, err := matcher.CountContext(ctx, pattern, pattern, 0)
	if err != nil {
		return nil, fmt.Errorf("Copies: symmetries: %w", err)
	}

	out := make(map[core.Color]int, len(core.PaintColors))
	for _, c := range core.PaintColors {
		n, err := matcher.CountContext(ctx, pattern, core.ColorSubgraph(g, c), limit*autos)
		if err != nil {
			return nil, fmt.Errorf("Copies(%s): %w", c, err)
		}
		out[c] = n / autos
	}
	e.log.Debug("copies counted",
		zap.Int("symmetries", autos),
		zap.Int("red", out[core.Red]),
		zap.Int("blue", out[core.Blue]))

	return out, nil
}
