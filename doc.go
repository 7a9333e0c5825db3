// Package ramsey is a rules engine for the Builder/Painter graph game.
//
// 🎲 The game
//
//	Builder grows an undirected simple graph one vertex or edge at a time.
//	Painter answers every new edge by painting it red or blue. Builder wins
//	as soon as one color class contains a copy of the goal pattern (a
//	4-cycle unless configured otherwise).
//
// ✨ What you get
//
//   - A thread-safe board with monotonic vertex IDs and logical edge colors
//   - Turn phases that always alternate Builder → Painter → Builder
//   - Unlimited undo/redo; a fresh move clears the redo stack
//   - Goal detection by subgraph monomorphism, re-run after every change
//   - Versioned, validated save files kept in named slots
//
// Under the hood:
//
//	core/       — Graph, Color/DisplayColor, color-class view (ColorSubgraph)
//	builder/    — goal patterns: cycles, paths, stars, wheels, complete (bipartite)
//	dfs/        — depth-first traversal and connected components
//	matcher/    — subgraph monomorphism (Find, Count, Evaluate)
//	turn/       — phase and turn counter
//	history/    — generic undo/redo stacks
//	snapshot/   — save-file record, validation and codec
//	game/       — the Engine tying it all together
//	store/      — badger-backed save slots
//	metrics/    — Prometheus observer for engine events
//	config/     — YAML + env configuration, logger construction
//	cmd/ramsey  — interactive CLI
//
// Quick example: the Builder wins against an all-red Painter on turn 3.
//
//	e, _ := game.New(game.WithPattern("triangle"))
//	for i := 0; i < 3; i++ { e.CreateNode() }
//	e.CreateEdge(1, 2); e.ColorEdge(core.Red)
//	e.CreateEdge(2, 3); e.ColorEdge(core.Red)
//	e.CreateEdge(1, 3); e.ColorEdge(core.Red)
//	fmt.Println(e.State().Goal) // Builder wins on turn 3
//
//	    1───2      (all red)
//	     ╲ ╱
//	      3
package ramsey
