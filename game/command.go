// SPDX-License-Identifier: MIT
//
// File: command.go
// Role: The closed set of reversible game commands and their snapshot form.

package game

import (
	"fmt"

	"github.com/katalvlaran/ramsey/core"
	"github.com/katalvlaran/ramsey/snapshot"
)

// CommandKind tags a Command.
type CommandKind uint8

const (
	CreateNode CommandKind = iota + 1
	CreateEdge
	SetEdgeColor
)

// String returns the snapshot name of the kind.
func (k CommandKind) String() string {
	switch k {
	case CreateNode:
		return snapshot.KindCreateNode
	case CreateEdge:
		return snapshot.KindCreateEdge
	case SetEdgeColor:
		return snapshot.KindSetEdgeColor
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Command is one reversible unit of change. It carries everything needed to
// apply and to invert itself and never references the engine.
//
//	CreateNode:   Vertex
//	CreateEdge:   U, V (canonical U < V)
//	SetEdgeColor: U, V, From (color before), To (color after)
type Command struct {
	Kind   CommandKind
	Vertex core.VertexID
	U, V   core.VertexID
	From   core.Color
	To     core.Color
}

// Edge returns the command's edge key; meaningless for CreateNode.
func (c Command) Edge() core.EdgeKey { return core.Key(c.U, c.V) }

// String renders the command for logs and the CLI.
func (c Command) String() string {
	switch c.Kind {
	case CreateNode:
		return fmt.Sprintf("%s %d", c.Kind, c.Vertex)
	case CreateEdge:
		return fmt.Sprintf("%s %d-%d", c.Kind, c.U, c.V)
	default:
		return fmt.Sprintf("%s %d-%d %s->%s", c.Kind, c.U, c.V, c.From, c.To)
	}
}

// isCreateEdge marks the commands whose position history indexes for
// selection restoration.
func isCreateEdge(c Command) bool { return c.Kind == CreateEdge }

func (c Command) record() snapshot.Command {
	r := snapshot.Command{Kind: c.Kind.String()}
	switch c.Kind {
	case CreateNode:
		r.Vertex = int(c.Vertex)
	case CreateEdge:
		r.U, r.V = int(c.U), int(c.V)
	case SetEdgeColor:
		r.U, r.V = int(c.U), int(c.V)
		r.From, r.To = c.From.String(), c.To.String()
	}

	return r
}

// commandFromRecord converts a validated snapshot command.
func commandFromRecord(r snapshot.Command) (Command, error) {
	switch r.Kind {
	case snapshot.KindCreateNode:
		return Command{Kind: CreateNode, Vertex: core.VertexID(r.Vertex)}, nil
	case snapshot.KindCreateEdge:
		k := core.Key(core.VertexID(r.U), core.VertexID(r.V))
		return Command{Kind: CreateEdge, U: k.U, V: k.V}, nil
	case snapshot.KindSetEdgeColor:
		from, err := core.ParseColor(r.From)
		if err != nil {
			return Command{}, err
		}
		to, err := core.ParseColor(r.To)
		if err != nil {
			return Command{}, err
		}
		k := core.Key(core.VertexID(r.U), core.VertexID(r.V))
		return Command{Kind: SetEdgeColor, U: k.U, V: k.V, From: from, To: to}, nil
	default:
		return Command{}, fmt.Errorf("unknown kind %q: %w", r.Kind, ErrCorruptSnapshot)
	}
}
