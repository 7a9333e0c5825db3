// Package builder defines shared constants used by pattern constructors, ensuring
// consistent method names and minima across all topologies.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	MethodCycle             = "Cycle"
	MethodPath              = "Path"
	MethodStar              = "Star"
	MethodWheel             = "Wheel"
	MethodComplete          = "Complete"
	MethodCompleteBipartite = "CompleteBipartite"
	MethodFromEdges         = "FromEdges"
	MethodNamed             = "Named"
)

//-----------------------------------------------------------------------------
// Minimum Node Counts
//-----------------------------------------------------------------------------

// MinCycleNodes is the smallest cycle that is a simple graph (a triangle).
const MinCycleNodes = 3

// MinPathNodes is the smallest path with at least one edge.
const MinPathNodes = 2

// MinStarNodes is one hub plus one leaf.
const MinStarNodes = 2

// MinWheelNodes is a triangle rim plus the hub.
const MinWheelNodes = 4

// MinCompleteNodes is the smallest complete graph with an edge.
const MinCompleteNodes = 2

// MinPartition is the smallest side of a complete bipartite graph.
const MinPartition = 1
