// SPDX-License-Identifier: MIT
// Package: ramsey/builder
//
// names.go — short textual names for goal patterns.
//
// Grammar (case-insensitive, surrounding spaces ignored):
//   triangle | square          aliases of c3 | c4
//   c<N> | cycle<N>            Cycle(N)
//   k<N>                       Complete(N)
//   k<M>,<N> | k<M>x<N>        CompleteBipartite(M,N)
//   p<N>                       Path(N)
//   s<N>                       Star(N)
//   w<N>                       Wheel(N)

package builder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/ramsey/core"
)

// aliases maps friendly names onto the grammar above.
var aliases = map[string]string{
	"triangle": "c3",
	"square":   "c4",
}

// families maps a name prefix to its single-size constructor. Longer
// prefixes are listed first so "cycle" wins over "c".
var families = []struct {
	prefix string
	build  func(int) Constructor
}{
	{"cycle", Cycle},
	{"c", Cycle},
	{"k", Complete},
	{"p", Path},
	{"s", Star},
	{"w", Wheel},
}

// Named parses a pattern name and returns the matching Constructor.
// Unknown names and malformed sizes wrap ErrUnknownPattern; sizes that parse
// but are too small are reported by the returned Constructor itself.
func Named(name string) Constructor {
	key := strings.ToLower(strings.TrimSpace(name))
	if a, ok := aliases[key]; ok {
		key = a
	}

	if rest, ok := strings.CutPrefix(key, "k"); ok {
		if sep := strings.IndexAny(rest, ",x"); sep >= 0 {
			m, errM := strconv.Atoi(rest[:sep])
			n, errN := strconv.Atoi(rest[sep+1:])
			if errM != nil || errN != nil {
				return failed(name)
			}
			return CompleteBipartite(m, n)
		}
	}

	for _, f := range families {
		rest, ok := strings.CutPrefix(key, f.prefix)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(rest)
		if err != nil {
			return failed(name)
		}
		return f.build(n)
	}

	return failed(name)
}

// ValidateName reports whether name parses, without building anything.
func ValidateName(name string) error {
	_, err := Pattern(name)
	return err
}

// failed returns a Constructor that always reports ErrUnknownPattern.
func failed(name string) Constructor {
	return func(_ *core.Graph, _ builderConfig) error {
		return fmt.Errorf("%s(%q): %w", MethodNamed, name, ErrUnknownPattern)
	}
}

// Catalog lists a representative name for each supported family with a
// human description, in display order.
func Catalog() [][2]string {
	return [][2]string{
		{"triangle", "cycle on 3 vertices (alias c3)"},
		{"square", "cycle on 4 vertices (alias c4, default goal)"},
		{"c5", "cycle on N vertices, N ≥ 3"},
		{"k4", "complete graph on N vertices, N ≥ 2"},
		{"k2,3", "complete bipartite graph, both sides ≥ 1"},
		{"p4", "path on N vertices, N ≥ 2"},
		{"s4", "star with N vertices (hub + N-1 leaves)"},
		{"w5", "wheel: cycle on N-1 vertices plus a hub, N ≥ 4"},
	}
}
