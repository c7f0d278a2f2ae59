package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-planarity/lrplanar/builder"
	"github.com/go-planarity/lrplanar/core"
)

// ErrUnknownFixture is returned when --gen names something buildFixture
// does not recognize.
var ErrUnknownFixture = fmt.Errorf("planarcheck: unknown fixture")

// platonicByName maps the lowercase solid name to its builder.PlatonicName.
var platonicByName = map[string]builder.PlatonicName{
	"tetrahedron":  builder.Tetrahedron,
	"cube":         builder.Cube,
	"octahedron":   builder.Octahedron,
	"dodecahedron": builder.Dodecahedron,
	"icosahedron":  builder.Icosahedron,
}

// buildFixture builds one of the named built-in graphs for --gen. Names are
// case-insensitive; "k<n>" and "k<n>,<m>" follow standard graph-theory
// notation, everything else is "kind:arg" (e.g. "cycle:6", "platonic:cube").
func buildFixture(name string) (*core.Graph, error) {
	name = strings.ToLower(strings.TrimSpace(name))

	if kind, arg, ok := strings.Cut(name, ":"); ok {
		return buildFixtureKindArg(kind, arg)
	}
	if strings.Contains(name, ",") {
		return buildCompleteBipartite(name)
	}
	if strings.HasPrefix(name, "k") {
		return buildComplete(name)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFixture, name)
}

func buildFixtureKindArg(kind, arg string) (*core.Graph, error) {
	switch kind {
	case "cycle":
		n, err := parseFixtureInt(kind, arg)
		if err != nil {
			return nil, err
		}
		return builder.BuildGraph(nil, nil, builder.Cycle(n))
	case "path":
		n, err := parseFixtureInt(kind, arg)
		if err != nil {
			return nil, err
		}
		return builder.BuildGraph(nil, nil, builder.Path(n))
	case "star":
		n, err := parseFixtureInt(kind, arg)
		if err != nil {
			return nil, err
		}
		return builder.BuildGraph(nil, nil, builder.Star(n))
	case "wheel":
		n, err := parseFixtureInt(kind, arg)
		if err != nil {
			return nil, err
		}
		return builder.BuildGraph(nil, nil, builder.Wheel(n))
	case "grid":
		rows, cols, err := parseFixturePair(kind, arg)
		if err != nil {
			return nil, err
		}
		return builder.BuildGraph(nil, nil, builder.Grid(rows, cols))
	case "platonic":
		solid, ok := platonicByName[arg]
		if !ok {
			return nil, fmt.Errorf("%w: platonic:%s", ErrUnknownFixture, arg)
		}
		return builder.BuildGraph(nil, nil, builder.PlatonicSolid(solid, false))
	default:
		return nil, fmt.Errorf("%w: %s:%s", ErrUnknownFixture, kind, arg)
	}
}

func buildComplete(name string) (*core.Graph, error) {
	n, err := parseFixtureInt("k", strings.TrimPrefix(name, "k"))
	if err != nil {
		return nil, err
	}
	return builder.BuildGraph(nil, nil, builder.Complete(n))
}

func buildCompleteBipartite(name string) (*core.Graph, error) {
	rest := strings.TrimPrefix(name, "k")
	n1, n2, err := parseFixturePair("k", rest)
	if err != nil {
		return nil, err
	}
	return builder.BuildGraph(nil, nil, builder.CompleteBipartite(n1, n2))
}

func parseFixtureInt(kind, raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s:%s is not an integer", ErrUnknownFixture, kind, raw)
	}
	return n, nil
}

func parseFixturePair(kind, raw string) (int, int, error) {
	a, b, ok := strings.Cut(raw, ",")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %s expects \"a,b\", got %q", ErrUnknownFixture, kind, raw)
	}
	n1, err := parseFixtureInt(kind, a)
	if err != nil {
		return 0, 0, err
	}
	n2, err := parseFixtureInt(kind, b)
	if err != nil {
		return 0, 0, err
	}
	return n1, n2, nil
}
