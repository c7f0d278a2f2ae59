package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/go-planarity/lrplanar/core"
	"github.com/go-planarity/lrplanar/planar"
)

// ErrUnknownFormat is returned when --format names something other than
// "text" or "json".
var ErrUnknownFormat = errors.New("planarcheck: unknown input format")

// edgeDoc is the JSON input shape: a flat list of [from, to] pairs plus an
// optional directedness flag.
type edgeDoc struct {
	Directed bool       `json:"directed"`
	Edges    [][]string `json:"edges"`
}

func runCheck(cmd *cobra.Command, _ []string) error {
	runID := uuid.New()

	var g *core.Graph
	if fixture := viper.GetString("gen"); fixture != "" {
		built, err := buildFixture(fixture)
		if err != nil {
			return err
		}
		g = built
	} else {
		var in io.Reader = os.Stdin
		if path := viper.GetString("input"); path != "" {
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("planarcheck: opening %s: %w", path, err)
			}
			defer f.Close()
			in = f
		}

		built, err := parseGraph(in, viper.GetString("format"))
		if err != nil {
			return err
		}
		g = built
	}

	start := time.Now()
	result, err := runWithTimeout(g, viper.GetDuration("timeout"))
	elapsed := time.Since(start)
	if err != nil {
		return fmt.Errorf("planarcheck[%s]: %w", runID, err)
	}

	sizes, err := planar.ComponentSizes(g)
	if err != nil {
		return fmt.Errorf("planarcheck[%s]: component diagnostics: %w", runID, err)
	}

	return report(cmd, runID, result, elapsed, g, sizes)
}

// runWithTimeout runs the predicate on a goroutine and races it against ctx,
// since Planar itself accepts no context.Context: the "callers wrap the
// predicate externally" pattern from the algorithm's concurrency design.
func runWithTimeout(g *core.Graph, timeout time.Duration) (bool, error) {
	if timeout <= 0 {
		return planar.Planar(planar.FromCore(g)), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	done := make(chan bool, 1)
	go func() { done <- planar.Planar(planar.FromCore(g)) }()

	select {
	case result := <-done:
		return result, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

func report(cmd *cobra.Command, runID uuid.UUID, result bool, elapsed time.Duration, g *core.Graph, sizes []int) error {
	out := cmd.OutOrStdout()
	maxDegreeID, maxDegree := g.MaxDegree()

	if viper.GetBool("json") {
		payload := struct {
			RunID       string  `json:"run_id"`
			Planar      bool    `json:"planar"`
			Vertices    int     `json:"vertices"`
			Edges       int     `json:"edges"`
			Components  []int   `json:"components"`
			MaxDegreeID string  `json:"max_degree_vertex"`
			MaxDegree   int     `json:"max_degree"`
			ElapsedMs   float64 `json:"elapsed_ms"`
		}{
			RunID:       runID.String(),
			Planar:      result,
			Vertices:    g.VertexCount(),
			Edges:       g.EdgeCount(),
			Components:  sizes,
			MaxDegreeID: maxDegreeID,
			MaxDegree:   maxDegree,
			ElapsedMs:   float64(elapsed.Microseconds()) / 1000.0,
		}
		enc := json.NewEncoder(out)
		return enc.Encode(payload)
	}

	fmt.Fprintf(out, "planar: %t\n", result)
	fmt.Fprintf(out, "run_id: %s\n", runID)
	fmt.Fprintf(out, "vertices: %d  edges: %d  components: %d\n", g.VertexCount(), g.EdgeCount(), len(sizes))
	fmt.Fprintf(out, "max_degree: %s (%d)\n", maxDegreeID, maxDegree)
	fmt.Fprintf(out, "elapsed: %s\n", elapsed)
	return nil
}

// parseGraph builds a *core.Graph from r according to format ("text" or
// "json"). The text format is one undirected edge per line: "u v",
// whitespace-separated, blank lines and "#"-prefixed lines ignored.
func parseGraph(r io.Reader, format string) (*core.Graph, error) {
	switch format {
	case "", "text":
		return parseTextEdges(r)
	case "json":
		return parseJSONEdges(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func parseTextEdges(r io.Reader) (*core.Graph, error) {
	g := core.NewGraph()
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("planarcheck: line %d: expected \"u v\", got %q", lineNo, line)
		}
		if _, err := g.AddEdge(fields[0], fields[1], 0); err != nil {
			return nil, fmt.Errorf("planarcheck: line %d: %w", lineNo, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("planarcheck: reading input: %w", err)
	}
	return g, nil
}

func parseJSONEdges(r io.Reader) (*core.Graph, error) {
	var doc edgeDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("planarcheck: decoding json: %w", err)
	}

	var opts []core.GraphOption
	if doc.Directed {
		opts = append(opts, core.WithDirected(true))
	}
	g := core.NewGraph(opts...)
	for i, pair := range doc.Edges {
		if len(pair) != 2 {
			return nil, fmt.Errorf("planarcheck: edges[%d]: expected [from, to], got %v", i, pair)
		}
		if _, err := g.AddEdge(pair[0], pair[1], 0); err != nil {
			return nil, fmt.Errorf("planarcheck: edges[%d]: %w", i, err)
		}
	}
	return g, nil
}
