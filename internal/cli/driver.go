// Package cli holds the pieces shared by the two driver binaries: parsing
// of the fixed stdin graph format, stdout formatting of a distance vector,
// and the zap-backed trace sink.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/katalvlaran/bmssp/bmssp"
)

// Sentinel errors returned by ReadGraph.
var (
	// ErrBadHeader indicates the leading "n m" line could not be read.
	ErrBadHeader = errors.New("cli: malformed header, want \"n m\"")

	// ErrBadEdge indicates an edge line could not be read as "u v w".
	ErrBadEdge = errors.New("cli: malformed edge line, want \"u v w\"")

	// ErrBadSource indicates the trailing source line could not be read.
	ErrBadSource = errors.New("cli: malformed source line")
)

// Separator is the line printed between the timing header and the distance
// listing.
const Separator = "--------------------"

// ReadGraph parses the driver input format: "n m" on the first line, m
// lines of "u v w", then the source node id. Edges with an endpoint
// outside [0, n) are silently dropped; whatever source is supplied is
// passed through untouched, the solvers validate it.
func ReadGraph(r io.Reader) (n int, adj [][]bmssp.Edge, source int, err error) {
	br := bufio.NewReader(r)

	var m int
	if _, err = fmt.Fscan(br, &n, &m); err != nil {
		return 0, nil, 0, fmt.Errorf("%w: %v", ErrBadHeader, err)
	}

	adj = make([][]bmssp.Edge, n)
	for i := 0; i < m; i++ {
		var u, v int
		var w float64
		if _, err = fmt.Fscan(br, &u, &v, &w); err != nil {
			return 0, nil, 0, fmt.Errorf("%w: edge %d: %v", ErrBadEdge, i, err)
		}
		if u < 0 || u >= n || v < 0 || v >= n {
			continue
		}
		adj[u] = append(adj[u], bmssp.Edge{To: v, Weight: w})
	}

	if _, err = fmt.Fscan(br, &source); err != nil {
		return 0, nil, 0, fmt.Errorf("%w: %v", ErrBadSource, err)
	}

	return n, adj, source, nil
}

// FormatDistance renders one distance value: the literal INF for
// unreachable nodes, shortest round-trippable decimal otherwise.
func FormatDistance(d float64) string {
	if math.IsInf(d, 1) {
		return "INF"
	}

	return strconv.FormatFloat(d, 'g', -1, 64)
}

// WriteDistances prints one "Node i: <value>" line per node.
func WriteDistances(w io.Writer, dist []float64) error {
	bw := bufio.NewWriter(w)
	for i, d := range dist {
		if _, err := fmt.Fprintf(bw, "Node %d: %s\n", i, FormatDistance(d)); err != nil {
			return err
		}
	}

	return bw.Flush()
}
