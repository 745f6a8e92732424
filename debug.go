package sapling

import (
	"fmt"
	"os"
	"time"
)

// globalDebug mirrors the most recently set Scene debug flag so that camera
// and node operations (which lack a Scene pointer) can check it cheaply.
// Only valid with a single Scene; multiple Scenes with differing debug
// modes will reflect whichever called SetDebugMode last.
var globalDebug bool

// debugLogf prints a line to stderr when debug mode is on.
func debugLogf(format string, args ...any) {
	if !globalDebug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[sapling] "+format+"\n", args...)
}

// debugStats holds per-frame timing. Only populated in debug mode.
type debugStats struct {
	transformTime time.Duration
	nodeTime      time.Duration
	cameraTime    time.Duration
	nodeCount     int
}

// debugLog prints frame timing to stderr.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	total := stats.transformTime + stats.nodeTime + stats.cameraTime
	_, _ = fmt.Fprintf(os.Stderr,
		"[sapling] transforms: %v | nodes: %v (%d) | cameras: %v | total: %v\n",
		stats.transformTime, stats.nodeTime, stats.nodeCount, stats.cameraTime, total)
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("sapling debug: %s on disposed node %q (ID was %d)", op, n.Name, n.ID))
	}
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[sapling] warning: tree depth %d exceeds %d (node %q)\n",
			depth, debugMaxTreeDepth, n.Name)
	}
}
