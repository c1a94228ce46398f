package ordmap

/*
BSD 3-Clause License

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// ConsoleDump is a formatter that renders the node structure of a map to a
// console, one node per line, indented by tree depth. Red and black nodes
// are visualized with colors (for debugging purposes).
type ConsoleDump struct {
	redNode   *color.Color
	blackNode *color.Color
	linewidth int
}

// NewConsoleDump creates a dump formatter with the default palette.
//
// If stdout is an interactive terminal, lines are clipped to the terminal's
// width; otherwise a default width applies.
func NewConsoleDump() *ConsoleDump {
	return &ConsoleDump{
		redNode:   color.New(color.FgRed),
		blackNode: color.New(color.Faint),
		linewidth: linewidthFromTerminal(),
	}
}

// Print renders the node structure of m to w. A nil w means stdout.
func Print[K, V any](dump *ConsoleDump, m *Map[K, V], w io.Writer) {
	if dump == nil {
		dump = NewConsoleDump()
	}
	if w == nil {
		w = os.Stdout
	}
	if m == nil || m.IsEmpty() {
		io.WriteString(w, "· (empty)\n")
		return
	}
	m.tree.EachNode(func(key K, value V, isRed bool, depth int) bool {
		line := fmt.Sprintf("%s%v = %v", strings.Repeat("  ", depth), key, value)
		if len(line) > dump.linewidth {
			line = line[:dump.linewidth-1] + "…"
		}
		var err error
		if isRed {
			_, err = dump.redNode.Fprintln(w, line)
		} else {
			_, err = dump.blackNode.Fprintln(w, line)
		}
		if err != nil {
			T().P("format", "console").Errorf("map dump: %s", err.Error())
			return false
		}
		return true
	})
}

// linewidthFromTerminal checks whether stdout is a terminal, and if so reads
// the terminal's width to clip dump lines accordingly.
func linewidthFromTerminal() int {
	linewidth := 65
	if term.IsTerminal(0) {
		w, _, err := term.GetSize(0)
		if err == nil && w > 10 {
			linewidth = w
		}
	}
	T().P("format", "console").Debugf("setting dump line length to %d", linewidth)
	return linewidth
}
