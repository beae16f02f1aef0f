// Package astdump renders the parse tree pl0c's parser walks while
// compiling, as XML, for `pl0c parse --ast`. The parser itself has no
// persistent AST — edges drive bytecode emission directly — so a
// Recorder attaches as a parser.Tracer and rebuilds the tree from the
// Enter/Exit calls the parser already makes at every subgraph edge.
package astdump

import (
	"fmt"
	"io"
	"strings"

	"github.com/cwbudde/pl0c/internal/parser"
	"github.com/cwbudde/pl0c/internal/token"
)

// node is one subgraph entered during the parse, with its pos and any
// nested subgraphs entered while inside it.
type node struct {
	name     string
	pos      token.Position
	children []*node
}

// Recorder implements parser.Tracer, rebuilding a parse tree from
// Enter/Exit notifications.
type Recorder struct {
	root  *node
	stack []*node
}

// NewRecorder returns a Recorder ready to attach to a parser via
// SetTracer.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Enter pushes a new node for nt, nested under whichever node is
// currently open.
func (r *Recorder) Enter(nt parser.NonTerminal, pos token.Position) {
	n := &node{name: nt.String(), pos: pos}
	if len(r.stack) == 0 {
		r.root = n
	} else {
		top := r.stack[len(r.stack)-1]
		top.children = append(top.children, n)
	}
	r.stack = append(r.stack, n)
}

// Exit pops the node most recently entered. nt is unused beyond
// documenting which non-terminal is closing; the stack is strictly
// LIFO, matching the parser's own recursion.
func (r *Recorder) Exit(nt parser.NonTerminal) {
	if len(r.stack) == 0 {
		return
	}
	r.stack = r.stack[:len(r.stack)-1]
}

// WriteXML renders the recorded tree as one element per subgraph,
// annotated with the line/col of the token current when it was
// entered. Terminal tokens are not recorded, so no terminal elements
// are written and no text content needs entity escaping.
func (r *Recorder) WriteXML(w io.Writer) error {
	if r.root == nil {
		return nil
	}
	return writeNode(w, r.root, 0)
}

func writeNode(w io.Writer, n *node, depth int) error {
	indent := strings.Repeat("  ", depth)
	if _, err := fmt.Fprintf(w, "%s<%s line='%d' col='%d'>\n", indent, n.name, n.pos.Line, n.pos.Column); err != nil {
		return err
	}
	for _, c := range n.children {
		if err := writeNode(w, c, depth+1); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%s</%s>\n", indent, n.name)
	return err
}
