package treefmt

import (
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/arbor/tree"
)

// Printer writes trees as box-drawing text, one node per line in pre-order.
type Printer struct {
	cfg   Config
	edges *color.Color
	w     *errWriter
}

// NewPrinter creates a printer. A nil config selects the defaults.
func NewPrinter(cfg *Config) *Printer {
	p := &Printer{cfg: cfg.normalized(), edges: color.New(color.FgBlue)}
	if p.cfg.Color {
		p.edges.EnableColor()
	} else {
		p.edges.DisableColor()
	}
	return p
}

// Print writes the tree rooted at root to w.
func Print(w io.Writer, root tree.VirtualAccessor, cfg *Config) error {
	return NewPrinter(cfg).Print(w, root)
}

// Sprint returns the tree rooted at root formatted without colors.
func Sprint(root tree.VirtualAccessor, cfg *Config) string {
	c := cfg.normalized()
	c.Color = false
	var sb strings.Builder
	_ = Print(&sb, root, &c)
	return sb.String()
}

// Print writes the tree rooted at root to w. Nothing is written for an
// invalid root.
func (p *Printer) Print(w io.Writer, root tree.VirtualAccessor) error {
	if root == nil || !root.Valid() {
		return nil
	}
	p.w = &errWriter{w: w}
	k := p.cfg.Indent
	// depths of ancestors whose right child is still to come
	var pending []int
	for n, depth := range tree.Walk(root, tree.PreOrder, tree.Left) {
		col := 0
		for _, d := range pending {
			p.pad(&col, k*d)
			if d != depth-1 {
				p.edge("│")
				col++
			}
		}
		if depth > 0 {
			p.pad(&col, k*(depth-1))
			switch {
			case n.IsSide(tree.Right):
				p.edge("└" + strings.Repeat("─", k-1))
				pending = pending[:len(pending)-1]
			case len(pending) > 0 && pending[len(pending)-1] == depth-1:
				p.edge("┝" + strings.Repeat("━", k-1))
			default:
				p.edge("┕" + strings.Repeat("━", k-1))
			}
		}
		p.w.WriteString(truncate(n.Label(), p.cfg.MaxLabelWidth, p.cfg.Context))
		p.w.WriteString("\n")
		if n.HasChild(tree.Right) {
			pending = append(pending, depth)
		}
	}
	if p.w.err != nil {
		tracer().Errorf("tree format: %s", p.w.err.Error())
	}
	return p.w.err
}

func (p *Printer) pad(col *int, to int) {
	if *col < to {
		p.w.WriteString(strings.Repeat(" ", to-*col))
		*col = to
	}
}

func (p *Printer) edge(s string) {
	if p.w.err != nil {
		return
	}
	_, p.w.err = p.edges.Fprint(p.w.w, s)
}

// errWriter remembers the first write error and drops all output after it.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) WriteString(s string) {
	if ew.err == nil {
		_, ew.err = io.WriteString(ew.w, s)
	}
}
