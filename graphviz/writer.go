// Package graphviz renders nets as graphviz figures.
package graphviz

import (
	"fmt"
	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"
	"github.com/jt05610/pnet"
	"io"
)

var _ pnet.Flusher[*pnet.Net] = (*Writer)(nil)

type Writer struct {
	*Config
	g           *cgraph.Graph
	places      map[string]*cgraph.Node
	transitions map[string]*cgraph.Node
}

func (w *Writer) writePlace(i int, p *pnet.Place) error {
	name := fmt.Sprintf("p%d", i)
	node, err := w.g.CreateNode(name)
	if err != nil {
		return err
	}
	node.SetShape(cgraph.CircleShape)
	label := p.String()
	if p.Marking > 0 {
		label = fmt.Sprintf("%s (%d)", label, p.Marking)
	}
	if p.Marking == 1 {
		node.Set("peripheries", "2")
	}
	node.SetLabel(label)
	node.Set("fontname", string(w.Font))
	w.places[p.ID] = node
	return nil
}

func (w *Writer) writeTransition(i int, t *pnet.Transition) error {
	name := fmt.Sprintf("t%d", i)
	node, err := w.g.CreateNode(name)
	if err != nil {
		return err
	}
	node.SetShape(cgraph.BoxShape)
	node.SetLabel(t.String())
	node.Set("fontname", string(w.Font))
	w.transitions[t.ID] = node
	return nil
}

// node resolves an arc endpoint the way the net does, places first.
func (w *Writer) node(n *pnet.Net, id string) *cgraph.Node {
	found, ok := n.Node(id)
	if !ok {
		return nil
	}
	if found.Kind() == pnet.PlaceObject {
		return w.places[id]
	}
	return w.transitions[id]
}

func (w *Writer) writeArc(i int, n *pnet.Net, a *pnet.Arc) error {
	src := w.node(n, a.Src)
	dst := w.node(n, a.Dest)
	if src == nil || dst == nil {
		// dangling endpoints cannot be drawn
		return nil
	}
	name := fmt.Sprintf("a%d", i)
	_, err := w.g.CreateEdge(name, src, dst)
	if err != nil {
		return err
	}
	return nil
}

func (w *Writer) Flush(out io.Writer, n *pnet.Net) error {
	graph := graphviz.New()
	defer func() {
		_ = graph.Close()
	}()
	g, err := graph.Graph()
	if err != nil {
		return err
	}
	g.SetRankDir(cgraph.RankDir(w.RankDir))
	w.g = g
	for i, p := range n.Places {
		if err := w.writePlace(i, p); err != nil {
			return err
		}
	}
	for i, t := range n.Transitions {
		if err := w.writeTransition(i, t); err != nil {
			return err
		}
	}
	for i, a := range n.Arcs {
		if err := w.writeArc(i, n, a); err != nil {
			return err
		}
	}
	return graph.Render(w.g, graphviz.Format(w.Format), out)
}

type Font string

func (f Font) Or(other Font) Font {
	return f + "," + other
}

const (
	Helvetica Font = "Helvetica"
	Arial     Font = "Arial"
	SansSerif Font = "sans-serif"
	Serif     Font = "Serif"
	Times     Font = "Times"
)

type RankDir string

const (
	LeftToRight RankDir = "LR"
	RightToLeft RankDir = "RL"
	TopToBottom RankDir = "TB"
	BottomToTop RankDir = "BT"
)

type Format string

const (
	DOT Format = "dot"
	SVG Format = "svg"
	PNG Format = "png"
)

type Config struct {
	Name string
	Font
	RankDir
	Format
}

func New(config *Config) *Writer {
	if config.Name == "" {
		config.Name = "pnet"
	}
	if config.Format == "" {
		config.Format = DOT
	}
	return &Writer{
		Config:      config,
		places:      make(map[string]*cgraph.Node),
		transitions: make(map[string]*cgraph.Node),
	}
}
