// Package analysis computes descriptive statistics over the
// structure of a net. It never walks the graph, so it stays usable on
// nets whose check produced findings.
package analysis

import (
	"github.com/jt05610/pnet"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

type Net struct {
	*pnet.Net
}

// Degree is the number of arcs entering and leaving one node.
type Degree struct {
	ID  string `json:"id"`
	In  int    `json:"in"`
	Out int    `json:"out"`
}

type nodeKey struct {
	kind pnet.Kind
	id   string
}

// Degrees tallies arc endpoints per node, places first, in insertion
// order. Endpoints that resolve to no node tally nowhere.
func (n *Net) Degrees() []Degree {
	in := make(map[nodeKey]int)
	out := make(map[nodeKey]int)
	for _, a := range n.Arcs {
		if node, ok := n.Node(a.Src); ok {
			out[nodeKey{node.Kind(), node.Identifier()}]++
		}
		if node, ok := n.Node(a.Dest); ok {
			in[nodeKey{node.Kind(), node.Identifier()}]++
		}
	}
	degrees := make([]Degree, 0, len(n.Places)+len(n.Transitions))
	for _, p := range n.Places {
		k := nodeKey{pnet.PlaceObject, p.ID}
		degrees = append(degrees, Degree{ID: p.ID, In: in[k], Out: out[k]})
	}
	for _, t := range n.Transitions {
		k := nodeKey{pnet.TransitionObject, t.ID}
		degrees = append(degrees, Degree{ID: t.ID, In: in[k], Out: out[k]})
	}
	return degrees
}

// Stats summarizes the structure of a net.
type Stats struct {
	Nodes      int     `json:"nodes"`
	Arcs       int     `json:"arcs"`
	Tokens     int     `json:"tokens"`
	Isolated   int     `json:"isolated"`
	MeanDegree float64 `json:"meanDegree"`
	MaxDegree  float64 `json:"maxDegree"`
}

func (n *Net) Stats() Stats {
	degrees := n.Degrees()
	total := make([]float64, len(degrees))
	isolated := 0
	for i, d := range degrees {
		total[i] = float64(d.In + d.Out)
		if d.In+d.Out == 0 {
			isolated++
		}
	}
	tokens := 0
	for _, p := range n.Places {
		tokens += p.Marking
	}
	s := Stats{
		Nodes:    len(degrees),
		Arcs:     len(n.Arcs),
		Tokens:   tokens,
		Isolated: isolated,
	}
	if len(total) > 0 {
		s.MeanDegree = stat.Mean(total, nil)
		s.MaxDegree = floats.Max(total)
	}
	return s
}
