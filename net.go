package pnet

import (
	"errors"
	"fmt"
)

var _ Object = (*Net)(nil)

var (
	ErrDuplicate = errors.New("duplicate")
	ErrNotFound  = errors.New("not found")
)

// Net is the model built from one parsed document. Places and
// transitions are looked up by identifier and the two mappings are
// independent, so a place and a transition may share an identifier.
// Arcs keep document order.
type Net struct {
	ID          string        `json:"_id"`
	Name        string        `json:"name,omitempty"`
	Places      []*Place      `json:"places"`
	Transitions []*Transition `json:"transitions"`
	Arcs        []*Arc        `json:"arcs"`
	places      map[string]*Place
	transitions map[string]*Transition
}

// NewNet creates an empty net.
func NewNet(name string) *Net {
	return &Net{
		ID:          ID(),
		Name:        name,
		Places:      make([]*Place, 0),
		Transitions: make([]*Transition, 0),
		Arcs:        make([]*Arc, 0),
		places:      make(map[string]*Place),
		transitions: make(map[string]*Transition),
	}
}

func (n *Net) WithPlaces(places ...*Place) *Net {
	for _, p := range places {
		if err := n.AddPlace(p); err != nil {
			panic(err)
		}
	}
	return n
}

func (n *Net) WithTransitions(transitions ...*Transition) *Net {
	for _, t := range transitions {
		if err := n.AddTransition(t); err != nil {
			panic(err)
		}
	}
	return n
}

func (n *Net) WithArcs(arcs ...*Arc) *Net {
	for _, a := range arcs {
		n.AddArc(a)
	}
	return n
}

// AddPlace adds p to the net. Place identifiers are unique within a
// net, so adding a place whose identifier is already present fails.
func (n *Net) AddPlace(p *Place) error {
	if _, ok := n.places[p.ID]; ok {
		return fmt.Errorf("%w place id: %s", ErrDuplicate, p.ID)
	}
	n.places[p.ID] = p
	n.Places = append(n.Places, p)
	return nil
}

// AddTransition adds t to the net. Transition identifiers are unique
// within a net, so adding a transition whose identifier is already
// present fails.
func (n *Net) AddTransition(t *Transition) error {
	if _, ok := n.transitions[t.ID]; ok {
		return fmt.Errorf("%w transition id: %s", ErrDuplicate, t.ID)
	}
	n.transitions[t.ID] = t
	n.Transitions = append(n.Transitions, t)
	return nil
}

// AddArc appends a to the net's arc sequence. Arcs are not
// deduplicated and their endpoints are not resolved here.
func (n *Net) AddArc(a *Arc) {
	n.Arcs = append(n.Arcs, a)
}

// Place returns the place with the given identifier.
func (n *Net) Place(id string) (*Place, bool) {
	p, ok := n.places[id]
	return p, ok
}

// Transition returns the transition with the given identifier.
func (n *Net) Transition(id string) (*Transition, bool) {
	t, ok := n.transitions[id]
	return t, ok
}

// Node returns the place or transition with the given identifier.
// Places are searched first.
func (n *Net) Node(id string) (Node, bool) {
	if p, ok := n.places[id]; ok {
		return p, true
	}
	if t, ok := n.transitions[id]; ok {
		return t, true
	}
	return nil, false
}

// Marked lists the places whose initial marking is exactly 1, in
// insertion order.
func (n *Net) Marked() []*Place {
	marked := make([]*Place, 0)
	for _, p := range n.Places {
		if p.Marking == 1 {
			marked = append(marked, p)
		}
	}
	return marked
}

func (n *Net) Kind() Kind { return NetObject }

func (n *Net) Identifier() string { return n.ID }

func (n *Net) String() string { return n.Name }

func (n *Net) Document() Document {
	places := make([]Document, len(n.Places))
	for i, p := range n.Places {
		places[i] = p.Document()
	}
	transitions := make([]Document, len(n.Transitions))
	for i, t := range n.Transitions {
		transitions[i] = t.Document()
	}
	arcs := make([]Document, len(n.Arcs))
	for i, a := range n.Arcs {
		arcs[i] = a.Document()
	}
	return Document{
		"_id":         n.ID,
		"name":        n.Name,
		"places":      places,
		"transitions": transitions,
		"arcs":        arcs,
	}
}

// Index rebuilds the identifier lookups from the exported slices.
// Nets decoded from a stored document need this before Place,
// Transition, or Node lookups work.
func (n *Net) Index() error {
	n.places = make(map[string]*Place, len(n.Places))
	n.transitions = make(map[string]*Transition, len(n.Transitions))
	for _, p := range n.Places {
		if _, ok := n.places[p.ID]; ok {
			return fmt.Errorf("%w place id: %s", ErrDuplicate, p.ID)
		}
		n.places[p.ID] = p
	}
	for _, t := range n.Transitions {
		if _, ok := n.transitions[t.ID]; ok {
			return fmt.Errorf("%w transition id: %s", ErrDuplicate, t.ID)
		}
		n.transitions[t.ID] = t
	}
	return nil
}
