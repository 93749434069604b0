package pnet

var _ Object = (*Transition)(nil)
var _ Node = (*Transition)(nil)

// Transition represents a transition. Transitions carry no marking.
type Transition struct {
	ID string `json:"_id"`
	// Name is the display name of the transition
	Name string `json:"name,omitempty"`
}

// NewTransition creates a new transition.
func NewTransition(id, name string) *Transition {
	return &Transition{
		ID:   id,
		Name: name,
	}
}

func (t *Transition) IsNode() {}

func (t *Transition) Kind() Kind { return TransitionObject }

func (t *Transition) Identifier() string { return t.ID }

func (t *Transition) String() string {
	if t.Name == "" {
		return t.ID
	}
	return t.Name
}

func (t *Transition) Document() Document {
	return Document{
		"_id":  t.ID,
		"name": t.Name,
	}
}
