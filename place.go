package pnet

var _ Object = (*Place)(nil)
var _ Node = (*Place)(nil)

// Place represents a place.
type Place struct {
	ID string `json:"_id"`
	// Name is the display name of the place
	Name string `json:"name,omitempty"`
	// Marking is the number of tokens initially assigned to this place
	Marking int `json:"marking"`
}

// NewPlace creates a new place.
func NewPlace(id, name string, marking int) *Place {
	return &Place{
		ID:      id,
		Name:    name,
		Marking: marking,
	}
}

func (p *Place) IsNode() {}

func (p *Place) Kind() Kind { return PlaceObject }

func (p *Place) Identifier() string { return p.ID }

func (p *Place) String() string {
	if p.Name == "" {
		return p.ID
	}
	return p.Name
}

func (p *Place) Document() Document {
	return Document{
		"_id":     p.ID,
		"name":    p.Name,
		"marking": p.Marking,
	}
}
