package pnet

var _ Object = (*Arc)(nil)

// Arc is a directed connection between a place and a transition. Src
// and Dest are free-text identifiers when the arc is constructed;
// whether they resolve to a node of the net is Check's concern.
type Arc struct {
	ID string `json:"_id"`
	// Src is the identifier of the source node of the arc.
	Src string `json:"src"`
	// Dest is the identifier of the destination node of the arc.
	Dest string `json:"dest"`
}

// NewArc creates a new arc.
func NewArc(id, src, dest string) *Arc {
	return &Arc{
		ID:   id,
		Src:  src,
		Dest: dest,
	}
}

func (a *Arc) Kind() Kind { return ArcObject }

func (a *Arc) Identifier() string { return a.ID }

func (a *Arc) String() string {
	return a.Src + " -> " + a.Dest
}

func (a *Arc) Document() Document {
	return Document{
		"_id":  a.ID,
		"src":  a.Src,
		"dest": a.Dest,
	}
}
