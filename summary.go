package pnet

// Summary is the counts overview of a net.
type Summary struct {
	Places      int `json:"places"`
	Transitions int `json:"transitions"`
	Arcs        int `json:"arcs"`
}

// Summarize counts the places, transitions, and arcs of the net.
func (n *Net) Summarize() Summary {
	return Summary{
		Places:      len(n.Places),
		Transitions: len(n.Transitions),
		Arcs:        len(n.Arcs),
	}
}
