package pnet

import "fmt"

var _ Object = (*Report)(nil)

// Severity ranks a finding.
type Severity int

const (
	// Error findings are structural. The net references nodes that do
	// not exist.
	Error Severity = iota
	// Warning findings are semantic. The net is still usable despite
	// them.
	Warning
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	}
	return "unknown"
}

// Finding is a single integrity problem tied to the entity that
// caused it.
type Finding struct {
	Severity Severity `json:"severity"`
	// Entity is the identifier of the offending arc or place.
	Entity  string `json:"entity"`
	Message string `json:"message"`
}

func (f *Finding) String() string { return f.Message }

// Report holds the findings of one integrity check of a net. Net and
// NetID record which net was checked.
type Report struct {
	ID       string     `json:"_id"`
	Net      string     `json:"net,omitempty"`
	NetID    string     `json:"netId,omitempty"`
	Errors   []*Finding `json:"errors"`
	Warnings []*Finding `json:"warnings"`
}

// Ok reports whether the check produced no findings at all.
func (r *Report) Ok() bool {
	return len(r.Errors) == 0 && len(r.Warnings) == 0
}

func (r *Report) Kind() Kind { return ReportObject }

func (r *Report) Identifier() string { return r.ID }

func (r *Report) String() string {
	return fmt.Sprintf("%d errors, %d warnings", len(r.Errors), len(r.Warnings))
}

func (r *Report) Document() Document {
	return Document{
		"_id":      r.ID,
		"net":      r.Net,
		"netId":    r.NetID,
		"errors":   r.Errors,
		"warnings": r.Warnings,
	}
}

// Check validates the referential and semantic integrity of the net.
// Arcs are checked first, in insertion order, for endpoints that
// resolve to neither a place nor a transition; places are checked
// second, in insertion order, for markings other than 0 or 1. Check
// never modifies the net, so checking the same net twice yields the
// same findings.
func (n *Net) Check() *Report {
	r := &Report{
		ID:       ID(),
		Net:      n.Name,
		NetID:    n.ID,
		Errors:   make([]*Finding, 0),
		Warnings: make([]*Finding, 0),
	}
	for _, a := range n.Arcs {
		if _, ok := n.Node(a.Src); !ok {
			r.Errors = append(r.Errors, &Finding{
				Severity: Error,
				Entity:   a.ID,
				Message:  fmt.Sprintf("arc %s has unknown source %s", a.ID, a.Src),
			})
		}
		if _, ok := n.Node(a.Dest); !ok {
			r.Errors = append(r.Errors, &Finding{
				Severity: Error,
				Entity:   a.ID,
				Message:  fmt.Sprintf("arc %s has unknown target %s", a.ID, a.Dest),
			})
		}
	}
	for _, p := range n.Places {
		if p.Marking != 0 && p.Marking != 1 {
			r.Warnings = append(r.Warnings, &Finding{
				Severity: Warning,
				Entity:   p.ID,
				Message:  fmt.Sprintf("place %s has marking %d (not 0/1)", p.ID, p.Marking),
			})
		}
	}
	return r
}
