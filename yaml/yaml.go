// Package yaml loads Petri nets from YAML net files.
package yaml

import (
	"context"
	"errors"
	"fmt"
	"github.com/jt05610/pnet"
	"gopkg.in/yaml.v3"
	"io"
)

var _ pnet.Service = (*Service)(nil)

var ErrMissingField = errors.New("missing field")

// Place is the YAML form of a place.
type Place struct {
	ID      string `yaml:"id"`
	Name    string `yaml:"name,omitempty"`
	Marking int    `yaml:"marking,omitempty"`
}

// Transition is the YAML form of a transition.
type Transition struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name,omitempty"`
}

// Arc is the YAML form of an arc.
type Arc struct {
	ID   string `yaml:"id"`
	Src  string `yaml:"src"`
	Dest string `yaml:"dest"`
}

// File is a whole net file. Places, transitions, and arcs are lists
// so the model keeps the file's order.
type File struct {
	Name        string        `yaml:"name,omitempty"`
	Places      []*Place      `yaml:"places"`
	Transitions []*Transition `yaml:"transitions"`
	Arcs        []*Arc        `yaml:"arcs"`
}

// Net builds the model from the decoded file.
func (f *File) Net() (*pnet.Net, error) {
	net := pnet.NewNet(f.Name)
	for _, p := range f.Places {
		if p.ID == "" {
			return nil, fmt.Errorf("place: %w id", ErrMissingField)
		}
		if err := net.AddPlace(pnet.NewPlace(p.ID, p.Name, p.Marking)); err != nil {
			return nil, err
		}
	}
	for _, t := range f.Transitions {
		if t.ID == "" {
			return nil, fmt.Errorf("transition: %w id", ErrMissingField)
		}
		if err := net.AddTransition(pnet.NewTransition(t.ID, t.Name)); err != nil {
			return nil, err
		}
	}
	for _, a := range f.Arcs {
		if a.ID == "" {
			return nil, fmt.Errorf("arc: %w id", ErrMissingField)
		}
		if a.Src == "" {
			return nil, fmt.Errorf("arc %s: %w src", a.ID, ErrMissingField)
		}
		if a.Dest == "" {
			return nil, fmt.Errorf("arc %s: %w dest", a.ID, ErrMissingField)
		}
		net.AddArc(pnet.NewArc(a.ID, a.Src, a.Dest))
	}
	return net, nil
}

// Service loads nets from YAML net files.
type Service struct{}

func (s *Service) Load(_ context.Context, r io.Reader) (*pnet.Net, error) {
	var f File
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, err
	}
	return f.Net()
}

func (s *Service) Format() pnet.Format { return pnet.YAML }
