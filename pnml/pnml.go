// Package pnml loads Petri nets from PNML documents.
//
// Producing tools disagree on namespaces and nesting, so recognition
// works on resolved local names over a flat scan of the whole element
// tree rather than on a fixed schema.
package pnml

import (
	"context"
	"errors"
	"fmt"
	"github.com/jt05610/pnet"
	"github.com/jt05610/pnet/xmltree"
	"io"
	"strconv"
	"strings"
)

var _ pnet.Service = (*Service)(nil)

var (
	ErrMissingAttr = errors.New("missing attribute")
	ErrBadMarking  = errors.New("malformed marking")
)

// Service loads nets from PNML documents.
type Service struct{}

func (s *Service) Load(_ context.Context, r io.Reader) (*pnet.Net, error) {
	root, err := xmltree.Parse(r)
	if err != nil {
		return nil, err
	}
	return s.net(root)
}

func (s *Service) Format() pnet.Format { return pnet.PNML }

func attr(el *xmltree.Node, kind, name string) (string, error) {
	v, ok := el.Attr(name)
	if !ok {
		return "", fmt.Errorf("%s element: %w %s", kind, ErrMissingAttr, name)
	}
	return v, nil
}

// name returns the display name of a place, taken from the text label
// inside the element's name wrapper.
func (s *Service) name(el *xmltree.Node) string {
	wrapper, ok := el.FindTag("name")
	if !ok {
		return ""
	}
	text, ok := wrapper.FindTag("text")
	if !ok {
		return ""
	}
	return text.Text()
}

// marking returns the initial marking of a place. The marking lives
// in a direct child whose local name contains "initialmarking" in any
// casing; the first such child wins and an absent child or label
// means 0.
func (s *Service) marking(el *xmltree.Node, id string) (int, error) {
	for _, child := range el.Children {
		local := strings.ToLower(xmltree.LocalName(child.Tag()))
		if !strings.Contains(local, "initialmarking") {
			continue
		}
		text, ok := child.FindTag("text")
		if !ok {
			return 0, nil
		}
		v, err := strconv.Atoi(text.Text())
		if err != nil {
			return 0, fmt.Errorf("place %s: %w %q", id, ErrBadMarking, text.Text())
		}
		return v, nil
	}
	return 0, nil
}

func (s *Service) place(el *xmltree.Node) (*pnet.Place, error) {
	id, err := attr(el, "place", "id")
	if err != nil {
		return nil, err
	}
	marking, err := s.marking(el, id)
	if err != nil {
		return nil, err
	}
	return pnet.NewPlace(id, s.name(el), marking), nil
}

// transition builds a transition. Unlike places, the display name is
// the last text label found anywhere below the element, wrapped or
// not.
func (s *Service) transition(el *xmltree.Node) (*pnet.Transition, error) {
	id, err := attr(el, "transition", "id")
	if err != nil {
		return nil, err
	}
	name := ""
	el.Iter(func(c *xmltree.Node) bool {
		if xmltree.LocalName(c.Tag()) == "text" {
			name = c.Text()
		}
		return true
	})
	return pnet.NewTransition(id, name), nil
}

func (s *Service) arc(el *xmltree.Node) (*pnet.Arc, error) {
	id, err := attr(el, "arc", "id")
	if err != nil {
		return nil, err
	}
	src, err := attr(el, "arc", "source")
	if err != nil {
		return nil, err
	}
	dest, err := attr(el, "arc", "target")
	if err != nil {
		return nil, err
	}
	return pnet.NewArc(id, src, dest), nil
}

// net scans every descendant of root in document order and builds the
// model. Declarations may appear at any depth and in any relative
// order. The first fatal error aborts the scan and no net is
// returned.
func (s *Service) net(root *xmltree.Node) (*pnet.Net, error) {
	net := pnet.NewNet("")
	var err error
	root.Iter(func(el *xmltree.Node) bool {
		switch xmltree.LocalName(el.Tag()) {
		case "net":
			if net.Name == "" {
				if id, ok := el.Attr("id"); ok {
					net.Name = id
				}
			}
		case "place":
			var p *pnet.Place
			if p, err = s.place(el); err != nil {
				return false
			}
			if err = net.AddPlace(p); err != nil {
				return false
			}
		case "transition":
			var t *pnet.Transition
			if t, err = s.transition(el); err != nil {
				return false
			}
			if err = net.AddTransition(t); err != nil {
				return false
			}
		case "arc":
			var a *pnet.Arc
			if a, err = s.arc(el); err != nil {
				return false
			}
			net.AddArc(a)
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	return net, nil
}
