package pnet

import (
	"errors"
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

var ErrNotBool = errors.New("selector must evaluate to a boolean")

// Selector filters places with a compiled expression. The expression
// sees the place as id, name, and marking.
type Selector struct {
	program *vm.Program
}

// NewSelector compiles source into a place selector.
func NewSelector(source string) (*Selector, error) {
	program, err := expr.Compile(source)
	if err != nil {
		return nil, err
	}
	return &Selector{program: program}, nil
}

func (s *Selector) env(p *Place) map[string]interface{} {
	return map[string]interface{}{
		"id":      p.ID,
		"name":    p.Name,
		"marking": p.Marking,
	}
}

// Match runs the selector against one place.
func (s *Selector) Match(p *Place) (bool, error) {
	ret, err := expr.Run(s.program, s.env(p))
	if err != nil {
		return false, err
	}
	ok, isBool := ret.(bool)
	if !isBool {
		return false, ErrNotBool
	}
	return ok, nil
}

// SelectPlaces returns the places matching the selector, in insertion
// order.
func (n *Net) SelectPlaces(s *Selector) ([]*Place, error) {
	matched := make([]*Place, 0)
	for _, p := range n.Places {
		ok, err := s.Match(p)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, p)
		}
	}
	return matched, nil
}
