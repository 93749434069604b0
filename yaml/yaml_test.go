package yaml_test

import (
	"context"
	"errors"
	"github.com/jt05610/pnet"
	"github.com/jt05610/pnet/yaml"
	"strings"
	"testing"
)

const doc = `name: machine
places:
  - id: idle
    name: Idle
    marking: 1
  - id: busy
transitions:
  - id: start
    name: Start
  - id: stop
arcs:
  - id: a1
    src: idle
    dest: start
  - id: a2
    src: start
    dest: busy
`

func TestLoad(t *testing.T) {
	srv := &yaml.Service{}
	net, err := srv.Load(context.Background(), strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	if net.Name != "machine" {
		t.Errorf("net name should be machine, got %q", net.Name)
	}
	sum := net.Summarize()
	if sum.Places != 2 || sum.Transitions != 2 || sum.Arcs != 2 {
		t.Errorf("unexpected counts %+v", sum)
	}
	idle, ok := net.Place("idle")
	if !ok {
		t.Fatal("idle place should exist")
	}
	if idle.Name != "Idle" || idle.Marking != 1 {
		t.Errorf("idle place should keep name and marking, got %+v", idle)
	}
	busy, _ := net.Place("busy")
	if busy.Marking != 0 {
		t.Errorf("marking should default to 0, got %d", busy.Marking)
	}
	if r := net.Check(); !r.Ok() {
		t.Errorf("net should check clean, got %s", r)
	}
}

func TestLoadDuplicate(t *testing.T) {
	srv := &yaml.Service{}
	_, err := srv.Load(context.Background(), strings.NewReader(`places:
  - id: p1
  - id: p1
`))
	if !errors.Is(err, pnet.ErrDuplicate) {
		t.Errorf("duplicate place id should fail, got %v", err)
	}
}

func TestLoadMissingID(t *testing.T) {
	srv := &yaml.Service{}
	_, err := srv.Load(context.Background(), strings.NewReader(`places:
  - name: nameless
`))
	if !errors.Is(err, yaml.ErrMissingField) {
		t.Errorf("place without id should fail, got %v", err)
	}
}

func TestLoadMissingArcEndpoint(t *testing.T) {
	srv := &yaml.Service{}
	_, err := srv.Load(context.Background(), strings.NewReader(`arcs:
  - id: a1
    src: p1
`))
	if !errors.Is(err, yaml.ErrMissingField) {
		t.Errorf("arc without dest should fail, got %v", err)
	}
}

func TestLoadMalformed(t *testing.T) {
	srv := &yaml.Service{}
	_, err := srv.Load(context.Background(), strings.NewReader("places: ["))
	if err == nil {
		t.Error("malformed yaml should fail")
	}
}
