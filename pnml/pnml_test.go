package pnml_test

import (
	"context"
	"errors"
	"fmt"
	"github.com/jt05610/pnet"
	"github.com/jt05610/pnet/pnml"
	"strings"
	"testing"
)

func load(t *testing.T, doc string) (*pnet.Net, error) {
	t.Helper()
	srv := &pnml.Service{}
	return srv.Load(context.Background(), strings.NewReader(doc))
}

func mustLoad(t *testing.T, doc string) *pnet.Net {
	t.Helper()
	net, err := load(t, doc)
	if err != nil {
		t.Fatal(err)
	}
	return net
}

func ExampleService_Load() {
	doc := `<?xml version="1.0"?>
<pnml xmlns="http://www.pnml.org/version-2009/grammar/pnml">
  <net id="simple">
    <page id="top">
      <place id="p1">
        <name><text>start</text></name>
        <initialMarking><text>1</text></initialMarking>
      </place>
      <transition id="t1">
        <name><text>go</text></name>
      </transition>
      <arc id="a1" source="p1" target="t1"/>
    </page>
  </net>
</pnml>`
	srv := &pnml.Service{}
	net, err := srv.Load(context.Background(), strings.NewReader(doc))
	if err != nil {
		panic(err)
	}
	sum := net.Summarize()
	fmt.Printf("%s: %d places, %d transitions, %d arcs\n", net.Name, sum.Places, sum.Transitions, sum.Arcs)
	for _, p := range net.Marked() {
		fmt.Printf("marked: %s (%s)\n", p.ID, p.Name)
	}
	// Output:
	// simple: 1 places, 1 transitions, 1 arcs
	// marked: p1 (start)
}

func TestCounts(t *testing.T) {
	net := mustLoad(t, `<pnml>
  <net id="n1">
    <place id="p1"/>
    <place id="p2"/>
    <transition id="t1"/>
    <arc id="a1" source="p1" target="t1"/>
    <arc id="a2" source="t1" target="p2"/>
    <arc id="a3" source="p2" target="t1"/>
  </net>
</pnml>`)
	sum := net.Summarize()
	if sum.Places != 2 {
		t.Errorf("should have 2 places, got %d", sum.Places)
	}
	if sum.Transitions != 1 {
		t.Errorf("should have 1 transition, got %d", sum.Transitions)
	}
	if sum.Arcs != 3 {
		t.Errorf("should have 3 arcs, got %d", sum.Arcs)
	}
}

func TestNamespaceVariants(t *testing.T) {
	docs := map[string]string{
		"none":     `<pnml><net><place id="p1"/></net></pnml>`,
		"default":  `<pnml xmlns="http://www.pnml.org/version-2009/grammar/pnml"><net><place id="p1"/></net></pnml>`,
		"prefixed": `<x:pnml xmlns:x="urn:custom"><x:net><x:place id="p1"/></x:net></x:pnml>`,
	}
	for name, doc := range docs {
		t.Run(name, func(t *testing.T) {
			net := mustLoad(t, doc)
			if _, ok := net.Place("p1"); !ok {
				t.Error("place should be recognized regardless of namespace")
			}
		})
	}
}

func TestDepthIndependence(t *testing.T) {
	net := mustLoad(t, `<pnml>
  <net id="n1">
    <page id="pg1">
      <page id="pg2">
        <place id="deep"/>
      </page>
      <transition id="t1"/>
    </page>
    <arc id="a1" source="deep" target="t1"/>
  </net>
</pnml>`)
	if _, ok := net.Place("deep"); !ok {
		t.Error("nested place should be found by the flat scan")
	}
	if _, ok := net.Transition("t1"); !ok {
		t.Error("nested transition should be found by the flat scan")
	}
	if len(net.Arcs) != 1 {
		t.Errorf("should have 1 arc, got %d", len(net.Arcs))
	}
}

func TestPlaceName(t *testing.T) {
	net := mustLoad(t, `<net>
  <place id="p1">
    <name><graphics/><text>  buffer  </text></name>
  </place>
  <place id="p2"/>
</net>`)
	p1, _ := net.Place("p1")
	if p1.Name != "buffer" {
		t.Errorf("place name should be trimmed text, got %q", p1.Name)
	}
	p2, _ := net.Place("p2")
	if p2.Name != "" {
		t.Errorf("place without a name element should have empty name, got %q", p2.Name)
	}
}

func TestMarking(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want int
	}{
		{"absent", `<net><place id="p1"/></net>`, 0},
		{"zero", `<net><place id="p1"><initialMarking><text>0</text></initialMarking></place></net>`, 0},
		{"one", `<net><place id="p1"><initialMarking><text> 1 </text></initialMarking></place></net>`, 1},
		{"many", `<net><place id="p1"><initialMarking><text>17</text></initialMarking></place></net>`, 17},
		{"negative", `<net><place id="p1"><initialMarking><text>-2</text></initialMarking></place></net>`, -2},
		{"lowercase tag", `<net><place id="p1"><initialmarking><text>1</text></initialmarking></place></net>`, 1},
		{"tool prefixed tag", `<net><place id="p1"><hlinitialMarking><text>1</text></hlinitialMarking></place></net>`, 1},
		{"empty wrapper", `<net><place id="p1"><initialMarking/></place></net>`, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			net := mustLoad(t, c.doc)
			p, ok := net.Place("p1")
			if !ok {
				t.Fatal("place should exist")
			}
			if p.Marking != c.want {
				t.Errorf("marking should be %d, got %d", c.want, p.Marking)
			}
		})
	}
}

func TestMarkingNotInteger(t *testing.T) {
	_, err := load(t, `<net><place id="p1"><initialMarking><text>lots</text></initialMarking></place></net>`)
	if !errors.Is(err, pnml.ErrBadMarking) {
		t.Errorf("non-integer marking should abort the parse, got %v", err)
	}
}

func TestTransitionName(t *testing.T) {
	net := mustLoad(t, `<net>
  <transition id="t1">
    <name><text>first</text></name>
    <toolspecific><label><text>second</text></label></toolspecific>
  </transition>
</net>`)
	tr, _ := net.Transition("t1")
	if tr.Name != "second" {
		t.Errorf("the last text label below the transition should win, got %q", tr.Name)
	}
}

func TestTransitionNameWithoutWrapper(t *testing.T) {
	net := mustLoad(t, `<net><transition id="t1"><text>bare</text></transition></net>`)
	tr, _ := net.Transition("t1")
	if tr.Name != "bare" {
		t.Errorf("a text label without a name wrapper should still name the transition, got %q", tr.Name)
	}
}

func TestDuplicatePlace(t *testing.T) {
	_, err := load(t, `<net><place id="p1"/><place id="p1"/></net>`)
	if !errors.Is(err, pnet.ErrDuplicate) {
		t.Errorf("duplicate place id should abort the parse, got %v", err)
	}
}

func TestDuplicateTransition(t *testing.T) {
	_, err := load(t, `<net><transition id="t1"/><transition id="t1"/></net>`)
	if !errors.Is(err, pnet.ErrDuplicate) {
		t.Errorf("duplicate transition id should abort the parse, got %v", err)
	}
}

func TestSharedIDAcrossKinds(t *testing.T) {
	net := mustLoad(t, `<net><place id="x"/><transition id="x"/></net>`)
	if _, ok := net.Place("x"); !ok {
		t.Error("place should keep its id")
	}
	if _, ok := net.Transition("x"); !ok {
		t.Error("transition may share an id with a place")
	}
}

func TestMissingAttributes(t *testing.T) {
	docs := map[string]string{
		"place id":      `<net><place/></net>`,
		"transition id": `<net><transition/></net>`,
		"arc id":        `<net><arc source="p1" target="t1"/></net>`,
		"arc source":    `<net><arc id="a1" target="t1"/></net>`,
		"arc target":    `<net><arc id="a1" source="p1"/></net>`,
	}
	for name, doc := range docs {
		t.Run(name, func(t *testing.T) {
			_, err := load(t, doc)
			if !errors.Is(err, pnml.ErrMissingAttr) {
				t.Errorf("missing %s should abort the parse, got %v", name, err)
			}
		})
	}
}

func TestUnknownElementsIgnored(t *testing.T) {
	net := mustLoad(t, `<pnml>
  <net id="n1">
    <toolspecific tool="editor" version="1.0"><position x="3" y="4"/></toolspecific>
    <place id="p1"/>
    <graphics><offset/></graphics>
  </net>
</pnml>`)
	sum := net.Summarize()
	if sum.Places != 1 || sum.Transitions != 0 || sum.Arcs != 0 {
		t.Errorf("unknown elements should not add to the model, got %+v", sum)
	}
}

func TestArcBeforeEndpoints(t *testing.T) {
	net := mustLoad(t, `<net>
  <arc id="a1" source="p1" target="t1"/>
  <place id="p1"/>
  <transition id="t1"/>
</net>`)
	if r := net.Check(); len(r.Errors) != 0 {
		t.Errorf("declaration order should not matter, got errors %v", r.Errors)
	}
}

func TestMalformedDocument(t *testing.T) {
	_, err := load(t, `<net><place id="p1"></net>`)
	if err == nil {
		t.Error("malformed XML should abort before parsing starts")
	}
}

func TestNetName(t *testing.T) {
	net := mustLoad(t, `<pnml><net id="orders"><place id="p1"/></net></pnml>`)
	if net.Name != "orders" {
		t.Errorf("net name should come from the net id, got %q", net.Name)
	}
}

func TestFatalErrorReturnsNoNet(t *testing.T) {
	net, err := load(t, `<net><place id="p1"/><place id="p1"/><place id="p2"/></net>`)
	if err == nil {
		t.Fatal("duplicate id should fail the parse")
	}
	if net != nil {
		t.Error("no partial net should be returned after a fatal error")
	}
}

func TestLonePlace(t *testing.T) {
	net := mustLoad(t, `<net><place id="p1"/></net>`)
	if len(net.Places) != 1 {
		t.Fatalf("should have 1 place, got %d", len(net.Places))
	}
	p, _ := net.Place("p1")
	if p.Marking != 0 {
		t.Errorf("marking should default to 0, got %d", p.Marking)
	}
	if r := net.Check(); !r.Ok() {
		t.Errorf("a lone unmarked place should check clean, got %s", r)
	}
}

func TestNonBinaryMarkingWarns(t *testing.T) {
	net := mustLoad(t, `<net>
  <place id="p1"><initialMarking><text>1</text></initialMarking></place>
  <place id="p2"><initialMarking><text>3</text></initialMarking></place>
  <arc id="a1" source="p1" target="p2"/>
</net>`)
	if len(net.Places) != 2 {
		t.Fatalf("should have 2 places, got %d", len(net.Places))
	}
	r := net.Check()
	if len(r.Errors) != 0 {
		t.Errorf("both endpoints exist, got errors %v", r.Errors)
	}
	if len(r.Warnings) != 1 {
		t.Fatalf("should warn once, got %v", r.Warnings)
	}
	if w := r.Warnings[0]; w.Entity != "p2" || w.Message != "place p2 has marking 3 (not 0/1)" {
		t.Errorf("warning should name p2 and its value, got %q", w.Message)
	}
	marked := net.Marked()
	if len(marked) != 1 || marked[0].ID != "p1" {
		t.Errorf("only p1 carries marking 1, got %v", marked)
	}
}

func TestDanglingArcErrors(t *testing.T) {
	net := mustLoad(t, `<net><arc id="a1" source="p1" target="t1"/></net>`)
	r := net.Check()
	if len(r.Errors) != 2 {
		t.Fatalf("should emit one error per missing endpoint, got %v", r.Errors)
	}
	for _, f := range r.Errors {
		if f.Entity != "a1" {
			t.Errorf("error should name the arc, got %q", f.Entity)
		}
	}
	if r.Errors[0].Message != "arc a1 has unknown source p1" {
		t.Errorf("unexpected source error %q", r.Errors[0].Message)
	}
	if r.Errors[1].Message != "arc a1 has unknown target t1" {
		t.Errorf("unexpected target error %q", r.Errors[1].Message)
	}
}
