package graphviz_test

import (
	"bytes"
	"github.com/jt05610/pnet/examples"
	"github.com/jt05610/pnet/graphviz"
	"strings"
	"testing"
)

func TestWriter(t *testing.T) {
	buf := new(bytes.Buffer)
	wr := graphviz.New(&graphviz.Config{
		Font:    graphviz.Helvetica,
		RankDir: graphviz.LeftToRight,
		Format:  graphviz.DOT,
	})
	if err := wr.Flush(buf, examples.Machine()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "digraph") {
		t.Error("output should be a digraph")
	}
	for _, label := range []string{"Idle", "Busy", "Start", "Stop"} {
		if !strings.Contains(out, label) {
			t.Errorf("output should label the %s node", label)
		}
	}
	if !strings.Contains(out, "->") {
		t.Error("output should contain the arcs")
	}
}

func TestWriterSkipsDanglingArcs(t *testing.T) {
	buf := new(bytes.Buffer)
	wr := graphviz.New(&graphviz.Config{Format: graphviz.DOT})
	if err := wr.Flush(buf, examples.Broken()); err != nil {
		t.Fatalf("dangling endpoints should be skipped, not fail: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("the resolvable part of the net should still render")
	}
}

func TestWriterMarkingLabel(t *testing.T) {
	buf := new(bytes.Buffer)
	wr := graphviz.New(&graphviz.Config{Format: graphviz.DOT})
	if err := wr.Flush(buf, examples.Machine()); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "Idle (1)") {
		t.Error("marked places should show their token count")
	}
	if !strings.Contains(buf.String(), "peripheries=2") {
		t.Error("marked places should draw a double circle")
	}
}
