package pnet_test

import (
	"github.com/jt05610/pnet"
	"testing"
)

func checkedNet() *pnet.Net {
	return pnet.NewNet("checked").WithPlaces(
		pnet.NewPlace("p1", "", 0),
		pnet.NewPlace("p2", "", 5),
		pnet.NewPlace("p3", "", -1),
	).WithTransitions(
		pnet.NewTransition("t1", ""),
	).WithArcs(
		pnet.NewArc("a1", "p1", "t1"),
		pnet.NewArc("a2", "t1", "ghost"),
		pnet.NewArc("a3", "gone", "missing"),
	)
}

func TestCheck(t *testing.T) {
	r := checkedNet().Check()
	if len(r.Errors) != 3 {
		t.Fatalf("should have 3 errors, got %d: %v", len(r.Errors), r.Errors)
	}
	wantErrors := []string{
		"arc a2 has unknown target ghost",
		"arc a3 has unknown source gone",
		"arc a3 has unknown target missing",
	}
	for i, want := range wantErrors {
		if r.Errors[i].Message != want {
			t.Errorf("error %d should be %q, got %q", i, want, r.Errors[i].Message)
		}
		if r.Errors[i].Severity != pnet.Error {
			t.Errorf("error %d should carry error severity", i)
		}
	}
	if len(r.Warnings) != 2 {
		t.Fatalf("should have 2 warnings, got %d: %v", len(r.Warnings), r.Warnings)
	}
	wantWarnings := []string{
		"place p2 has marking 5 (not 0/1)",
		"place p3 has marking -1 (not 0/1)",
	}
	for i, want := range wantWarnings {
		if r.Warnings[i].Message != want {
			t.Errorf("warning %d should be %q, got %q", i, want, r.Warnings[i].Message)
		}
		if r.Warnings[i].Severity != pnet.Warning {
			t.Errorf("warning %d should carry warning severity", i)
		}
	}
}

func TestCheckIdempotent(t *testing.T) {
	net := checkedNet()
	first := net.Check()
	second := net.Check()
	if len(first.Errors) != len(second.Errors) || len(first.Warnings) != len(second.Warnings) {
		t.Fatal("checking twice should find the same findings")
	}
	for i := range first.Errors {
		if first.Errors[i].Message != second.Errors[i].Message {
			t.Errorf("error %d should not change between runs", i)
		}
	}
	for i := range first.Warnings {
		if first.Warnings[i].Message != second.Warnings[i].Message {
			t.Errorf("warning %d should not change between runs", i)
		}
	}
}

func TestCheckClean(t *testing.T) {
	net := pnet.NewNet("clean").WithPlaces(
		pnet.NewPlace("p1", "", 1),
	).WithTransitions(
		pnet.NewTransition("t1", ""),
	).WithArcs(
		pnet.NewArc("a1", "p1", "t1"),
	)
	r := net.Check()
	if !r.Ok() {
		t.Errorf("clean net should have no findings, got %s", r)
	}
}

func TestCheckBothEndpointsCount(t *testing.T) {
	net := pnet.NewNet("t").WithTransitions(
		pnet.NewTransition("t1", ""),
	).WithArcs(
		pnet.NewArc("a1", "nowhere", "t1"),
	)
	r := net.Check()
	if len(r.Errors) != 1 {
		t.Fatalf("an arc with one missing endpoint should emit exactly one error, got %v", r.Errors)
	}
	if r.Errors[0].Message != "arc a1 has unknown source nowhere" {
		t.Errorf("unexpected message %q", r.Errors[0].Message)
	}
}

func TestSeverityString(t *testing.T) {
	if pnet.Error.String() != "error" || pnet.Warning.String() != "warning" {
		t.Error("severities should print their names")
	}
}
