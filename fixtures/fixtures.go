// Package fixtures runs the store contract against a Store
// implementation.
package fixtures

import (
	"context"
	"github.com/jt05610/pnet"
	"testing"
)

// StoreTestCase exercises one Store with two of Make's objects.
type StoreTestCase[T pnet.Object] struct {
	Name  string
	Store pnet.Store[T]
	// Make returns a fresh object to add. Every call must produce a
	// distinct identifier.
	Make func() T
	// Selector matches every object Make produces.
	Selector pnet.Document
}

func RunStoreTest[T pnet.Object](t *testing.T, tc *StoreTestCase[T]) {
	ctx := context.Background()
	items := make([]T, 2)
	t.Run(tc.Name+".Adder", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			items[i] = RunAdderTest(ctx, t, tc)
		}
	})
	// check that the items were added
	t.Run(tc.Name+".Lister", func(t *testing.T) {
		RunListerTest(ctx, t, tc, items)
	})
	// check that the items can be retrieved
	t.Run(tc.Name+".Getter", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			RunGetterTest(ctx, t, tc, items[i].Identifier())
		}
	})
	// remove the first item and make sure it is gone
	t.Run(tc.Name+".Remover", func(t *testing.T) {
		RunRemoverTest(ctx, t, tc, items[0].Identifier())
	})
	t.Run(tc.Name+".Lister", func(t *testing.T) {
		RunListerTest(ctx, t, tc, items[1:])
	})
}

func RunAdderTest[T pnet.Object](ctx context.Context, t *testing.T, tc *StoreTestCase[T]) T {
	actual, err := tc.Store.Add(ctx, tc.Make())
	if err != nil {
		t.Fatalf("Adder test failed: %v", err)
	}
	if actual.Identifier() == "" {
		t.Fatalf("Adder ID test failed: expected non-empty ID, got %v", actual.Identifier())
	}
	return actual
}

func RunListerTest[T pnet.Object](ctx context.Context, t *testing.T, tc *StoreTestCase[T], expect []T) {
	actual, err := tc.Store.List(ctx, tc.Selector)
	if err != nil {
		t.Fatalf("Lister test failed: %v", err)
	}
	if len(actual) != len(expect) {
		t.Fatalf("Lister length test failed: expected %d, got %d", len(expect), len(actual))
	}
	seen := make(map[string]bool, len(actual))
	for _, o := range actual {
		seen[o.Identifier()] = true
	}
	for _, o := range expect {
		if !seen[o.Identifier()] {
			t.Fatalf("Lister ID test failed: %v missing", o.Identifier())
		}
	}
}

func RunGetterTest[T pnet.Object](ctx context.Context, t *testing.T, tc *StoreTestCase[T], id string) {
	actual, err := tc.Store.Get(ctx, id)
	if err != nil {
		t.Fatalf("Getter test failed: %v", err)
	}
	if actual.Identifier() != id {
		t.Fatalf("Getter ID test failed: expected %v, got %v", id, actual.Identifier())
	}
}

func RunRemoverTest[T pnet.Object](ctx context.Context, t *testing.T, tc *StoreTestCase[T], id string) {
	actual, err := tc.Store.Remove(ctx, id)
	if err != nil {
		t.Fatalf("Remover test failed: %v", err)
	}
	if actual.Identifier() != id {
		t.Fatalf("Remover ID test failed: expected %v, got %v", id, actual.Identifier())
	}
	if _, err := tc.Store.Get(ctx, id); err == nil {
		t.Fatalf("Getter after Remover test failed: expected error for %v", id)
	}
}
