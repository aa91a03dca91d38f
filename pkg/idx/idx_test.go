package idx_test

import (
	"sync"
	"testing"

	"github.com/Danimarqz/moodleapp/pkg/idx"
)

func TestRegistry_Sequential(t *testing.T) {
	r := idx.NewRegistry()

	for want := 1; want <= 3; want++ {
		if got := r.Next("k"); got != want {
			t.Fatalf("expected %d, got %d", want, got)
		}
	}
}

func TestRegistry_IndependentNamespaces(t *testing.T) {
	r := idx.NewRegistry()

	r.Next("k")
	r.Next("k")

	if got := r.Next("other"); got != 1 {
		t.Fatalf("expected independent counter to start at 1, got %d", got)
	}
	if got := r.Next("k"); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
}

func TestRegistry_Peek(t *testing.T) {
	r := idx.NewRegistry()

	if got := r.Peek("unseen"); got != 0 {
		t.Fatalf("expected 0 for unseen name, got %d", got)
	}

	r.Next("k")
	r.Next("k")

	if got := r.Peek("k"); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
	// Peek does not consume an id.
	if got := r.Next("k"); got != 3 {
		t.Fatalf("expected 3 after Peek, got %d", got)
	}
}

func TestRegistry_ConcurrentSameName(t *testing.T) {
	const n = 100

	r := idx.NewRegistry()
	ids := make(chan int, n)

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			ids <- r.Next("k")
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int]bool, n)
	for id := range ids {
		if seen[id] {
			t.Fatalf("duplicate id %d", id)
		}
		seen[id] = true
	}
	for i := 1; i <= n; i++ {
		if !seen[i] {
			t.Fatalf("gap in ids: %d never issued", i)
		}
	}
}

func TestTraceID_Unique(t *testing.T) {
	a, b := idx.TraceID(), idx.TraceID()
	if a == "" || b == "" {
		t.Fatal("empty trace id")
	}
	if a == b {
		t.Fatalf("trace ids collided: %s", a)
	}
}
