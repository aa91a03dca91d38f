package promisex_test

import (
	"errors"
	"testing"
	"time"

	"github.com/Danimarqz/moodleapp/pkg/promisex"
)

// --- Promise tests ---

func TestRunAwait(t *testing.T) {
	p := promisex.Run(func() (int, error) {
		return 42, nil
	})

	v, err := p.Await()
	if err != nil {
		t.Fatal(err)
	}
	if v != 42 {
		t.Fatalf("expected 42, got %d", v)
	}

	// Await caches the result and can be called again.
	v, err = p.Await()
	if err != nil || v != 42 {
		t.Fatalf("second Await returned %d, %v", v, err)
	}
}

func TestRunAwait_Error(t *testing.T) {
	boom := errors.New("boom")
	p := promisex.Run(func() (string, error) {
		return "", boom
	})

	if _, err := p.Await(); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}

func TestResolvedRejected(t *testing.T) {
	if v, err := promisex.Resolved("ok").Await(); err != nil || v != "ok" {
		t.Fatalf("Resolved: got %q, %v", v, err)
	}

	boom := errors.New("boom")
	if _, err := promisex.Rejected[string](boom).Await(); !errors.Is(err, boom) {
		t.Fatalf("Rejected: got %v", err)
	}
}

func TestPromise_SettledAndDone(t *testing.T) {
	d := promisex.Defer[int]()
	p := d.Promise()

	if p.Settled() {
		t.Fatal("pending promise reports settled")
	}
	select {
	case <-p.Done():
		t.Fatal("Done closed before settlement")
	default:
	}

	d.Resolve(7)

	if !p.Settled() {
		t.Fatal("settled promise reports pending")
	}
	select {
	case <-p.Done():
	case <-time.After(time.Second):
		t.Fatal("Done not closed after settlement")
	}
}

// --- Deferred tests ---

func TestDeferred_FirstSettlementWins(t *testing.T) {
	d := promisex.Defer[int]()

	d.Resolve(1)
	d.Resolve(2)
	d.Reject(errors.New("too late"))

	v, err := d.Promise().Await()
	if err != nil {
		t.Fatalf("expected first resolve to win, got error %v", err)
	}
	if v != 1 {
		t.Fatalf("expected 1, got %d", v)
	}
}

func TestDeferred_RejectThenResolve(t *testing.T) {
	boom := errors.New("boom")
	d := promisex.Defer[int]()

	d.Reject(boom)
	d.Resolve(99)

	if _, err := d.Promise().Await(); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}

func TestDeferred_RejectNilStillFails(t *testing.T) {
	d := promisex.Defer[int]()
	d.Reject(nil)

	if _, err := d.Promise().Await(); err == nil {
		t.Fatal("Reject(nil) settled the promise successfully")
	}
}
