package snapshot

import (
	"sync"
	"testing"
	"time"

	"stayboard/internal/domain/stay"
)

func TestGuardLatestRequestWins(t *testing.T) {
	var g Guard
	first := g.Begin()
	second := g.Begin()

	// The newer fetch lands first; the older one must be rejected.
	if !g.Commit(second) {
		t.Fatal("expected newest sequence to commit")
	}
	if g.Commit(first) {
		t.Fatal("expected stale sequence to be rejected")
	}
}

func TestGuardInOrderCommits(t *testing.T) {
	var g Guard
	a := g.Begin()
	b := g.Begin()
	if !g.Commit(a) {
		t.Fatal("expected first commit to succeed")
	}
	if !g.Commit(b) {
		t.Fatal("expected newer commit to succeed")
	}
}

func TestGuardConcurrentCommitsApplyHighest(t *testing.T) {
	var g Guard
	seqs := make([]uint64, 50)
	for i := range seqs {
		seqs[i] = g.Begin()
	}
	var wg sync.WaitGroup
	for _, s := range seqs {
		wg.Add(1)
		go func(seq uint64) {
			defer wg.Done()
			g.Commit(seq)
		}(s)
	}
	wg.Wait()
	if got := g.applied.Load(); got != seqs[len(seqs)-1] {
		t.Errorf("expected highest sequence %d applied, got %d", seqs[len(seqs)-1], got)
	}
}

func TestHolderRejectsStaleReplace(t *testing.T) {
	var h Holder
	older := h.Begin()
	newer := h.Begin()

	fresh := Snapshot{Bookings: []stay.Booking{{ID: "fresh"}}, FetchedAt: time.Now()}
	stale := Snapshot{Bookings: []stay.Booking{{ID: "stale"}}, FetchedAt: time.Now()}

	if !h.Replace(newer, fresh) {
		t.Fatal("expected newer replace to succeed")
	}
	if h.Replace(older, stale) {
		t.Fatal("expected stale replace to fail")
	}

	cur, ok := h.Current()
	if !ok {
		t.Fatal("expected a current snapshot")
	}
	if len(cur.Bookings) != 1 || cur.Bookings[0].ID != "fresh" {
		t.Errorf("stale fetch overwrote newer snapshot: %+v", cur.Bookings)
	}
	if cur.Seq != newer {
		t.Errorf("expected seq %d, got %d", newer, cur.Seq)
	}
}

func TestHolderNotReadyBeforeFirstReplace(t *testing.T) {
	var h Holder
	if _, ok := h.Current(); ok {
		t.Fatal("expected no snapshot before first replace")
	}
}
