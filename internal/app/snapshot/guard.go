package snapshot

import "sync/atomic"

// Guard implements latest-request-wins ordering for asynchronous fetches.
// Each fetch takes a sequence from Begin before starting; only the commit
// carrying the highest sequence seen so far is accepted, so a slow response
// for an older request can never clobber newer state.
type Guard struct {
	issued  atomic.Uint64
	applied atomic.Uint64
}

// Begin issues the next sequence number.
func (g *Guard) Begin() uint64 {
	return g.issued.Add(1)
}

// Commit accepts seq only if it is newer than every previously applied one.
func (g *Guard) Commit(seq uint64) bool {
	for {
		cur := g.applied.Load()
		if seq <= cur {
			return false
		}
		if g.applied.CompareAndSwap(cur, seq) {
			return true
		}
	}
}
