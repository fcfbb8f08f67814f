package domain

import "testing"

func TestLeafSetEmptyCoversEverything(t *testing.T) {
	ls := NewLeafSet(100, 2)
	if !ls.Covers(0) || !ls.Covers(^ID(0)) {
		t.Fatalf("empty leaf set must cover every key")
	}
}

func TestLeafSetInsertAndSides(t *testing.T) {
	ls := NewLeafSet(100, 2)

	if _, ok := ls.Insert(NodeEntry{ID: 90, PubAddr: "a"}); !ok {
		t.Fatalf("expected insert of predecessor to succeed")
	}
	if _, ok := ls.Insert(NodeEntry{ID: 110, PubAddr: "b"}); !ok {
		t.Fatalf("expected insert of successor to succeed")
	}
	if !ls.Contains(90) || !ls.Contains(110) {
		t.Fatalf("expected both entries present")
	}
	if ls.Contains(100) {
		t.Fatalf("self must never be a member")
	}
}

func TestLeafSetSelfNeverInserted(t *testing.T) {
	ls := NewLeafSet(100, 2)
	if _, ok := ls.Insert(NodeEntry{ID: 100, PubAddr: "self"}); ok {
		t.Fatalf("inserting self must be rejected")
	}
}

func TestLeafSetEvictsFarthestWhenFull(t *testing.T) {
	ls := NewLeafSet(100, 1) // half size 1 per side

	if _, ok := ls.Insert(NodeEntry{ID: 80, PubAddr: "far"}); !ok {
		t.Fatalf("first predecessor insert should succeed")
	}
	evicted, ok := ls.Insert(NodeEntry{ID: 95, PubAddr: "near"})
	if !ok {
		t.Fatalf("nearer predecessor should be accepted, evicting the farther one")
	}
	if evicted.ID != 80 {
		t.Fatalf("expected eviction of id 80, got %d", evicted.ID)
	}
	if ls.Contains(80) {
		t.Fatalf("evicted entry must no longer be a member")
	}

	if _, ok := ls.Insert(NodeEntry{ID: 70, PubAddr: "farther"}); ok {
		t.Fatalf("farther predecessor than current occupant must be dropped")
	}
}

func TestLeafSetRemove(t *testing.T) {
	ls := NewLeafSet(100, 2)
	ls.Insert(NodeEntry{ID: 90, PubAddr: "a"})

	removed, ok := ls.Remove(90)
	if !ok || removed.ID != 90 {
		t.Fatalf("expected to remove id 90")
	}
	if ls.Contains(90) {
		t.Fatalf("removed entry must not remain a member")
	}
	if _, ok := ls.Remove(90); ok {
		t.Fatalf("removing an absent entry should report not-found")
	}
}

func TestLeafSetClosestToPrefersSelfWhenNoCloserMember(t *testing.T) {
	ls := NewLeafSet(100, 2)
	ls.Insert(NodeEntry{ID: 50, PubAddr: "far-pred"})

	_, ok := ls.ClosestTo(100) // key == self: nothing can be closer than self
	if ok {
		t.Fatalf("expected self to be closest to its own id")
	}
}

func TestLeafSetClosestToPrefersCloserMember(t *testing.T) {
	ls := NewLeafSet(100, 4)
	ls.Insert(NodeEntry{ID: 95, PubAddr: "a"}) // ring distance 25 to key 70

	closest, ok := ls.ClosestTo(70) // self's ring distance to 70 is 30
	if !ok || closest.ID != 95 {
		t.Fatalf("expected closest member to be 95, got %+v ok=%v", closest, ok)
	}
}

func TestLeafSetFarthestOnSide(t *testing.T) {
	ls := NewLeafSet(100, 4)
	ls.Insert(NodeEntry{ID: 90, PubAddr: "a"})
	ls.Insert(NodeEntry{ID: 80, PubAddr: "b"})

	farthest, ok := ls.FarthestOnSide(Predecessors)
	if !ok || farthest.ID != 80 {
		t.Fatalf("expected farthest predecessor to be 80, got %+v ok=%v", farthest, ok)
	}
	if _, ok := ls.FarthestOnSide(Successors); ok {
		t.Fatalf("expected no successors")
	}
}

func TestLeafSetSideOfWrapsAroundRingBoundary(t *testing.T) {
	ls := NewLeafSet(2, 2)

	// ^ID(0) (2^64-1) is numerically far greater than self=2, but is only
	// 3 steps away counter-clockwise, so it belongs on the predecessor
	// side with a small ring distance, not the successor side.
	if _, ok := ls.Insert(NodeEntry{ID: ^ID(0), PubAddr: "wrap-pred"}); !ok {
		t.Fatalf("expected wraparound predecessor insert to succeed")
	}
	if ls.sideOf(^ID(0)) != Predecessors {
		t.Fatalf("expected %d to be classified as a predecessor of self=2", ^ID(0))
	}

	farthest, ok := ls.FarthestOnSide(Predecessors)
	if !ok || farthest.ID != ^ID(0) {
		t.Fatalf("expected %d on the predecessor side, got %+v ok=%v", ^ID(0), farthest, ok)
	}
	if _, ok := ls.FarthestOnSide(Successors); ok {
		t.Fatalf("expected no successors")
	}
}

func TestLeafSetCoversWrapsAroundRingBoundary(t *testing.T) {
	ls := NewLeafSet(2, 2)
	ls.Insert(NodeEntry{ID: ^ID(0), PubAddr: "wrap-pred"}) // ccw neighbor of self=2
	ls.Insert(NodeEntry{ID: 5, PubAddr: "succ"})

	if !ls.Covers(^ID(0)) || !ls.Covers(0) || !ls.Covers(5) {
		t.Fatalf("expected the wrapped range [^ID(0), 5] to cover ^ID(0), 0, and 5")
	}
	if ls.Covers(10) {
		t.Fatalf("key 10 lies outside the covered range")
	}
}

func TestLeafSetSnapshotOrder(t *testing.T) {
	ls := NewLeafSet(100, 4)
	ls.Insert(NodeEntry{ID: 90, PubAddr: "p1"})
	ls.Insert(NodeEntry{ID: 80, PubAddr: "p2"})
	ls.Insert(NodeEntry{ID: 110, PubAddr: "s1"})

	snap := ls.Snapshot()
	if len(snap) != 3 {
		t.Fatalf("expected 3 members, got %d", len(snap))
	}
	// predecessors nearest-first, then successors
	if snap[0].ID != 90 || snap[1].ID != 80 || snap[2].ID != 110 {
		t.Fatalf("unexpected snapshot order: %+v", snap)
	}
}
