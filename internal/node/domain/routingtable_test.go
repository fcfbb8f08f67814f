package domain

import "testing"

func TestRoutingTableSetGetRespectsCellPredicate(t *testing.T) {
	self := ID(0)
	digits := NewDigits(3)
	rt := NewRoutingTable(self, digits)

	// An entry sharing 0 digits with self (self=0) whose digit 0 is 5:
	// set the top 3 bits to 101.
	entry := NodeEntry{ID: ID(5) << 61, PubAddr: "a"}
	rt.Set(0, 5, entry)

	got, ok := rt.Get(0, 5)
	if !ok || got.ID != entry.ID {
		t.Fatalf("expected entry at (0,5), got %+v ok=%v", got, ok)
	}
}

func TestRoutingTableSetPanicsOnBadCell(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for entry violating cell predicate")
		}
	}()
	digits := NewDigits(3)
	rt := NewRoutingTable(0, digits)
	// digit 0 of id 0x1 is 0, not 5: violates the (0,5) cell.
	rt.Set(0, 5, NodeEntry{ID: 0x1, PubAddr: "bad"})
}

func TestRoutingTableBestForAndClear(t *testing.T) {
	self := ID(0)
	digits := NewDigits(3)
	rt := NewRoutingTable(self, digits)
	entry := NodeEntry{ID: ID(5) << 61, PubAddr: "a"}
	rt.Set(0, 5, entry)

	key := entry.ID // shares prefix digit 5 at row 0 with self's row-0 requirement
	got, ok := rt.BestFor(key)
	if !ok || got.ID != entry.ID {
		t.Fatalf("BestFor should return the entry at the ideal cell")
	}

	rt.Clear(0, 5)
	if _, ok := rt.BestFor(key); ok {
		t.Fatalf("expected empty cell after Clear")
	}
}

func TestRoutingTableMergeCandidateFirstWriterWins(t *testing.T) {
	digits := NewDigits(3)
	rt := NewRoutingTable(0, digits)

	e1 := NodeEntry{ID: ID(5) << 61, PubAddr: "first"}
	e2 := NodeEntry{ID: (ID(5) << 61) | 0x1, PubAddr: "second"} // same ideal cell
	if !rt.MergeCandidate(e1) {
		t.Fatalf("first candidate should be accepted")
	}
	if rt.MergeCandidate(e2) {
		t.Fatalf("second candidate for an occupied cell should be rejected")
	}
	got, _ := rt.Get(0, 5)
	if got.ID != e1.ID {
		t.Fatalf("expected first-writer entry to remain, got %+v", got)
	}
}

func TestRoutingTableFallbackFindsCloserEntry(t *testing.T) {
	digits := NewDigits(3)
	self := ID(0)
	rt := NewRoutingTable(self, digits)

	key := ID(0x7100000000000000)
	closer := NodeEntry{ID: ID(0x7000000000000000), PubAddr: "closer"}
	r := digits.SharedPrefixLen(self, closer.ID)
	c := int(digits.Digit(closer.ID, r))
	rt.Set(r, c, closer)

	got, ok := rt.Fallback(key, nil, nil)
	if !ok {
		t.Fatalf("expected a fallback candidate")
	}
	if got.ID != closer.ID {
		t.Fatalf("expected fallback to return the seeded entry, got %+v", got)
	}
	if !CloserTo(key, got.ID, self) {
		t.Fatalf("fallback entry must be strictly closer to key than self")
	}
}

func TestRoutingTableRowEntriesExcludesSelfAndEmpty(t *testing.T) {
	digits := NewDigits(3)
	self := ID(0)
	rt := NewRoutingTable(self, digits)
	rt.Set(0, 0, NodeEntry{ID: self, PubAddr: "self"})

	entries := rt.RowEntries(0)
	if len(entries) != 0 {
		t.Fatalf("expected self slot to be excluded from RowEntries, got %+v", entries)
	}
}
