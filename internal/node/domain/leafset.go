package domain

import "sort"

// Side identifies which half of the leaf set an entry belongs to.
type Side int

const (
	// Predecessors holds ids numerically less than self, nearest first
	// going counter-clockwise (descending toward self on the ring).
	Predecessors Side = iota
	// Successors holds ids numerically greater than self, nearest first
	// going clockwise (ascending from self on the ring).
	Successors
)

// LeafSet is a bounded collection of 2*L neighbors: L predecessors and L
// successors of self on the ring. It is not safe for concurrent use on
// its own — callers serialize access through the node's mutation
// discipline.
type LeafSet struct {
	self  ID
	half  int
	pred  []NodeEntry // sorted nearest-to-self first, ids < self going ccw
	succ  []NodeEntry // sorted nearest-to-self first, ids > self going cw
	index map[ID]struct{}
}

// NewLeafSet creates an empty leaf set for self with half size L per side.
func NewLeafSet(self ID, half int) *LeafSet {
	if half <= 0 {
		half = DefaultK / 2
	}
	return &LeafSet{
		self:  self,
		half:  half,
		index: make(map[ID]struct{}),
	}
}

// Half returns the configured per-side capacity L.
func (s *LeafSet) Half() int { return s.half }

// sideOf reports which side of self id belongs to. The ring is circular,
// so this is decided by which direction is shorter — counter-clockwise
// (predecessor) or clockwise (successor) — not by plain numeric
// comparison, which would misclassify an id that wraps around the
// 0/2^64-1 boundary (e.g. self near 0 and id near 2^64-1 are ring-adjacent
// even though id is numerically far greater than self).
func (s *LeafSet) sideOf(id ID) Side {
	if ccwDistance(s.self, id) <= cwDistance(s.self, id) {
		return Predecessors
	}
	return Successors
}

// ccwDistance and cwDistance return the distance from self to id in each
// direction around the mod-2^64 ring. Go's unsigned subtraction already
// wraps modulo 2^64, so these are correct ring distances in their own
// direction; sideOf picks whichever is shorter.
func ccwDistance(self, id ID) uint64 { return self - id }
func cwDistance(self, id ID) uint64  { return id - self }

// Covers reports whether key lies between the farthest predecessor and the
// farthest successor, inclusive of self's range. With an empty leaf set,
// self trivially covers every key.
func (s *LeafSet) Covers(key ID) bool {
	if len(s.pred) == 0 && len(s.succ) == 0 {
		return true
	}

	lo := s.self
	if len(s.pred) > 0 {
		lo = s.pred[len(s.pred)-1].ID
	}
	hi := s.self
	if len(s.succ) > 0 {
		hi = s.succ[len(s.succ)-1].ID
	}

	// The covered range runs clockwise from lo to hi, inclusive.
	if lo <= hi {
		return key >= lo && key <= hi
	}
	// Wraps around the ring.
	return key >= lo || key <= hi
}

// ClosestTo returns the member (or self, reported via ok=false) minimizing
// ring distance to key, ties broken by smallest numerical id. Self
// participates in the comparison as the implicit zero-distance-to-itself
// candidate, so the selector can compare its own distance against
// whatever this returns.
func (s *LeafSet) ClosestTo(key ID) (NodeEntry, bool) {
	best := NodeEntry{ID: s.self}
	bestIsSelf := true
	bestDist := RingDistance(s.self, key)

	consider := func(e NodeEntry) {
		d := RingDistance(e.ID, key)
		if d < bestDist || (d == bestDist && e.ID < best.ID) {
			bestDist = d
			best = e
			bestIsSelf = false
		}
	}
	for _, e := range s.pred {
		consider(e)
	}
	for _, e := range s.succ {
		consider(e)
	}
	if bestIsSelf {
		return NodeEntry{}, false
	}
	return best, true
}

// Insert inserts entry into the correct side. If the side is full and
// entry is nearer to self than the farthest member, the farthest member is
// evicted and returned; if the side is full and entry is not nearer, entry
// is dropped (ok is false, evicted is the zero value). Self is never
// inserted and duplicates are rejected (ok false, no eviction).
func (s *LeafSet) Insert(entry NodeEntry) (evicted NodeEntry, ok bool) {
	if entry.ID == s.self {
		return NodeEntry{}, false
	}
	if _, exists := s.index[entry.ID]; exists {
		return NodeEntry{}, false
	}

	side := s.sideOf(entry.ID)
	list := s.listFor(side)

	inserted := insertSorted(list, entry, s.self, side)

	if len(inserted) <= s.half {
		s.setList(side, inserted)
		s.index[entry.ID] = struct{}{}
		return NodeEntry{}, true
	}

	// Over capacity: the farthest entry (last in sorted order) is the
	// eviction candidate.
	farthest := inserted[len(inserted)-1]
	if farthest.ID == entry.ID {
		// entry itself is the farthest: drop it, leave the set unchanged.
		return NodeEntry{}, false
	}

	trimmed := inserted[:len(inserted)-1]
	s.setList(side, trimmed)
	delete(s.index, farthest.ID)
	s.index[entry.ID] = struct{}{}
	return farthest, true
}

func insertSorted(list []NodeEntry, entry NodeEntry, self ID, side Side) []NodeEntry {
	out := make([]NodeEntry, 0, len(list)+1)
	out = append(out, list...)
	out = append(out, entry)
	sort.Slice(out, func(i, j int) bool {
		return sideDistance(self, out[i].ID, side) < sideDistance(self, out[j].ID, side)
	})
	return out
}

func sideDistance(self, id ID, side Side) uint64 {
	if side == Predecessors {
		return ccwDistance(self, id)
	}
	return cwDistance(self, id)
}

// Remove removes the entry with the given id and returns it if present.
func (s *LeafSet) Remove(id ID) (NodeEntry, bool) {
	if _, exists := s.index[id]; !exists {
		return NodeEntry{}, false
	}
	for _, side := range []Side{Predecessors, Successors} {
		list := s.listFor(side)
		for i, e := range list {
			if e.ID == id {
				removed := e
				s.setList(side, append(append([]NodeEntry{}, list[:i]...), list[i+1:]...))
				delete(s.index, id)
				return removed, true
			}
		}
	}
	return NodeEntry{}, false
}

// FarthestOnSide returns the farthest still-present entry on the requested
// side, or ok=false if that side is empty.
func (s *LeafSet) FarthestOnSide(side Side) (NodeEntry, bool) {
	list := s.listFor(side)
	if len(list) == 0 {
		return NodeEntry{}, false
	}
	return list[len(list)-1], true
}

// Snapshot returns an ordered copy of all members: predecessors then
// successors, each nearest-to-self first.
func (s *LeafSet) Snapshot() []NodeEntry {
	out := make([]NodeEntry, 0, len(s.pred)+len(s.succ))
	out = append(out, s.pred...)
	out = append(out, s.succ...)
	return out
}

// Contains reports whether id is currently a member.
func (s *LeafSet) Contains(id ID) bool {
	_, ok := s.index[id]
	return ok
}

func (s *LeafSet) listFor(side Side) []NodeEntry {
	if side == Predecessors {
		return s.pred
	}
	return s.succ
}

func (s *LeafSet) setList(side Side, list []NodeEntry) {
	if side == Predecessors {
		s.pred = list
	} else {
		s.succ = list
	}
}
