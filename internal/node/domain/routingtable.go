package domain

// RoutingTable is a matrix of rows x k cells. Cell (r, c) may hold a
// NodeEntry whose id shares exactly r leading digits with self and whose
// (r+1)-th digit equals c. It is not safe for concurrent use on its own —
// callers serialize access through the node's mutation discipline.
type RoutingTable struct {
	self   ID
	digits Digits
	rows   [][]NodeEntry // rows[r][c]
	count  map[ID]int    // id -> occurrence count, for uniqueness checks
}

// NewRoutingTable creates an empty routing table for self using the given
// digit arithmetic.
func NewRoutingTable(self ID, digits Digits) *RoutingTable {
	rows := make([][]NodeEntry, digits.Rows())
	for r := range rows {
		rows[r] = make([]NodeEntry, digits.K())
	}
	return &RoutingTable{
		self:   self,
		digits: digits,
		rows:   rows,
		count:  make(map[ID]int),
	}
}

// Rows returns the number of rows.
func (t *RoutingTable) Rows() int { return len(t.rows) }

// satisfiesCell reports whether entry.ID may legally occupy row r, column c.
func (t *RoutingTable) satisfiesCell(r, c int, id ID) bool {
	if r < 0 || r >= len(t.rows) {
		return false
	}
	return t.digits.SharedPrefixLen(t.self, id) == r && int(t.digits.Digit(id, r)) == c
}

// Get returns the entry at (r, c), if any.
func (t *RoutingTable) Get(r, c int) (NodeEntry, bool) {
	if r < 0 || r >= len(t.rows) || c < 0 || c >= len(t.rows[r]) {
		return NodeEntry{}, false
	}
	e := t.rows[r][c]
	if e.IsZero() {
		return NodeEntry{}, false
	}
	return e, true
}

// Set places entry at (r, c). It panics with an *InvariantViolation if
// entry does not satisfy the cell's prefix/digit predicate — the self
// slot (entry.ID == self) is the sole exception, per spec.
func (t *RoutingTable) Set(r, c int, entry NodeEntry) {
	if entry.ID == t.self {
		if r < 0 || r >= len(t.rows) || c < 0 || c >= len(t.rows[r]) {
			panic(&InvariantViolation{Msg: "self slot out of range"})
		}
		t.rows[r][c] = entry
		return
	}
	if !t.satisfiesCell(r, c, entry.ID) {
		panic(&InvariantViolation{Msg: "entry does not satisfy cell predicate"})
	}
	if prev, ok := t.Get(r, c); ok && prev.ID != entry.ID {
		t.count[prev.ID]--
		if t.count[prev.ID] <= 0 {
			delete(t.count, prev.ID)
		}
	}
	t.rows[r][c] = entry
	t.count[entry.ID]++
}

// Clear empties cell (r, c).
func (t *RoutingTable) Clear(r, c int) {
	if r < 0 || r >= len(t.rows) || c < 0 || c >= len(t.rows[r]) {
		return
	}
	prev := t.rows[r][c]
	if !prev.IsZero() {
		t.count[prev.ID]--
		if t.count[prev.ID] <= 0 {
			delete(t.count, prev.ID)
		}
	}
	t.rows[r][c] = NodeEntry{}
}

// ClearEntry removes id from wherever it occupies the table, if anywhere.
func (t *RoutingTable) ClearEntry(id ID) {
	if id == t.self {
		return
	}
	r := t.digits.SharedPrefixLen(t.self, id)
	if r >= len(t.rows) {
		return
	}
	c := int(t.digits.Digit(id, r))
	if e, ok := t.Get(r, c); ok && e.ID == id {
		t.Clear(r, c)
	}
}

// BestFor returns the entry in row shared_prefix_len(self, key) at column
// digit(key, r), if any.
func (t *RoutingTable) BestFor(key ID) (NodeEntry, bool) {
	r := t.digits.SharedPrefixLen(t.self, key)
	if r >= len(t.rows) {
		return NodeEntry{}, false
	}
	c := int(t.digits.Digit(key, r))
	return t.Get(r, c)
}

// Fallback returns any known entry — from the table, a supplied candidate
// set, or both — that shares at least as many prefix digits with key as
// self does and is strictly numerically closer to key than self is. Ties
// are broken by larger shared prefix, then smaller ring distance. Entries
// whose id is in excluded are skipped.
func (t *RoutingTable) Fallback(key ID, excluded map[ID]struct{}, candidates []NodeEntry) (NodeEntry, bool) {
	selfPrefix := t.digits.SharedPrefixLen(t.self, key)

	var best NodeEntry
	found := false
	bestPrefix := -1
	var bestDist uint64

	consider := func(e NodeEntry) {
		if e.IsZero() || e.ID == t.self {
			return
		}
		if _, skip := excluded[e.ID]; skip {
			return
		}
		prefix := t.digits.SharedPrefixLen(e.ID, key)
		if prefix < selfPrefix {
			return
		}
		if !CloserTo(key, e.ID, t.self) {
			return
		}
		d := RingDistance(e.ID, key)
		if !found || prefix > bestPrefix || (prefix == bestPrefix && d < bestDist) {
			best, found, bestPrefix, bestDist = e, true, prefix, d
		}
	}

	for _, row := range t.rows {
		for _, e := range row {
			consider(e)
		}
	}
	for _, e := range candidates {
		consider(e)
	}

	return best, found
}

// MergeCandidate offers a learned entry for insertion into its ideal cell.
// The cell accepts it if empty; otherwise the current occupant is kept
// (first-writer-wins, per spec — liveness probing is out of scope).
// Reports whether the entry was accepted.
func (t *RoutingTable) MergeCandidate(entry NodeEntry) bool {
	if entry.ID == t.self {
		return false
	}
	r := t.digits.SharedPrefixLen(t.self, entry.ID)
	if r >= len(t.rows) {
		return false
	}
	c := int(t.digits.Digit(entry.ID, r))
	if _, occupied := t.Get(r, c); occupied {
		return false
	}
	t.Set(r, c, entry)
	return true
}

// RowEntries returns the populated entries of row r (skipping empty
// cells and the self slot), used when accumulating a join response.
func (t *RoutingTable) RowEntries(r int) []NodeEntry {
	if r < 0 || r >= len(t.rows) {
		return nil
	}
	out := make([]NodeEntry, 0, len(t.rows[r]))
	for _, e := range t.rows[r] {
		if !e.IsZero() && e.ID != t.self {
			out = append(out, e)
		}
	}
	return out
}

// Snapshot returns every populated, non-self entry in the table.
func (t *RoutingTable) Snapshot() []NodeEntry {
	out := make([]NodeEntry, 0)
	for _, row := range t.rows {
		for _, e := range row {
			if !e.IsZero() && e.ID != t.self {
				out = append(out, e)
			}
		}
	}
	return out
}
