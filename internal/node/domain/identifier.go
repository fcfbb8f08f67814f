// Package domain implements the Pastry routing substrate: identifiers,
// the leaf set, the routing table, next-hop selection, the key store, and
// the node's lifecycle state. Nothing in this package performs I/O.
package domain

import "github.com/spaolacci/murmur3"

// ID is a 64-bit identifier on the circular identifier space, interpreted
// as a sequence of base-2^b digits, most-significant first.
type ID = uint64

// DefaultB is the default per-digit branching factor exponent: k = 2^b.
const DefaultB = 3

// DefaultK is the default branching factor (k = 2^b, b = DefaultB).
const DefaultK = 1 << DefaultB

// idBits is the width of the identifier space.
const idBits = 64

// AssignID derives a node's identifier from its public address: a
// Murmur3 hash of the address string. This keeps identifier assignment
// deterministic and collision-resistant without a central authority.
func AssignID(pubAddr string) ID {
	return murmur3.Sum64([]byte(pubAddr))
}

// HashKey maps an arbitrary byte string onto the 64-bit key space so that
// callers at the RPC/HTTP boundary can address the DHT with string keys.
func HashKey(key []byte) ID {
	return murmur3.Sum64(key)
}

// Digits holds the per-digit arithmetic parameters for an overlay. It is
// immutable once constructed and is threaded through every component that
// needs to reason about prefixes.
type Digits struct {
	b    uint
	k    uint32
	rows int
}

// NewDigits builds digit arithmetic parameters for branching factor
// k = 2^b. b must be in [1, 64].
func NewDigits(b uint) Digits {
	if b == 0 || b > idBits {
		b = DefaultB
	}
	rows := idBits / int(b)
	if idBits%int(b) != 0 {
		rows++
	}
	return Digits{b: b, k: uint32(1) << b, rows: rows}
}

// K returns the branching factor (number of distinct digit values).
func (d Digits) K() uint32 { return d.k }

// Rows returns the number of rows in a routing table for this digit width:
// ceil(64 / b).
func (d Digits) Rows() int { return d.rows }

// Digit returns the r-th base-2^b digit of id, most-significant first
// (r = 0 is the leading digit).
func (d Digits) Digit(id ID, r int) uint32 {
	if r < 0 || r >= d.rows {
		return 0
	}
	shift := idBits - (r+1)*int(d.b)
	if shift < 0 {
		shift = 0
	}
	mask := uint64(d.k) - 1
	return uint32((id >> uint(shift)) & mask)
}

// SharedPrefixLen returns the number of leading digits a and b have in
// common.
func (d Digits) SharedPrefixLen(a, b ID) int {
	n := 0
	for r := 0; r < d.rows; r++ {
		if d.Digit(a, r) != d.Digit(b, r) {
			break
		}
		n++
	}
	return n
}

// RingDistance returns the minimum of the clockwise and counter-clockwise
// distances between a and b on the mod-2^64 ring.
func RingDistance(a, b ID) uint64 {
	var cw uint64
	if b >= a {
		cw = b - a
	} else {
		cw = (^uint64(0) - a) + b + 1
	}
	ccw := -cw // unsigned wraparound: 2^64 - cw
	if ccw < cw {
		return ccw
	}
	return cw
}

// CloserTo reports whether x is strictly closer to key than y is, ties
// broken by the smaller numerical id.
func CloserTo(key, x, y ID) bool {
	dx, dy := RingDistance(x, key), RingDistance(y, key)
	if dx != dy {
		return dx < dy
	}
	return x < y
}

// NodeEntry is a reference to a remote overlay member: identity plus an
// opaque transport address. NodeEntry values are never live handles —
// every interaction reopens or reuses a pooled transport connection keyed
// by PubAddr.
type NodeEntry struct {
	ID      ID
	PubAddr string
}

// IsZero reports whether e is the zero-value entry (commonly used to mean
// "no entry").
func (e NodeEntry) IsZero() bool {
	return e == NodeEntry{}
}
