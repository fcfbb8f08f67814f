package domain

import "testing"

func TestDigitsDigitAndSharedPrefix(t *testing.T) {
	d := NewDigits(3) // k = 8

	var a ID = 0xAB00000000000000
	var b ID = 0xAB10000000000000

	if got := d.Digit(a, 0); got != 0x5 { // top 3 bits of 0xA = 1010 -> 101 = 5
		t.Fatalf("Digit(a,0) = %d, want 5", got)
	}
	if sp := d.SharedPrefixLen(a, a); sp != d.Rows() {
		t.Fatalf("SharedPrefixLen(a,a) = %d, want %d", sp, d.Rows())
	}
	if sp := d.SharedPrefixLen(a, b); sp == 0 {
		t.Fatalf("expected nonzero shared prefix")
	}
}

func TestRingDistanceWraps(t *testing.T) {
	var a ID = 0
	var b ID = 1 << 63
	if got := RingDistance(a, b); got != 1<<63 {
		t.Fatalf("RingDistance(0, 2^63) = %d, want 2^63", got)
	}

	var c ID = ^uint64(0) // max value, adjacent to 0 going clockwise
	if got := RingDistance(a, c); got != 1 {
		t.Fatalf("RingDistance(0, max) = %d, want 1", got)
	}
}

func TestCloserToTieBreaksOnID(t *testing.T) {
	key := ID(100)
	x := ID(90)
	y := ID(110)
	// both 10 away; smaller id wins
	if !CloserTo(key, x, y) {
		t.Fatalf("expected x (smaller id) to be considered closer on tie")
	}
}

func TestAssignIDDeterministic(t *testing.T) {
	a1 := AssignID("127.0.0.1:9000")
	a2 := AssignID("127.0.0.1:9000")
	if a1 != a2 {
		t.Fatalf("AssignID must be deterministic for the same address")
	}
	if a1 == AssignID("127.0.0.1:9001") {
		t.Fatalf("different addresses should (almost certainly) hash differently")
	}
}
