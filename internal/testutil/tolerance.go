package testutil

import "testing"

// RequireIntsEqual fails t if got and want differ in length or in any
// element pair.
func RequireIntsEqual(t *testing.T, got, want []int) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %d, want %d", i, got[i], want[i])
		}
	}
}

// RequireInRange fails t if got lies outside [low, high].
func RequireInRange(t *testing.T, got, low, high int) {
	t.Helper()
	if got < low || got > high {
		t.Fatalf("got %d, want in [%d, %d]", got, low, high)
	}
}
