package id

import "testing"

func TestShort(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		s := Short()
		if len(s) != 16 {
			t.Fatalf("Short() length = %d, want 16", len(s))
		}
		if seen[s] {
			t.Fatalf("Short() produced duplicate %q", s)
		}
		seen[s] = true
	}
}
