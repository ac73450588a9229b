package geohash

import "testing"

func TestKey(t *testing.T) {
	got := Key(25.0267, 121.5435, 6)
	// Taipei sits in the wsqq cell
	if got != "wsqqmg" {
		t.Fatalf("got %q, want wsqqmg", got)
	}
	// nearby points share a coarse cell
	if Key(25.0268, 121.5436, 5) != got[:5] {
		t.Fatalf("nearby point fell in a different cell")
	}
}
