package externalapi

import (
	"encoding/json"
	"testing"
)

func TestHashEqual(t *testing.T) {
	a := Hash{1, 2, 3}
	b := Hash{1, 2, 3}
	c := Hash{1, 2, 4}

	if !a.Equal(b) {
		t.Fatalf("identical hashes should be equal")
	}
	if a.Equal(c) {
		t.Fatalf("distinct hashes should not be equal")
	}
}

func TestHashJSONRoundTrip(t *testing.T) {
	var h Hash
	h[0] = 0xde
	h[31] = 0xef

	b, err := json.Marshal(h)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got Hash
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got != h {
		t.Fatalf("round-trip mismatch: got %s, want %s", got, h)
	}
}
