package pkg

import (
	"strings"
	"testing"
)

func TestRandDigits(t *testing.T) {
	code, err := RandDigits(6)
	if err != nil {
		t.Fatal(err)
	}
	if len(code) != 6 {
		t.Fatalf("len = %d, want 6", len(code))
	}
	for _, c := range code {
		if !strings.ContainsRune(digits, c) {
			t.Errorf("unexpected char %q in code %q", c, code)
		}
	}
}

func TestRandSuffix(t *testing.T) {
	a, err := RandSuffix(8)
	if err != nil {
		t.Fatal(err)
	}
	b, err := RandSuffix(8)
	if err != nil {
		t.Fatal(err)
	}
	if len(a) != 8 || len(b) != 8 {
		t.Fatalf("lens = %d %d, want 8", len(a), len(b))
	}
	if a == b {
		t.Errorf("two suffixes collided: %q", a)
	}
}
