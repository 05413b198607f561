package clock

import (
	"testing"
	"time"
)

func TestNewFixed(t *testing.T) {
	at := time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC)
	c := NewFixed(at)

	if !c.Now().Equal(at) {
		t.Fatalf("expected %s, got %s", at, c.Now())
	}
	if !c.Now().Equal(c.Now()) {
		t.Fatalf("fixed clock must not move")
	}
}

func TestNewSystem_UsesLocation(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	c := NewSystem(loc)

	if c.Now().Location() != loc {
		t.Fatalf("expected location %s, got %s", loc, c.Now().Location())
	}
}

func TestNewSystem_NilLocation(t *testing.T) {
	c := NewSystem(nil)
	if c.Now().Location() != time.Local {
		t.Fatalf("expected local time, got %s", c.Now().Location())
	}
}
