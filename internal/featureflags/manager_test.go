package featureflags

import (
	"testing"

	"github.com/google/uuid"
)

func TestEnabled_BooleanValues(t *testing.T) {
	m := NewManager("a=on,b=off,c=true,d=false,e=1,f=0")
	id := uuid.New()

	if !m.Enabled("a", id) || !m.Enabled("c", id) || !m.Enabled("e", id) {
		t.Fatal("expected enabled boolean values to evaluate true")
	}
	if m.Enabled("b", id) || m.Enabled("d", id) || m.Enabled("f", id) {
		t.Fatal("expected disabled boolean values to evaluate false")
	}
}

func TestEnabled_PercentageValues(t *testing.T) {
	m := NewManager("always=100%,never=0%,canary=25%")
	id := uuid.New()

	if !m.Enabled("always", id) {
		t.Fatal("100% rollout should always be enabled")
	}
	if m.Enabled("never", id) {
		t.Fatal("0% rollout should always be disabled")
	}

	first := m.Enabled("canary", id)
	for i := 0; i < 5; i++ {
		if got := m.Enabled("canary", id); got != first {
			t.Fatal("rollout evaluation must be deterministic per user")
		}
	}

	if m.Enabled("canary", uuid.Nil) {
		t.Fatal("percentage rollout requires a non-nil userID")
	}
}

func TestEnabled_UnknownAndMalformed(t *testing.T) {
	m := NewManager("weird=maybe,pct=abc%")
	id := uuid.New()

	if m.Enabled("weird", id) {
		t.Fatal("unknown values must evaluate false")
	}
	if m.Enabled("pct", id) {
		t.Fatal("malformed percentages must evaluate false")
	}
	if m.Enabled("missing", id) {
		t.Fatal("missing flags must evaluate false")
	}

	var nilManager *Manager
	if nilManager.Enabled("anything", id) {
		t.Fatal("nil manager must evaluate false")
	}
}

func TestParseAndSnapshot(t *testing.T) {
	m := NewManager(" bad ,x=on, y = 20% ,z=off ")

	raw := m.Raw()
	if len(raw) != 3 {
		t.Fatalf("expected 3 parsed flags, got %d", len(raw))
	}
	if raw["x"] != "on" || raw["y"] != "20%" || raw["z"] != "off" {
		t.Fatalf("unexpected parsed flags: %v", raw)
	}

	snap := m.Snapshot(uuid.New())
	if !snap["x"] || snap["z"] {
		t.Fatalf("unexpected snapshot: %v", snap)
	}
}
