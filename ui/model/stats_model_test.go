package model

import (
	"testing"
	"time"
)

func TestStatsModel_BasicLifecycle(t *testing.T) {
	m := NewStatsModel()
	base := time.Unix(0, 0)

	// Scan for 5s.
	m.OnTick(true, base)
	m.OnTick(true, base.Add(5*time.Second))
	session, total := m.Durations()
	if session < 5*time.Second || total < 5*time.Second {
		t.Fatalf("expected ~5s session & total; got session=%v total=%v", session, total)
	}

	// Stop at 5s; durations persist.
	m.OnTick(false, base.Add(5*time.Second))
	session, total = m.Durations()
	if session < 5*time.Second || total < 5*time.Second {
		t.Fatalf("after stop expected persisted 5s; got session=%v total=%v", session, total)
	}

	// Idle tick changes nothing.
	m.OnTick(false, base.Add(7*time.Second))
	s2, t2 := m.Durations()
	if s2 != session || t2 != total {
		t.Fatalf("idle tick changed durations: session=%v total=%v", s2, t2)
	}

	// Second session of 3s accumulates.
	m.OnTick(true, base.Add(10*time.Second))
	m.OnTick(true, base.Add(13*time.Second))
	m.OnTick(false, base.Add(13*time.Second))
	sFinal, tFinal := m.Durations()
	if sFinal < 3*time.Second || tFinal < 8*time.Second {
		t.Fatalf("final expected session >=3s total >=8s got session=%v total=%v", sFinal, tFinal)
	}
}

func TestStatsModel_CountsHits(t *testing.T) {
	m := NewStatsModel()
	if m.Hits() != 0 {
		t.Fatal("fresh model has hits")
	}
	m.RecordHit()
	m.RecordHit()
	if m.Hits() != 2 {
		t.Fatalf("hits = %d, want 2", m.Hits())
	}
}
