package daemon

import (
	"testing"
	"time"
)

func TestDiffSnapshots(t *testing.T) {
	death := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	later := death.AddDate(0, 0, 30)

	prev := Snapshot{
		Balance: "500000",
		AsOf:    time.Date(2026, 2, 19, 0, 0, 0, 0, time.UTC),
		Scenarios: []ScenarioSnapshot{
			{Name: "Minimal", DeathDay: nil},
			{Name: "Lavish", DeathDay: &death},
		},
	}
	curr := Snapshot{
		Balance: "550000",
		AsOf:    time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Scenarios: []ScenarioSnapshot{
			{Name: "Minimal", DeathDay: nil},
			{Name: "Lavish", DeathDay: &later},
		},
	}

	delta := diffSnapshots(prev, curr)
	if !delta.BalanceChanged {
		t.Fatal("balance change not detected")
	}
	if len(delta.ShiftedScenarios) != 1 || delta.ShiftedScenarios[0] != "Lavish" {
		t.Fatalf("shifted scenarios = %v, want [Lavish]", delta.ShiftedScenarios)
	}
	if delta.isZero() {
		t.Fatal("delta unexpectedly reported as zero")
	}
}

func TestDiffSnapshotsNoChange(t *testing.T) {
	death := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	snap := Snapshot{
		Balance: "500000",
		AsOf:    time.Date(2026, 2, 19, 0, 0, 0, 0, time.UTC),
		Scenarios: []ScenarioSnapshot{
			{Name: "Lavish", DeathDay: &death},
		},
	}

	if delta := diffSnapshots(snap, snap); !delta.isZero() {
		t.Fatalf("identical snapshots produced delta %+v", delta)
	}
}

func TestDiffSnapshotsScenarioAddedAndRemoved(t *testing.T) {
	prev := Snapshot{
		Balance:   "500000",
		Scenarios: []ScenarioSnapshot{{Name: "Old"}},
	}
	curr := Snapshot{
		Balance:   "500000",
		Scenarios: []ScenarioSnapshot{{Name: "New"}},
	}

	delta := diffSnapshots(prev, curr)
	if len(delta.ShiftedScenarios) != 2 {
		t.Fatalf("shifted scenarios = %v, want both Old and New", delta.ShiftedScenarios)
	}
}

func TestPublishEventRingBuffer(t *testing.T) {
	s := New(Config{
		DataDir:      ".",
		Interval:     10 * time.Second,
		EventsBuffer: 2,
	})

	s.publishEvent(Event{ID: 1})
	s.publishEvent(Event{ID: 2})
	s.publishEvent(Event{ID: 3})

	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.events) != 2 {
		t.Fatalf("events len = %d, want 2", len(s.events))
	}
	if s.events[0].ID != 2 || s.events[1].ID != 3 {
		t.Fatalf("events ring contains IDs [%d, %d], want [2, 3]", s.events[0].ID, s.events[1].ID)
	}
}
