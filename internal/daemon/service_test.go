package daemon

import (
	"testing"
	"time"
)

func TestDiffSnapshots(t *testing.T) {
	prev := Snapshot{
		CaloriesIn:  1200,
		CaloriesOut: 0,
		Meals:       3,
		Workouts:    0,
	}
	curr := Snapshot{
		CaloriesIn:  1850,
		CaloriesOut: 320,
		Meals:       4,
		Workouts:    1,
	}

	delta := diffSnapshots(prev, curr)
	if delta.CaloriesIn != 650 {
		t.Fatalf("CaloriesIn delta = %f, want 650", delta.CaloriesIn)
	}
	if delta.CaloriesOut != 320 {
		t.Fatalf("CaloriesOut delta = %f, want 320", delta.CaloriesOut)
	}
	if delta.Meals != 1 || delta.Workouts != 1 {
		t.Fatalf("count deltas = %d/%d, want 1/1", delta.Meals, delta.Workouts)
	}
	if delta.isZero() {
		t.Fatal("delta unexpectedly reported as zero")
	}

	if !diffSnapshots(curr, curr).isZero() {
		t.Fatal("identical snapshots must diff to zero")
	}
}

func TestPublishEventRingBuffer(t *testing.T) {
	s := New(Config{
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
