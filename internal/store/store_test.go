package store

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"calring/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "calring.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestAppendEntry_AssignsIDAndTimestamp(t *testing.T) {
	s := openTestStore(t)

	e, err := s.AppendEntry(model.LogEntry{
		UserID: "u1", Type: model.Meal, Name: "oatmeal", Cals: 320,
	})
	if err != nil {
		t.Fatalf("AppendEntry: %v", err)
	}
	if e.ID == "" {
		t.Fatal("no ID assigned")
	}
	if e.LoggedAt.IsZero() {
		t.Fatal("no timestamp assigned")
	}
}

func TestEntriesForUser_NewestFirstAndScoped(t *testing.T) {
	s := openTestStore(t)
	base := time.Date(2026, 3, 10, 8, 0, 0, 0, time.Local)

	for i, name := range []string{"breakfast", "lunch", "dinner"} {
		_, err := s.AppendEntry(model.LogEntry{
			UserID: "u1", Type: model.Meal, Name: name, Cals: 500,
			LoggedAt: base.Add(time.Duration(i) * 4 * time.Hour),
		})
		if err != nil {
			t.Fatalf("AppendEntry: %v", err)
		}
	}
	if _, err := s.AppendEntry(model.LogEntry{
		UserID: "u2", Type: model.Meal, Name: "other user", Cals: 100, LoggedAt: base,
	}); err != nil {
		t.Fatalf("AppendEntry: %v", err)
	}

	entries, err := s.EntriesForUser("u1")
	if err != nil {
		t.Fatalf("EntriesForUser: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("len = %d, want 3", len(entries))
	}
	if entries[0].Name != "dinner" || entries[2].Name != "breakfast" {
		t.Fatalf("not newest first: %s, %s, %s", entries[0].Name, entries[1].Name, entries[2].Name)
	}
	if !entries[0].LoggedAt.Equal(base.Add(8 * time.Hour)) {
		t.Fatalf("timestamp mangled: %v", entries[0].LoggedAt)
	}
}

func TestDeleteEntries_ReportsPerID(t *testing.T) {
	s := openTestStore(t)

	e, err := s.AppendEntry(model.LogEntry{UserID: "u1", Type: model.Meal, Name: "snack", Cals: 150})
	if err != nil {
		t.Fatalf("AppendEntry: %v", err)
	}
	other, err := s.AppendEntry(model.LogEntry{UserID: "u2", Type: model.Meal, Name: "not yours", Cals: 150})
	if err != nil {
		t.Fatalf("AppendEntry: %v", err)
	}

	deleted, err := s.DeleteEntries("u1", []string{e.ID, "no-such-id", other.ID})
	if err != nil {
		t.Fatalf("DeleteEntries: %v", err)
	}
	if !deleted[e.ID] {
		t.Fatal("own entry not deleted")
	}
	if deleted["no-such-id"] {
		t.Fatal("unknown ID reported as deleted")
	}
	if deleted[other.ID] {
		t.Fatal("deleted another user's entry")
	}

	if n, _ := s.EntryCount("u2"); n != 1 {
		t.Fatalf("u2 entry count = %d, want 1", n)
	}
}

func TestProfile_RoundTripAndNotFound(t *testing.T) {
	s := openTestStore(t)

	if _, err := s.Profile("u1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing profile err = %v, want ErrNotFound", err)
	}

	p := model.Profile{
		WeightLbs: 180, HeightInches: 70, Age: 35,
		Gender: model.Male, ActivityMultiplier: 1.55,
	}
	if err := s.SaveProfile("u1", p); err != nil {
		t.Fatalf("SaveProfile: %v", err)
	}

	got, err := s.Profile("u1")
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if got != p {
		t.Fatalf("Profile = %+v, want %+v", got, p)
	}

	// Upsert replaces, not duplicates.
	p.WeightLbs = 175
	if err := s.SaveProfile("u1", p); err != nil {
		t.Fatalf("SaveProfile (update): %v", err)
	}
	got, _ = s.Profile("u1")
	if got.WeightLbs != 175 {
		t.Fatalf("WeightLbs = %f after update, want 175", got.WeightLbs)
	}
}

func TestSaveProfile_RejectsInvalid(t *testing.T) {
	s := openTestStore(t)
	err := s.SaveProfile("u1", model.Profile{WeightLbs: -1})
	if !errors.Is(err, model.ErrInvalidProfile) {
		t.Fatalf("err = %v, want ErrInvalidProfile", err)
	}
}

func TestGoal_SaveClearRoundTrip(t *testing.T) {
	s := openTestStore(t)

	if _, err := s.Goal("u1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing goal err = %v, want ErrNotFound", err)
	}

	g := model.Goal{TargetWeightLbs: 165, DailyDeficitKcal: 750}
	if err := s.SaveGoal("u1", g); err != nil {
		t.Fatalf("SaveGoal: %v", err)
	}
	got, err := s.Goal("u1")
	if err != nil {
		t.Fatalf("Goal: %v", err)
	}
	if got != g {
		t.Fatalf("Goal = %+v, want %+v", got, g)
	}

	if err := s.ClearGoal("u1"); err != nil {
		t.Fatalf("ClearGoal: %v", err)
	}
	if _, err := s.Goal("u1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("goal survived clear: %v", err)
	}
}
