// Package app loads the full application state for a user: profile, goal,
// entries, and the derived energy numbers every surface renders from.
package app

import (
	"errors"
	"fmt"
	"time"

	"calring/internal/config"
	"calring/internal/energy"
	"calring/internal/model"
	"calring/internal/ring"
	"calring/internal/store"
)

// State is everything loaded for one user. Derived fields are recomputed on
// every load; the store is the only source of truth.
type State struct {
	UserID  string
	Profile model.Profile
	Goal    model.Goal
	HasGoal bool
	Entries []model.LogEntry

	Energy model.DerivedEnergy
	Today  model.DayTotals
}

// Load reads a user's state from the store and derives BMR/TDEE. A missing
// profile is not an error; Energy stays zero and callers render the unset
// state.
func Load(s *store.Store, userID string, now time.Time) (*State, error) {
	st := &State{UserID: userID}

	profile, err := s.Profile(userID)
	switch {
	case err == nil:
		st.Profile = profile
		if derived, err := energy.Derive(profile); err == nil {
			st.Energy = derived
		}
	case errors.Is(err, store.ErrNotFound):
		// first run, no profile yet
	default:
		return nil, fmt.Errorf("loading profile: %w", err)
	}

	goal, err := s.Goal(userID)
	switch {
	case err == nil:
		st.Goal = goal
		st.HasGoal = true
	case errors.Is(err, store.ErrNotFound):
	default:
		return nil, fmt.Errorf("loading goal: %w", err)
	}

	entries, err := s.EntriesForUser(userID)
	if err != nil {
		return nil, fmt.Errorf("loading entries: %w", err)
	}
	st.Entries = entries
	st.Today = energy.Today(entries, now)

	return st, nil
}

// Open opens the store configured in cfg.
func Open(cfg config.Config) (*store.Store, error) {
	return store.Open(config.DBPath(cfg))
}

// RingInput assembles the mapper input from the loaded state.
func (st *State) RingInput() ring.Input {
	in := ring.Input{
		TDEE:        st.Energy.TDEE,
		CaloriesIn:  st.Today.CaloriesIn,
		CaloriesOut: st.Today.CaloriesOut,
	}
	if st.HasGoal {
		in.DeficitGoal = float64(st.Goal.DailyDeficitKcal)
	}
	return in
}

// Net returns today's energy accounting against the current TDEE.
func (st *State) Net() energy.DailyNet {
	return energy.Net(st.Today, st.Energy.TDEE)
}

// Window returns trailing-window stats for the configured day count.
func (st *State) Window(days int, now time.Time) model.WindowStats {
	return energy.WindowStats(st.Entries, st.Energy.TDEE, days, now)
}
