package state

import (
	"time"

	"github.com/five82/pokex/internal/dex"
)

// Action is a state transition request. The set of actions is closed; see
// the types below.
type Action interface {
	isAction()
}

// Loaded delivers the result of the initial load. A non-nil Err leaves the
// collection empty.
type Loaded struct {
	Records dex.Collection
	Err     error
	At      time.Time
}

// Retry clears a failed load so it can be issued again.
type Retry struct{}

// SetSearch replaces the search term.
type SetSearch struct {
	Term string
}

// ToggleFavorite flips favorite membership for ID.
type ToggleFavorite struct {
	ID int
}

// Select enters detail mode for ID.
type Select struct {
	ID int
}

// Back returns to grid mode.
type Back struct{}

// ToggleTheme flips light/dark.
type ToggleTheme struct{}

// SetTheme forces a theme.
type SetTheme struct {
	Theme Theme
}

func (Loaded) isAction()         {}
func (Retry) isAction()          {}
func (SetSearch) isAction()      {}
func (ToggleFavorite) isAction() {}
func (Select) isAction()         {}
func (Back) isAction()           {}
func (ToggleTheme) isAction()    {}
func (SetTheme) isAction()       {}

// Reduce applies a to s and returns the next state.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case Loaded:
		// The collection is populated once; later successes are ignored.
		if s.Loaded && s.LoadErr == nil {
			return s
		}
		s.Loaded = true
		s.LoadedAt = a.At
		if a.Err != nil {
			s.Records = dex.Collection{}
			s.LoadErr = a.Err
			s.SelectedID = 0
			return s
		}
		s.Records = a.Records
		s.LoadErr = nil

	case Retry:
		if s.LoadErr == nil {
			return s
		}
		s.Loaded = false
		s.LoadErr = nil

	case SetSearch:
		s.Search = a.Term

	case ToggleFavorite:
		if a.ID <= 0 {
			return s
		}
		s.Favorites = s.Favorites.Toggle(a.ID)

	case Select:
		if !s.Records.Contains(a.ID) {
			return s
		}
		s.SelectedID = a.ID

	case Back:
		s.SelectedID = 0

	case ToggleTheme:
		s.Theme = s.Theme.Toggle()

	case SetTheme:
		s.Theme = a.Theme
	}
	return s
}
