package state

import (
	"strings"
	"time"

	"github.com/five82/pokex/internal/dex"
)

// Mode is the top-level view mode.
type Mode int

const (
	ModeGrid Mode = iota
	ModeDetail
)

func (m Mode) String() string {
	if m == ModeDetail {
		return "detail"
	}
	return "grid"
}

// Theme is the light/dark flag. The zero value is light.
type Theme int

const (
	ThemeLight Theme = iota
	ThemeDark
)

func (t Theme) String() string {
	if t == ThemeDark {
		return "dark"
	}
	return "light"
}

// Toggle flips between light and dark.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// ParseTheme maps "dark" (any case) to ThemeDark and everything else to light.
func ParseTheme(name string) Theme {
	if strings.EqualFold(strings.TrimSpace(name), "dark") {
		return ThemeDark
	}
	return ThemeLight
}

// State is the whole application state. It is a value: Reduce returns a new
// State and never mutates its input.
type State struct {
	Records    dex.Collection
	Loaded     bool
	LoadErr    error
	LoadedAt   time.Time
	Search     string
	Favorites  dex.Favorites
	SelectedID int // 0 means grid mode
	Theme      Theme
}

// Mode derives the view mode from the selection.
func (s State) Mode() Mode {
	if s.SelectedID != 0 {
		return ModeDetail
	}
	return ModeGrid
}

// Visible is the filtered subset shown in the grid.
func (s State) Visible() []dex.Record {
	return dex.Filter(s.Records.All(), s.Search)
}

// Selected resolves the selected record against the current collection.
func (s State) Selected() (dex.Record, bool) {
	if s.SelectedID == 0 {
		return dex.Record{}, false
	}
	return s.Records.Get(s.SelectedID)
}

// IsFavorite reports whether id is favorited.
func (s State) IsFavorite(id int) bool {
	return s.Favorites.Has(id)
}

// Loading is true until the first load result arrives.
func (s State) Loading() bool {
	return !s.Loaded
}
