// Package state holds the pokex application state and its reducer.
//
// # Overview
//
// Everything the UI shows is derived from a single State value: the loaded
// collection, the search term, the favorites set, the selection and the
// theme. The UI never edits these fields directly. It turns each key press or
// load result into an Action and calls Reduce:
//
//	st = state.Reduce(st, state.SetSearch{Term: "fire"})
//	visible := st.Visible()
//
// # Derived Values
//
//   - Mode(): grid when nothing is selected, detail otherwise
//   - Visible(): dex.Filter over the collection with the current search term
//   - Selected(): the selected record looked up by ID, so favorite state is
//     always read fresh from Favorites
//
// # Load Semantics
//
// The collection is populated once. A failed load records LoadErr and leaves
// the collection empty; Retry clears the error so the UI can issue the load
// again. Once a load has succeeded, further Loaded actions are ignored.
//
// # Concurrency
//
// State is a plain value owned by the Bubble Tea event loop. The load runs in
// a tea.Cmd goroutine and only reaches State through a Loaded action, so no
// locking is needed.
package state
