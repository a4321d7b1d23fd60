// Package ui provides the terminal explorer for pokex.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. Model owns a state.State and every
// change to it goes through state.Reduce via Model.dispatch; the view is a
// pure function of that state plus a few presentation fields (cursor,
// window size, overlays). The collection is loaded once by a tea.Cmd that
// wraps the Loader passed in Options.
//
// # Views
//
//   - Grid: cards for the visible records, narrowed by the search term.
//   - Detail: types, height, weight, base stats and abilities of the
//     selected record.
//
// Help (?) and the session log (L) are overlays on top of either view.
//
// # Key Bindings
//
//   - /: Edit the search term (enter keeps it, esc clears it)
//   - arrows, h/j/k/l: Move the grid cursor or scroll the detail pane
//   - g/G: First/last card
//   - enter: Open the card under the cursor
//   - esc, backspace, b: Return to the grid
//   - f: Toggle favorite on the focused card or the open record
//   - T: Toggle light/dark theme
//   - r: Retry after a failed load
//   - L: Session log overlay
//   - ?: Help
//   - q or Ctrl+C: Quit
package ui
