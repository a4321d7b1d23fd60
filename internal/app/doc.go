// Package app wires configuration, the PokeAPI client, the loader and the
// UI together. It is the composition root for pokex.
//
// Run follows the same order every time:
//
//  1. config.Load reads ~/.config/pokex/config.toml (or -config).
//  2. The standard logger is routed to -log via tea.LogToFile, or dropped
//     while the TUI owns the terminal.
//  3. pokeapi.NewClient builds the HTTP client with the configured timeout.
//  4. newLoader wraps dex.Load and logs each attempt.
//  5. Either ui.Run starts the explorer, which issues the load from Init,
//     or Export loads once and writes a CSV/XLSX file.
//
// Configuration errors are fatal and returned from Run. Load failures are
// not: the UI shows them and offers a retry. In export mode they are
// returned so the caller can exit non-zero.
package app
