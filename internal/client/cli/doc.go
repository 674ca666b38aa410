// Package cli provides the interactive NutriApp command-line client.
//
// It wires configuration, the local history cache, the backend API
// services, and an interactive REPL. Typical flow: sign in, analyse a
// meal photo, confirm the save, then browse history and daily progress.
//
// Key features:
//   - Register / Login / Logout against the auth provider
//   - Analyse a meal image and save the confirmed result
//   - History with range presets, sorting, and offline fallback
//   - Daily progress against the profile's nutrition targets
//   - Export history to a spreadsheet (server-side or from the cache)
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
package cli
