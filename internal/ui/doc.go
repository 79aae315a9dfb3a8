// Package ui composes the terminal interface with Bubble Tea.
//
// Core abstractions:
//   - View: a screen or major UI region with its own model, update, view (Elm-style)
//   - AppModel: root model routing between the home and team-lookup views
//   - History: stack-based route navigation (Esc walks back)
//   - FocusManager: tracks and rotates focus across the home panels
//   - Overlay: modal views (team picker) with a dismiss key
//
// Views never mutate each other: children emit messages, the root adapter
// applies them, preserving the parent-to-child data flow of the app model.
package ui
