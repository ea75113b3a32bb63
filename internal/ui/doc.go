// Package ui contains the Bubble Tea program that powers the menu bar overlay.
// The package is structured so the Model type focuses on message orchestration,
// while dedicated helpers own navigation, pointer handling, layout, and
// rendering.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - Update routes each tea.Msg through a typed handler registry so every
//     message kind is handled by a focused function (key presses, mouse
//     events, resizes, backend events). Messages the registry does not know
//     are offered to the embedded application.
//   - Navigation helpers (internal/ui/navigation.go) manage the stack of open
//     menu levels, hover movement, and the menu-mode latch. Mnemonic and
//     type-ahead handling lives in internal/ui/mnemonics.go, pointer hit
//     testing in internal/ui/pointer.go.
//
// State ownership:
//   - Per-level menu state lives in internal/ui/state.Level, which tracks
//     items, hover, type-ahead, and the scroll offset.
//   - The open path is the Model's path slice; path and levels always have the
//     same length, and each level's frame is computed lazily by
//     internal/ui/layout.go from the viewport and its anchor.
//   - Activations are handed to the command bus (internal/ui/command), which
//     turns them into messages for the embedded application.
//
// Backend interactions:
//   - An optional backend.Watcher streams directory snapshots; Update waits
//     for those events and hands them to the dispatcher, which refreshes the
//     file store backing dynamic menu sections. When the store changes the
//     model asks the application for a fresh tree and reconciles the open
//     path against it.
//
// This separation keeps Model.Update compact and makes it easier to test
// independent concerns (navigation, mnemonics, layout, rendering) without
// reasoning about the entire TUI at once.
package ui
