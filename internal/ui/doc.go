// Package ui provides the terminal user interface for the kiosk panel.
//
// # Architecture Overview
//
// The UI is a Bubble Tea model. It owns the presentation half of the
// control panel: the selection panes, the running-job view, the
// connection/status header, the notice line, and the cancel
// confirmation modal. The domain halves live elsewhere (the selection
// state machine in session, command dispatch in control, poll state in
// state) and stay testable without a rendering surface.
//
// # Event Flow
//
//  1. Run() starts the Bubble Tea program in the alternate screen
//  2. A one-second UI tick re-reads state.Store snapshots, so device
//     poll results are rendered promptly regardless of poll cadence
//  3. Selection keys mutate the session and move pane focus
//  4. Command keys dispatch gateway calls as tea commands; their result
//     messages update the job view, light state, and notice line
//  5. Quitting tears down the program; the poller is stopped by the
//     composition root's deferred Stop
//
// # Views
//
//   - Selection: file picker, and a slot picker revealed once a file
//     (or slot) is chosen; a ready line appears when both are set
//   - Now Printing: shown after a successful start, hidden after a
//     confirmed cancel
//   - Confirm modal: gates the cancel command; declining sends nothing
//   - Help overlay: key bindings, any key closes
//
// # Gateway collaborators
//
// The model feeds the command gateway a noticeRelay (its Notifier) and
// a modalApproved Confirmer: the modal collects the yes/no answer in
// the Update loop, and only an approved answer dispatches the cancel
// command at all.
//
// # Key Bindings
//
//   - ↑/k ↓/j: move within the focused pane
//   - enter/space: select the highlighted file or slot
//   - tab: switch pane
//   - s: start print (rejected locally until file and slot are set)
//   - c: cancel print (after confirmation)
//   - l: toggle the chamber light
//   - r: refresh the file list
//   - esc: clear the selection
//   - T: cycle theme (persisted to prefs)
//   - h/?: help, q/Ctrl+C: quit
package ui
