// Package app provides the orchestration layer for the kiosk panel.
//
// # Overview
//
// This package wires together configuration, polling, state management,
// and the UI. It is the composition root where all dependencies are
// initialized and connected.
//
// # Architecture
//
//  1. Load kiosk configuration from ~/.config/kiosk/config.toml
//  2. Initialize the HTTP client for the printer API
//  3. Create the shared state.Store for UI and poller coordination
//  4. Start the device poller
//  5. List the queued print files for the file picker
//  6. Start the TUI and block until the operator exits
//
// # Polling Behavior
//
// The Poller is a two-state machine (idle, polling). Start performs one
// immediate poll and then repeats at a fixed interval (default 3s). A
// tick that finds a previous request still in flight is skipped rather
// than allowed to overlap, so snapshot writes always reflect the most
// recently issued request. Stop cancels the timer exactly once however
// many times it is called, and is safe on a poller that never started;
// Run defers it so no timer outlives the UI.
//
// Poll failures are recoverable: they degrade the connection state in
// the store and the next tick is the retry. Fatal errors
// (config parse failure, client init, unreadable print-files dir) are
// returned from Run instead.
package app
