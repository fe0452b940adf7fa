// Package state provides thread-safe poll-state management for kiosk.
//
// # Overview
//
// This package implements a simple store for sharing the latest device
// status between the background poller and the UI. It is the
// coordination point where poll results meet rendering.
//
// # Architecture
//
// The package follows a producer-consumer pattern:
//
//	Producer (Poller):             Consumer (UI):
//	┌────────────────┐            ┌────────────────┐
//	│ FetchStatus()  │            │                │
//	│      ↓         │            │                │
//	│ store.Update() │───────────→│ store.Snapshot()│
//	│      ↓         │  (mutex)   │      ↓         │
//	│  repeat...     │            │  render header │
//	└────────────────┘            └────────────────┘
//
// # Update Semantics
//
// Update records one poll outcome and keeps the three failure classes
// apart:
//
//	// Success: rewrite status fields wholesale
//	store.Update(status, nil)
//	→ Connection = ConnectionConnected
//	→ PrintState/NozzleTemp overwritten (absent fields become
//	  the Unknown / no-reading sentinels, never stale values)
//
//	// Device-reported failure (success=false from the API)
//	store.Update(printer.Status{}, apiErr)
//	→ Connection = ConnectionError
//	→ status fields unchanged
//
//	// Transport or parse failure
//	store.Update(printer.Status{}, err)
//	→ Connection = ConnectionDisconnected
//	→ status fields unchanged
//
// Keeping previous readings on failure lets the header continue to show
// the last known state while the connection indicator degrades, so the
// operator can tell "device says no" from "device unreachable".
//
// # Concurrency Model
//
// The Store uses a readers-writer lock: Update acquires the write lock,
// Snapshot the read lock. There is a single writer (the poller) and the
// UI reads on its own refresh cadence. The lock is held only for the
// copy, never across network I/O or rendering.
//
// # Testing Considerations
//
// The Store is safe to construct with its zero value; Snapshot on a
// fresh store reports ConnectionUnknown ("Connecting") until the first
// poll lands.
package state
