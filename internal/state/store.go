package state

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jetsetgo/kiosk/internal/printer"
)

// Connection classifies the outcome of the most recent status poll.
type Connection int

// Connection states. Unknown only occurs before the first poll lands.
const (
	ConnectionUnknown Connection = iota
	ConnectionConnected
	ConnectionError
	ConnectionDisconnected
)

// String returns the display label for the connection state.
func (c Connection) String() string {
	switch c {
	case ConnectionConnected:
		return "Connected"
	case ConnectionError:
		return "Error"
	case ConnectionDisconnected:
		return "Disconnected"
	default:
		return "Connecting"
	}
}

// PrintStateUnknown is displayed when the device omits print_state.
const PrintStateUnknown = "Unknown"

// Snapshot represents the latest poll data available to the UI.
type Snapshot struct {
	Connection    Connection
	PrintState    string
	NozzleTemp    float64
	HasNozzleTemp bool
	LastUpdated   time.Time
	LastError     error
}

// Store coordinates concurrent updates to the snapshot. The poller is
// the single writer; the UI reads snapshots on its own cadence.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update records the outcome of one poll tick. On success the status
// fields are rewritten wholesale. On failure the previous fields are
// kept and only the connection state degrades: a device-reported
// failure (*printer.APIError) becomes ConnectionError, anything else
// (unreachable, malformed body) becomes ConnectionDisconnected.
func (s *Store) Update(status printer.Status, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.LastUpdated = time.Now()

	if err != nil {
		s.snapshot.LastError = err
		var apiErr *printer.APIError
		if errors.As(err, &apiErr) {
			s.snapshot.Connection = ConnectionError
		} else {
			s.snapshot.Connection = ConnectionDisconnected
		}
		return
	}

	s.snapshot.Connection = ConnectionConnected
	s.snapshot.LastError = nil

	if status.PrintState != nil {
		s.snapshot.PrintState = *status.PrintState
	} else {
		s.snapshot.PrintState = PrintStateUnknown
	}
	if status.NozzleTemp != nil {
		s.snapshot.NozzleTemp = *status.NozzleTemp
		s.snapshot.HasNozzleTemp = true
	} else {
		s.snapshot.NozzleTemp = 0
		s.snapshot.HasNozzleTemp = false
	}
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}
