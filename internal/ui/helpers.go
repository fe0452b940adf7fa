package ui

import (
	"strconv"
	"strings"
	"time"

	"github.com/jetsetgo/kiosk/internal/state"
)

// formatTemp renders the nozzle temperature, or the no-reading sentinel
// when the device omitted it.
func formatTemp(snap state.Snapshot) string {
	if !snap.HasNozzleTemp {
		return "--"
	}
	return strconv.FormatFloat(snap.NozzleTemp, 'f', -1, 64) + "°C"
}

// printStateLabel renders the device print state, or the unknown
// sentinel before the first successful poll.
func printStateLabel(snap state.Snapshot) string {
	if snap.PrintState == "" {
		return state.PrintStateUnknown
	}
	return snap.PrintState
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func humanizeDuration(d time.Duration) string {
	switch {
	case d < time.Second:
		return "now"
	case d < time.Minute:
		return strconv.Itoa(int(d.Seconds())) + "s ago"
	case d < time.Hour:
		return strconv.Itoa(int(d.Minutes())) + "m ago"
	default:
		return strconv.Itoa(int(d.Hours())) + "h ago"
	}
}

// truncate shortens a name to limit runes with a trailing ellipsis.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	runes := []rune(value)
	if limit <= 0 || len(runes) <= limit {
		return value
	}
	if limit == 1 {
		return "…"
	}
	return string(runes[:limit-1]) + "…"
}
