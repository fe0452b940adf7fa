package ui

import (
	"testing"
	"time"

	"github.com/jetsetgo/kiosk/internal/state"
)

func TestFormatTemp(t *testing.T) {
	tests := []struct {
		name string
		snap state.Snapshot
		want string
	}{
		{"no reading", state.Snapshot{}, "--"},
		{"whole degrees", state.Snapshot{NozzleTemp: 210, HasNozzleTemp: true}, "210°C"},
		{"fractional", state.Snapshot{NozzleTemp: 210.5, HasNozzleTemp: true}, "210.5°C"},
		{"zero reading", state.Snapshot{NozzleTemp: 0, HasNozzleTemp: true}, "0°C"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatTemp(tt.snap); got != tt.want {
				t.Errorf("formatTemp() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrintStateLabel(t *testing.T) {
	if got := printStateLabel(state.Snapshot{}); got != state.PrintStateUnknown {
		t.Errorf("printStateLabel(empty) = %q, want %q", got, state.PrintStateUnknown)
	}
	if got := printStateLabel(state.Snapshot{PrintState: "RUNNING"}); got != "RUNNING" {
		t.Errorf("printStateLabel(RUNNING) = %q", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want int
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{0, 0, -1, 0}, // empty range collapses to lo
	}

	for _, tt := range tests {
		if got := clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("clamp(%d, %d, %d) = %d, want %d", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestHumanizeDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{500 * time.Millisecond, "now"},
		{3 * time.Second, "3s ago"},
		{2 * time.Minute, "2m ago"},
		{3 * time.Hour, "3h ago"},
	}

	for _, tt := range tests {
		if got := humanizeDuration(tt.d); got != tt.want {
			t.Errorf("humanizeDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		value string
		limit int
		want  string
	}{
		{"short", "abc", 10, "abc"},
		{"exact", "abcde", 5, "abcde"},
		{"long", "abcdef", 5, "abcd…"},
		{"multibyte", "ベンチマーク", 4, "ベンチ…"},
		{"trims space", "  abc  ", 10, "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.value, tt.limit); got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.value, tt.limit, got, tt.want)
			}
		})
	}
}
