package ui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jetsetgo/kiosk/internal/config"
	"github.com/jetsetgo/kiosk/internal/files"
	"github.com/jetsetgo/kiosk/internal/printer"
	"github.com/jetsetgo/kiosk/internal/session"
	"github.com/jetsetgo/kiosk/internal/state"
)

// scriptedAPI implements printer.API with scripted errors.
type scriptedAPI struct {
	startErr  error
	cancelErr error
	lightErr  error

	startCalls  int
	cancelCalls int
	lights      []printer.Light

	gotFile string
	gotSlot string
}

func (s *scriptedAPI) FetchStatus(ctx context.Context) (printer.Status, error) {
	return printer.Status{}, nil
}

func (s *scriptedAPI) StartPrint(ctx context.Context, filename, slot string) error {
	s.startCalls++
	s.gotFile = filename
	s.gotSlot = slot
	return s.startErr
}

func (s *scriptedAPI) CancelPrint(ctx context.Context) error {
	s.cancelCalls++
	return s.cancelErr
}

func (s *scriptedAPI) SetLight(ctx context.Context, l printer.Light) error {
	s.lights = append(s.lights, l)
	return s.lightErr
}

func newTestModel(api printer.API) Model {
	cfg := config.Config{Slots: config.DefaultSlots()}
	m := New(Options{
		Client:  api,
		Store:   &state.Store{},
		Session: &session.Selection{},
		Config:  &cfg,
		Files: []files.PrintFile{
			{Name: "bracket.gcode", Size: 1024},
			{Name: "case.3mf", Size: 2048},
		},
		PrefsPath: "/dev/null/unused",
	})
	m.ready = true
	m.width = 100
	m.height = 40
	return m
}

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	model, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", updated)
	}
	return model, cmd
}

// run executes a command and feeds its message back into the model.
func run(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command, got nil")
	}
	updated, _ := m.Update(cmd())
	return updated.(Model)
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEscape}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
)

func TestSelectionFlow_StartPrint(t *testing.T) {
	api := &scriptedAPI{}
	m := newTestModel(api)

	// Select the first file; focus advances to the slot pane.
	m, _ = press(t, m, keyEnter)
	if m.sess.File() != "bracket.gcode" {
		t.Fatalf("File = %q, want bracket.gcode", m.sess.File())
	}
	if m.focused != paneSlots {
		t.Fatalf("focused = %v, want slot pane", m.focused)
	}
	if !m.slotPaneVisible() {
		t.Fatal("slot pane not revealed after file selection")
	}

	// Pick the second slot.
	m, _ = press(t, m, keyDown)
	m, _ = press(t, m, keyEnter)
	if m.sess.Slot() != "2" {
		t.Fatalf("Slot = %q, want 2", m.sess.Slot())
	}
	if !m.sess.CanAct() {
		t.Fatal("CanAct = false with both selections set")
	}

	// Start the print and apply the result.
	m, cmd := press(t, m, keyRune('s'))
	m = run(t, m, cmd)

	if api.startCalls != 1 || api.gotFile != "bracket.gcode" || api.gotSlot != "2" {
		t.Fatalf("request = %d calls (%q, %q), want 1 call with the selection", api.startCalls, api.gotFile, api.gotSlot)
	}
	if m.active == nil || m.active.Filename != "bracket.gcode" || m.active.Slot != "2" {
		t.Fatalf("active = %+v, want the submitted pair", m.active)
	}
	if m.sess.CanAct() || m.sess.File() != "" {
		t.Fatal("selection not cleared after successful start")
	}
	if m.notice == "" {
		t.Fatal("notice line empty after start")
	}
}

func TestStartPrint_WithoutSelectionStaysLocal(t *testing.T) {
	api := &scriptedAPI{}
	m := newTestModel(api)

	m, cmd := press(t, m, keyRune('s'))
	m = run(t, m, cmd)

	if api.startCalls != 0 {
		t.Fatalf("startCalls = %d, want 0 without a selection", api.startCalls)
	}
	if m.active != nil {
		t.Fatalf("active = %+v, want nil", m.active)
	}
	if m.notice == "" {
		t.Fatal("notice line empty after local rejection")
	}
}

func TestSelectFile_MostRecentWins(t *testing.T) {
	api := &scriptedAPI{}
	m := newTestModel(api)

	m, _ = press(t, m, keyEnter) // bracket.gcode, focus moves to slots
	m, _ = press(t, m, keyTab)   // back to files
	m, _ = press(t, m, keyDown)
	m, _ = press(t, m, keyEnter) // case.3mf

	if m.sess.File() != "case.3mf" {
		t.Fatalf("File = %q, want the most recent selection", m.sess.File())
	}
}

func TestClearSelectionResetsSession(t *testing.T) {
	api := &scriptedAPI{}
	m := newTestModel(api)

	m, _ = press(t, m, keyEnter)
	m, _ = press(t, m, keyEnter)
	if !m.sess.CanAct() {
		t.Fatal("CanAct = false after selecting file and slot")
	}

	m, _ = press(t, m, keyEsc)
	if m.sess.CanAct() || m.sess.File() != "" || m.sess.Slot() != "" {
		t.Fatal("selection not cleared by esc")
	}
	if m.focused != paneFiles {
		t.Fatalf("focused = %v, want file pane after reset", m.focused)
	}
}

func TestCancel_DeclinedSendsNothing(t *testing.T) {
	api := &scriptedAPI{}
	m := newTestModel(api)
	m.active = &session.ActivePrint{Filename: "bracket.gcode", Slot: "1"}

	m, _ = press(t, m, keyRune('c'))
	if !m.confirming {
		t.Fatal("confirm modal not shown")
	}

	m, cmd := press(t, m, keyRune('n'))
	if cmd != nil {
		t.Fatal("declined confirm produced a command")
	}
	if m.confirming {
		t.Fatal("modal still open after decline")
	}
	if api.cancelCalls != 0 {
		t.Fatalf("cancelCalls = %d, want 0 after decline", api.cancelCalls)
	}
	if m.active == nil {
		t.Fatal("active print view hidden without a confirmed cancel")
	}
}

func TestCancel_ConfirmedHidesActiveView(t *testing.T) {
	api := &scriptedAPI{}
	m := newTestModel(api)
	m.active = &session.ActivePrint{Filename: "bracket.gcode", Slot: "1"}

	m, _ = press(t, m, keyRune('c'))
	m, cmd := press(t, m, keyRune('y'))
	m = run(t, m, cmd)

	if api.cancelCalls != 1 {
		t.Fatalf("cancelCalls = %d, want 1", api.cancelCalls)
	}
	if m.active != nil {
		t.Fatalf("active = %+v, want nil after confirmed cancel", m.active)
	}
}

func TestView_RendersSnapshot(t *testing.T) {
	m := newTestModel(&scriptedAPI{})

	updated, _ := m.Update(snapshotMsg(state.Snapshot{
		Connection:    state.ConnectionConnected,
		PrintState:    "RUNNING",
		NozzleTemp:    210,
		HasNozzleTemp: true,
	}))
	m = updated.(Model)

	view := m.View()
	for _, want := range []string{"RUNNING", "210°C", "Connected"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestView_NoReadingSentinel(t *testing.T) {
	m := newTestModel(&scriptedAPI{})

	view := m.View()
	if !strings.Contains(view, "--") {
		t.Error("View() missing the no-reading temperature sentinel")
	}
	if !strings.Contains(view, state.PrintStateUnknown) {
		t.Error("View() missing the unknown print state before the first poll")
	}
}

func TestToggleLight_FlipsOnlyOnSuccess(t *testing.T) {
	api := &scriptedAPI{}
	m := newTestModel(api)

	m, cmd := press(t, m, keyRune('l'))
	m = run(t, m, cmd)

	if m.light != printer.LightOn {
		t.Fatalf("light = %v, want on after one successful toggle", m.light)
	}
	if len(api.lights) != 1 || api.lights[0] != printer.LightOn {
		t.Fatalf("requests = %v, want a single on request", api.lights)
	}

	// A failing toggle must leave the displayed state unchanged.
	api.lightErr = &printer.APIError{Op: "light", Message: "Invalid action"}
	m, cmd = press(t, m, keyRune('l'))
	m = run(t, m, cmd)

	if m.light != printer.LightOn {
		t.Fatalf("light = %v, want unchanged on after failure", m.light)
	}
	if m.notice != "Invalid action" {
		t.Fatalf("notice = %q, want the server text verbatim", m.notice)
	}
}
