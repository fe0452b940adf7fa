package control

import (
	"context"
	"errors"
	"testing"

	"github.com/jetsetgo/kiosk/internal/printer"
	"github.com/jetsetgo/kiosk/internal/session"
)

// fakeAPI records calls and returns scripted errors.
type fakeAPI struct {
	startErr  error
	cancelErr error
	lightErr  error

	startCalls  int
	cancelCalls int
	lightCalls  []printer.Light

	gotFile string
	gotSlot string
}

func (f *fakeAPI) FetchStatus(ctx context.Context) (printer.Status, error) {
	return printer.Status{}, nil
}

func (f *fakeAPI) StartPrint(ctx context.Context, filename, slot string) error {
	f.startCalls++
	f.gotFile = filename
	f.gotSlot = slot
	return f.startErr
}

func (f *fakeAPI) CancelPrint(ctx context.Context) error {
	f.cancelCalls++
	return f.cancelErr
}

func (f *fakeAPI) SetLight(ctx context.Context, state printer.Light) error {
	f.lightCalls = append(f.lightCalls, state)
	return f.lightErr
}

type capture struct {
	msgs []string
}

func (c *capture) Notify(msg string) { c.msgs = append(c.msgs, msg) }

func yes(string) bool { return true }
func no(string) bool  { return false }

func TestStartPrint_MissingSelectionNeverContactsDevice(t *testing.T) {
	api := &fakeAPI{}
	var sel session.Selection
	notes := &capture{}
	g := NewGateway(api, &sel, notes, ConfirmFunc(yes))

	_, err := g.StartPrint(context.Background())
	if !errors.Is(err, ErrMissingSelection) {
		t.Fatalf("StartPrint error = %v, want ErrMissingSelection", err)
	}
	if api.startCalls != 0 {
		t.Fatalf("startCalls = %d, want 0 network requests", api.startCalls)
	}
	if len(notes.msgs) != 1 || notes.msgs[0] != msgMissingSelection {
		t.Fatalf("notifications = %v, want local rejection message", notes.msgs)
	}

	// File alone is not enough.
	sel.SelectFile("a.gcode")
	if _, err := g.StartPrint(context.Background()); !errors.Is(err, ErrMissingSelection) {
		t.Fatalf("StartPrint error = %v, want ErrMissingSelection", err)
	}
	if api.startCalls != 0 {
		t.Fatalf("startCalls = %d, want 0", api.startCalls)
	}
}

func TestStartPrint_SuccessClearsSelection(t *testing.T) {
	api := &fakeAPI{}
	var sel session.Selection
	sel.SelectFile("a.gcode")
	sel.SelectSlot("1")
	notes := &capture{}
	g := NewGateway(api, &sel, notes, ConfirmFunc(yes))

	active, err := g.StartPrint(context.Background())
	if err != nil {
		t.Fatalf("StartPrint returned error: %v", err)
	}
	if active.Filename != "a.gcode" || active.Slot != "1" {
		t.Fatalf("active = %+v, want the submitted pair", active)
	}
	if api.gotFile != "a.gcode" || api.gotSlot != "1" {
		t.Fatalf("request = (%q, %q), want selection values", api.gotFile, api.gotSlot)
	}
	if sel.CanAct() || sel.File() != "" || sel.Slot() != "" {
		t.Fatalf("selection not cleared after success: file=%q slot=%q", sel.File(), sel.Slot())
	}
}

func TestStartPrint_ServerErrorSurfacedVerbatim(t *testing.T) {
	api := &fakeAPI{startErr: &printer.APIError{Op: "print", Message: "File not found"}}
	var sel session.Selection
	sel.SelectFile("gone.gcode")
	sel.SelectSlot("2")
	notes := &capture{}
	g := NewGateway(api, &sel, notes, ConfirmFunc(yes))

	if _, err := g.StartPrint(context.Background()); err == nil {
		t.Fatal("StartPrint succeeded, want error")
	}
	if len(notes.msgs) != 1 || notes.msgs[0] != "File not found" {
		t.Fatalf("notifications = %v, want server text verbatim", notes.msgs)
	}
	// Failed starts keep the selection so the operator can retry.
	if !sel.CanAct() {
		t.Fatal("selection cleared on failure")
	}
}

func TestStartPrint_TransportErrorUsesGenericMessage(t *testing.T) {
	api := &fakeAPI{startErr: errors.New("execute request: connection refused")}
	var sel session.Selection
	sel.SelectFile("a.gcode")
	sel.SelectSlot("1")
	notes := &capture{}
	g := NewGateway(api, &sel, notes, ConfirmFunc(yes))

	if _, err := g.StartPrint(context.Background()); err == nil {
		t.Fatal("StartPrint succeeded, want error")
	}
	if len(notes.msgs) != 1 || notes.msgs[0] != msgStartFailed {
		t.Fatalf("notifications = %v, want generic transport message", notes.msgs)
	}
}

func TestCancelPrint_DeclinedSendsNothing(t *testing.T) {
	api := &fakeAPI{}
	var sel session.Selection
	g := NewGateway(api, &sel, &capture{}, ConfirmFunc(no))

	if err := g.CancelPrint(context.Background()); !errors.Is(err, ErrDeclined) {
		t.Fatalf("CancelPrint error = %v, want ErrDeclined", err)
	}
	if api.cancelCalls != 0 {
		t.Fatalf("cancelCalls = %d, want 0 after declined prompt", api.cancelCalls)
	}
}

func TestCancelPrint_Confirmed(t *testing.T) {
	api := &fakeAPI{}
	var sel session.Selection
	notes := &capture{}
	g := NewGateway(api, &sel, notes, ConfirmFunc(yes))

	if err := g.CancelPrint(context.Background()); err != nil {
		t.Fatalf("CancelPrint returned error: %v", err)
	}
	if api.cancelCalls != 1 {
		t.Fatalf("cancelCalls = %d, want 1", api.cancelCalls)
	}
	if len(notes.msgs) != 1 || notes.msgs[0] != "Print cancelled" {
		t.Fatalf("notifications = %v", notes.msgs)
	}
}

func TestToggleLight_CommitsOnlyOnSuccess(t *testing.T) {
	api := &fakeAPI{}
	var sel session.Selection
	g := NewGateway(api, &sel, &capture{}, ConfirmFunc(yes))

	got, err := g.ToggleLight(context.Background(), printer.LightOff)
	if err != nil {
		t.Fatalf("ToggleLight returned error: %v", err)
	}
	if got != printer.LightOn {
		t.Fatalf("state = %v, want on after one successful toggle", got)
	}
	if len(api.lightCalls) != 1 || api.lightCalls[0] != printer.LightOn {
		t.Fatalf("lightCalls = %v, want one request for on", api.lightCalls)
	}

	// An unset displayed state is treated as off.
	got, err = g.ToggleLight(context.Background(), printer.Light(""))
	if err != nil || got != printer.LightOn {
		t.Fatalf("toggle from unset = (%v, %v), want on", got, err)
	}
}

func TestToggleLight_FailureLeavesStateUnchanged(t *testing.T) {
	api := &fakeAPI{lightErr: &printer.APIError{Op: "light", Message: "Invalid action"}}
	var sel session.Selection
	notes := &capture{}
	g := NewGateway(api, &sel, notes, ConfirmFunc(yes))

	got, err := g.ToggleLight(context.Background(), printer.LightOff)
	if err == nil {
		t.Fatal("ToggleLight succeeded, want error")
	}
	if got != printer.LightOff {
		t.Fatalf("state = %v, want unchanged off after failure", got)
	}
	if len(notes.msgs) != 1 || notes.msgs[0] != "Invalid action" {
		t.Fatalf("notifications = %v, want server text verbatim", notes.msgs)
	}
}
