package control

import (
	"context"
	"errors"

	"github.com/jetsetgo/kiosk/internal/printer"
	"github.com/jetsetgo/kiosk/internal/session"
)

// Notifier receives user-facing outcome messages. The TUI backs it with
// the notice line; tests capture messages with NotifyFunc.
type Notifier interface {
	Notify(msg string)
}

// NotifyFunc adapts a function to the Notifier interface.
type NotifyFunc func(msg string)

// Notify implements Notifier.
func (f NotifyFunc) Notify(msg string) { f(msg) }

// Confirmer answers yes/no prompts before destructive commands. The TUI
// backs it with a modal; tests use deterministic fakes.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to the Confirmer interface.
type ConfirmFunc func(prompt string) bool

// Confirm implements Confirmer.
func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// ErrMissingSelection is returned when a print start is attempted
// before both a file and a slot are selected. The rejection is local;
// the device is never contacted.
var ErrMissingSelection = errors.New("no file and slot selected")

// ErrDeclined is returned when the confirmer rejects a command.
var ErrDeclined = errors.New("command declined")

// Outcome messages surfaced through the notifier. Server-reported
// errors are surfaced verbatim instead and never conflated with the
// generic transport message.
const (
	msgMissingSelection = "Select a file and a material slot first"
	msgStartFailed      = "Error starting print. Check the printer connection."
	msgCancelFailed     = "Error cancelling print. Check the printer connection."
	msgLightFailed      = "Error controlling light. Check the printer connection."
	cancelPrompt        = "Cancel the current print?"
)

// Gateway issues one-shot commands against the printer. Commands are
// independent single attempts: no retries, no coordination with the
// status poller beyond sharing the endpoint.
type Gateway struct {
	client  printer.API
	sel     *session.Selection
	notify  Notifier
	confirm Confirmer
}

// NewGateway wires a Gateway with its collaborators. All four are
// required.
func NewGateway(client printer.API, sel *session.Selection, notify Notifier, confirm Confirmer) *Gateway {
	return &Gateway{client: client, sel: sel, notify: notify, confirm: confirm}
}

// StartPrint submits the current selection as a print job. When the
// selection is incomplete the attempt is rejected locally. On success
// the selection is cleared and the submitted pair is returned for the
// active-print view.
func (g *Gateway) StartPrint(ctx context.Context) (session.ActivePrint, error) {
	if !g.sel.CanAct() {
		g.notify.Notify(msgMissingSelection)
		return session.ActivePrint{}, ErrMissingSelection
	}

	active := session.ActivePrint{Filename: g.sel.File(), Slot: g.sel.Slot()}
	if err := g.client.StartPrint(ctx, active.Filename, active.Slot); err != nil {
		g.notify.Notify(commandMessage(err, msgStartFailed))
		return session.ActivePrint{}, err
	}

	g.sel.Reset()
	g.notify.Notify("Print started: " + active.Filename)
	return active, nil
}

// CancelPrint aborts the current print after the confirmer approves.
// A declined prompt sends nothing to the device.
func (g *Gateway) CancelPrint(ctx context.Context) error {
	if !g.confirm.Confirm(cancelPrompt) {
		return ErrDeclined
	}
	if err := g.client.CancelPrint(ctx); err != nil {
		g.notify.Notify(commandMessage(err, msgCancelFailed))
		return err
	}
	g.notify.Notify("Print cancelled")
	return nil
}

// ToggleLight switches the light to the opposite of the displayed
// state. The returned state is what the UI should display: the flip is
// committed only after the device confirms, so any failure returns the
// current state unchanged.
func (g *Gateway) ToggleLight(ctx context.Context, current printer.Light) (printer.Light, error) {
	target := current.Opposite()
	if err := g.client.SetLight(ctx, target); err != nil {
		g.notify.Notify(commandMessage(err, msgLightFailed))
		return current, err
	}
	return target, nil
}

// commandMessage picks the user-facing text for a command failure: the
// server's own message verbatim when it reported one, the generic
// fallback for transport and parse failures.
func commandMessage(err error, generic string) string {
	var apiErr *printer.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Error()
	}
	return generic
}
