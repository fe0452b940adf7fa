// Package control implements the one-shot command gateway between the
// panel and the printer API.
//
// # Overview
//
// Each operation is a single attempt with the same shape: build
// request, await response, branch on the success flag, update
// dependent state, report the outcome through the injected Notifier.
// No operation retries; the operator (or the next poll tick) is the
// only recovery path.
//
// # Failure classes
//
// The gateway keeps three error kinds apart:
//
//  1. Local precondition failure (missing selection): rejected before
//     any network call, ErrMissingSelection.
//  2. Server-reported failure (*printer.APIError): the server's error
//     text is surfaced verbatim; no local state is mutated.
//  3. Transport/parse failure: a generic message distinct from the
//     server-error case.
//
// # Injected collaborators
//
// Notifier and Confirmer replace blocking alert/confirm surfaces
// so the state machine is testable without a rendering surface. The
// cancel command consults the Confirmer before sending anything; a
// declined prompt results in zero device contact.
//
// ToggleLight never flips speculatively: the new state is committed
// only after the device confirms, so a rejected request leaves the
// displayed state untouched.
package control
