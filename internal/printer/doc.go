// Package printer provides an HTTP client for the kiosk printer API.
//
// # Overview
//
// This package defines the API client for the kiosk backend that fronts
// the physical printer. It handles HTTP communication, JSON
// serialization, and type-safe representation of device status and
// command outcomes.
//
// # API Endpoints
//
// The client supports the four kiosk endpoints:
//
//   - GET  /api/status: device status (print state, nozzle temperature)
//   - POST /api/print: start a print job for a file and AMS slot
//   - POST /api/cancel: abort the current print job
//   - GET  /api/light/{on|off}: switch the chamber light
//
// All endpoints return JSON envelopes carrying a success flag and, on
// failure, a server-supplied error message.
//
// # Error Handling
//
// Callers need to distinguish three failure classes, and the client
// keeps them apart:
//
//   - *APIError: the device answered with a well-formed response but
//     reported failure (success=false). The server's error text is
//     carried verbatim. The kiosk server emits these bodies on 4xx/5xx
//     responses too, so those are decoded rather than discarded.
//   - Transport errors: connection refused, timeout, DNS failure.
//     Wrapped with "execute request".
//   - Decode errors: a 2xx response whose body is not valid JSON.
//     Wrapped with "decode response".
//
// The status poller maps *APIError to an "error" connection state and
// everything else to "disconnected"; the command gateway surfaces
// *APIError messages verbatim and replaces the rest with a generic
// failure message.
//
// # Request Handling
//
// All requests use context for cancellation, set Accept and User-Agent
// headers, and run under a 5-second client timeout. The Client is safe
// for concurrent use.
//
// # Design Rationale
//
// The package is intentionally minimal: no caching (the poller owns the
// refresh cadence), no retries (single-attempt commands surfaced to the
// operator), no streaming. Requests are one-shot and independent.
package printer
