// Package files lists the queued print files the panel can submit.
//
// The kiosk server and the panel share a print-files directory; this
// package scans it for the extensions the printer accepts (.3mf,
// .gcode), recording name and size for the file picker. A directory
// that does not exist yet is an empty queue, not an error.
package files
