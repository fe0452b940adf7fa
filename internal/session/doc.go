// Package session holds the transient file and slot selection made
// before a print is started.
//
// The Selection type is deliberately free of I/O and rendering
// concerns: the UI derives panel visibility from it, and the command
// gateway consults CanAct as the local precondition gate. Its lifetime
// is the program run; nothing is persisted.
package session
