package session

// Selection holds the in-progress file and slot choice prior to issuing
// a print command. Pure state, no I/O; the zero value is an empty
// selection.
type Selection struct {
	file string
	slot string
}

// SelectFile records the chosen print file. The most recent choice
// wins; exactly one file is selected at a time.
func (s *Selection) SelectFile(name string) {
	s.file = name
}

// SelectSlot records the chosen AMS slot. Independent of SelectFile;
// the UI gates advancing on both being set, not on call order.
func (s *Selection) SelectSlot(id string) {
	s.slot = id
}

// Reset clears both fields. Idempotent.
func (s *Selection) Reset() {
	s.file = ""
	s.slot = ""
}

// CanAct reports whether both a file and a slot are selected. It is the
// local gate before the start-print command; a false result means the
// attempt must be rejected without contacting the device.
func (s *Selection) CanAct() bool {
	return s.file != "" && s.slot != ""
}

// File returns the selected file name, or "" when none is selected.
func (s *Selection) File() string { return s.file }

// Slot returns the selected slot id, or "" when none is selected.
func (s *Selection) Slot() string { return s.slot }

// ActivePrint is the job view shown after a successful start. It is a
// value captured from the selection at submit time and owns no link
// back to it.
type ActivePrint struct {
	Filename string
	Slot     string
}
