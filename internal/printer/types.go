package printer

// StatusResponse mirrors the payload returned by /api/status.
type StatusResponse struct {
	Success bool    `json:"success"`
	Status  *Status `json:"status"`
	Error   string  `json:"error"`
}

// Status carries the device-reported fields the panel displays. Both
// fields are optional on the wire; a nil pointer means the device sent
// no reading, which is distinct from an empty or zero value.
type Status struct {
	PrintState *string  `json:"print_state"`
	NozzleTemp *float64 `json:"nozzle_temp"`
}

// CommandResponse mirrors the payload returned by the one-shot command
// endpoints (/api/print, /api/cancel, /api/light/{on|off}).
type CommandResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// printRequest is the body for POST /api/print.
type printRequest struct {
	Filename string `json:"filename"`
	AMSSlot  string `json:"ams_slot"`
}

// Light is the chamber light state as encoded in the API path.
type Light string

// Light states.
const (
	LightOn  Light = "on"
	LightOff Light = "off"
)

// Opposite returns the toggled light state.
func (l Light) Opposite() Light {
	if l == LightOn {
		return LightOff
	}
	return LightOn
}

// APIError is a failure the device reported in a well-formed response
// (success=false). It is distinct from transport or decode errors so
// callers can branch on the failure class with errors.As.
type APIError struct {
	Op      string // endpoint shorthand: "status", "print", "cancel", "light"
	Message string // server-supplied error text, may be empty
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message == "" {
		return "printer reported " + e.Op + " failure"
	}
	return e.Message
}
