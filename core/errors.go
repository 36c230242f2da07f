package core

import "errors"

// ErrHardwareTimeout is returned when a ready flag (oscillator startup,
// backup-domain access) does not come up within its poll budget. Callers
// are expected to halt visibly, typically by holding the red LED.
var ErrHardwareTimeout = errors.New("hardware: timeout waiting for ready flag")
