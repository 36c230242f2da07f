// Package serial is the host-side serial port used to talk to the LED
// console firmware over the ST-LINK virtual COM port.
package serial

import (
	"io"
)

// Port is a byte-stream serial connection. The abstraction keeps the
// terminal testable against an in-memory implementation.
type Port interface {
	io.ReadWriteCloser
}

// Config holds serial port parameters.
type Config struct {
	// Device path (e.g. "/dev/ttyACM0", "COM3").
	Device string

	// Baud rate; the firmware runs USART3 at 115200.
	Baud int

	// Read timeout in milliseconds (0 = blocking).
	ReadTimeout int
}

// DefaultConfig returns the settings matching the firmware's USART
// setup.
func DefaultConfig(device string) *Config {
	return &Config{
		Device: device,
		Baud:   115200,
	}
}
