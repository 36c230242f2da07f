package core

// LED identifies one of the three user LEDs on the Nucleo-H753ZI.
type LED uint8

const (
	Green  LED = iota // PB0 (LD1)
	Yellow            // PE1 (LD2)
	Red               // PB14 (LD3)
	numLEDs
)

// GPIODriver is the abstract board interface the apps use for the LEDs and
// the user button. Board-specific code registers an implementation at boot;
// tests register fakes. All methods are called from the main loop only.
type GPIODriver interface {
	// SetLED drives the pin behind the given LED high (on) or low (off).
	SetLED(led LED, on bool)

	// ButtonDown reports whether the user button is currently held.
	// The button is active low on the board; implementations return the
	// logical "pressed" state.
	ButtonDown() bool
}

// ClockDriver exposes the free-running microsecond counter (TIM2 on the
// board). A single 32-bit volatile read; wraps after about 71 minutes.
type ClockDriver interface {
	Micros() uint32
}

// Global singletons used by app code.
var (
	gpioDriver  GPIODriver
	clockDriver ClockDriver
)

// SetGPIODriver is called by target-specific code to register its driver.
func SetGPIODriver(d GPIODriver) {
	gpioDriver = d
}

// MustGPIO returns the configured driver or panics if missing.
func MustGPIO() GPIODriver {
	if gpioDriver == nil {
		panic("GPIO driver not configured")
	}
	return gpioDriver
}

// SetClockDriver is called by target-specific code to register its driver.
func SetClockDriver(d ClockDriver) {
	clockDriver = d
}

// MustClock returns the configured driver or panics if missing.
func MustClock() ClockDriver {
	if clockDriver == nil {
		panic("clock driver not configured")
	}
	return clockDriver
}
