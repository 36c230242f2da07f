package core

// Shadow of the commanded LED states. Written from the main loop only, so
// plain booleans are fine; interrupt handlers never touch the LEDs.
var ledOn [numLEDs]bool

// SetLEDState drives one LED and records the new state.
func SetLEDState(led LED, on bool) {
	MustGPIO().SetLED(led, on)
	ledOn[led] = on
}

// ToggleLED flips one LED and returns its new state.
func ToggleLED(led LED) bool {
	SetLEDState(led, !ledOn[led])
	return ledOn[led]
}

// LEDIsOn reports the commanded state of one LED.
func LEDIsOn(led LED) bool {
	return ledOn[led]
}

// AllLEDsOn turns every LED on.
func AllLEDsOn() {
	for led := LED(0); led < numLEDs; led++ {
		SetLEDState(led, true)
	}
}

// AllLEDsOff turns every LED off.
func AllLEDsOff() {
	for led := LED(0); led < numLEDs; led++ {
		SetLEDState(led, false)
	}
}

// BlinkLED blinks one LED count times with the given on/off phases.
// Blocks for count*(onMs+offMs) milliseconds.
func BlinkLED(led LED, count int, onMs, offMs uint32) {
	for i := 0; i < count; i++ {
		SetLEDState(led, true)
		DelayMillis(onMs)
		SetLEDState(led, false)
		DelayMillis(offMs)
	}
}

// FlashAll blinks all three LEDs together count times.
func FlashAll(count int, onMs, offMs uint32) {
	for i := 0; i < count; i++ {
		AllLEDsOn()
		DelayMillis(onMs)
		AllLEDsOff()
		DelayMillis(offMs)
	}
}
