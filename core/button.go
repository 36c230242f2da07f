package core

import "sync/atomic"

// DebounceMillis is how long the main loop waits after consuming a button
// edge before trusting the pin again. The board button bounces for a few
// milliseconds; a spurious edge within this window is absorbed.
const DebounceMillis = 50

var (
	buttonPressed   uint32
	buttonPressTime uint32
)

// ButtonISR records a falling edge on the user button. Called from the
// EXTI handler after the pending bit has been cleared; safe in interrupt
// context.
func ButtonISR() {
	atomic.StoreUint32(&buttonPressTime, MustClock().Micros())
	atomic.StoreUint32(&buttonPressed, 1)
}

// TakePress consumes a pending button edge, reporting whether one was
// recorded since the last call.
func TakePress() bool {
	return atomic.SwapUint32(&buttonPressed, 0) != 0
}

// ClearPress discards any pending button edge.
func ClearPress() {
	atomic.StoreUint32(&buttonPressed, 0)
}

// PressTime returns the counter sample taken in the ISR for the most
// recent edge.
func PressTime() uint32 {
	return atomic.LoadUint32(&buttonPressTime)
}

// WaitRelease spins until the button is no longer held.
func WaitRelease() {
	for MustGPIO().ButtonDown() {
	}
}
