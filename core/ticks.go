package core

// Micros returns the current value of the 1 MHz free-running counter.
func Micros() uint32 {
	return MustClock().Micros()
}

// Elapsed returns the number of microseconds since the given counter
// sample. Unsigned subtraction keeps the result correct across wrap.
func Elapsed(since uint32) uint32 {
	return Micros() - since
}

// ElapsedBetween returns end - start modulo 2^32: the tick count between
// two counter samples taken in that order.
func ElapsedBetween(start, end uint32) uint32 {
	return end - start
}

// DelayMillis spin-waits for the given number of milliseconds on the
// microsecond counter. Blocks the caller; never call it from an interrupt
// handler.
func DelayMillis(ms uint32) {
	start := Micros()
	target := ms * 1000
	for Micros()-start < target {
	}
}
