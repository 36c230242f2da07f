//go:build tinygo

package board

import "runtime/volatile"

// RCC enable-register bits.
const (
	rccGPIOBEN = 1 << 1
	rccGPIOCEN = 1 << 2
	rccGPIODEN = 1 << 3
	rccGPIOEEN = 1 << 4

	rccTIM2EN   = 1 << 0
	rccTIM3EN   = 1 << 1
	rccTIM7EN   = 1 << 5
	rccUSART3EN = 1 << 18

	rccSYSCFGEN = 1 << 1
	rccRTCAPBEN = 1 << 16

	csrLSION  = 1 << 0
	csrLSIRDY = 1 << 1

	bdcrRTCSEL = 3 << 8
	bdcrLSISel = 2 << 8
	bdcrRTCEN  = 1 << 15
)

// enableClock sets an RCC enable bit and reads the register back, which
// stalls until the enable has propagated across the bus bridge. Skipping
// the read-back makes the very next peripheral access racy.
func enableClock(reg *volatile.Register32, bit uint32) {
	reg.SetBits(bit)
	_ = reg.Get()
}
