//go:build tinygo

package board

import (
	"runtime/volatile"
	"unsafe"

	"nucleolab/nvic"
)

// Cortex-M7 NVIC register arrays.
var (
	nvicISER = (*[16]volatile.Register32)(unsafe.Pointer(uintptr(0xE000E100)))
	nvicICER = (*[16]volatile.Register32)(unsafe.Pointer(uintptr(0xE000E180)))
	nvicICPR = (*[16]volatile.Register32)(unsafe.Pointer(uintptr(0xE000E280)))
	nvicIPR  = (*[240]volatile.Register8)(unsafe.Pointer(uintptr(0xE000E400)))
)

// enableIRQ programs the priority, clears any stale pending bit and
// enables the interrupt. Enable and pending registers are write-one, so
// the masks go in without read-modify-write.
func enableIRQ(irq int, prio uint8) {
	nvicIPR[irq].Set(nvic.PriorityByte(prio))
	nvicICPR[nvic.RegIndex(irq)].Set(nvic.BitMask(irq))
	nvicISER[nvic.RegIndex(irq)].Set(nvic.BitMask(irq))
}

func disableIRQ(irq int) {
	nvicICER[nvic.RegIndex(irq)].Set(nvic.BitMask(irq))
}
