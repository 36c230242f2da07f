//go:build tinygo

package board

import (
	"device/arm"
	"runtime/volatile"
	"unsafe"

	"nucleolab/flash"
)

// flashBank1 adapts the bank-1 control registers and memory window to
// flash.Bank. Offsets are relative to the bank base.
type flashBank1 struct{}

const bank1Base = 0x08000000

func (flashBank1) CR() uint32         { return flashR.CR1.Get() }
func (flashBank1) SetCR(v uint32)     { flashR.CR1.Set(v) }
func (flashBank1) SR() uint32         { return flashR.SR1.Get() }
func (flashBank1) WriteKEYR(v uint32) { flashR.KEYR1.Set(v) }
func (flashBank1) WriteCCR(v uint32)  { flashR.CCR1.Set(v) }

func (flashBank1) ReadWord(offset uint32) uint32 {
	return volatile.LoadUint32((*uint32)(unsafe.Pointer(uintptr(bank1Base + offset))))
}

func (flashBank1) WriteWord(offset uint32, v uint32) {
	volatile.StoreUint32((*uint32)(unsafe.Pointer(uintptr(bank1Base+offset))), v)
}

// Barrier forces the write buffer out so the flash controller sees all
// eight words of the 256-bit write before the program pulse.
func (flashBank1) Barrier() {
	arm.Asm("dsb")
}

// Bank1 returns the user-flash bank that holds the settings sector.
func Bank1() flash.Bank {
	return flashBank1{}
}
