// Package flash implements the STM32H7 bank-1 embedded-flash programming
// protocol: key-sequence unlock, 128 KiB sector erase, and 256-bit
// programming. Program-time bits only go from 1 to 0; making a 0 into a 1
// again takes a full sector erase.
//
// The control registers and the array itself sit behind the Bank
// interface, so the sequences are exercised by tests against a simulated
// bank and by the board against the real one.
package flash

import "errors"

const (
	key1 = 0x45670123
	key2 = 0xCDEF89AB

	crLock     = 1 << 0
	crPG       = 1 << 1
	crSER      = 1 << 2
	crStart    = 1 << 7
	crSNBShift = 8
	crSNBMask  = 7 << crSNBShift

	srBSY = 1 << 0
	srQW  = 1 << 2

	srWRPERR  = 1 << 17
	srPGSERR  = 1 << 18
	srSTRBERR = 1 << 19
	srINCERR  = 1 << 21
	srOPERR   = 1 << 22

	srErrMask = srWRPERR | srPGSERR | srSTRBERR | srINCERR | srOPERR

	// Write-one-to-clear mask covering every sticky status bit.
	ccrClearAll = 0x1EFF0000

	// WordBytes is the programming granularity: one 256-bit flash word.
	WordBytes = 32

	// SectorBytes is the erase granularity.
	SectorBytes = 128 * 1024
)

// ErrFlash is the consolidated flash operation error: write protection,
// programming sequence, strobe, inconsistency or operation errors all
// land here. The caller learns that the operation failed, not which
// sticky bit said so.
var ErrFlash = errors.New("flash: operation failed")

// ErrAlignment is returned when a program offset is not aligned to a
// 256-bit flash word.
var ErrAlignment = errors.New("flash: offset not 256-bit aligned")

// Bank is one flash bank: its control registers plus word access into the
// array. Offsets are in bytes from the bank base.
type Bank interface {
	CR() uint32
	SetCR(uint32)
	SR() uint32
	WriteKEYR(uint32)
	WriteCCR(uint32)

	ReadWord(offset uint32) uint32
	WriteWord(offset uint32, v uint32)

	// Barrier orders the eight word stores of a program operation ahead
	// of the busy-wait; DSB on hardware, a no-op in simulation.
	Barrier()
}

func unlock(b Bank) {
	if b.CR()&crLock != 0 {
		b.WriteKEYR(key1)
		b.WriteKEYR(key2)
	}
}

func lock(b Bank) {
	b.SetCR(b.CR() | crLock)
}

func waitIdle(b Bank) {
	for b.SR()&(srBSY|srQW) != 0 {
	}
}

func opResult(b Bank) error {
	if b.SR()&srErrMask != 0 {
		return ErrFlash
	}
	return nil
}

// EraseSector erases one sector back to all ones. Blocks until the
// hardware reports idle; a sector erase takes up to about a second. The
// bank is re-locked on return regardless of outcome.
func EraseSector(b Bank, sector uint32) error {
	unlock(b)
	defer lock(b)

	waitIdle(b)
	b.WriteCCR(ccrClearAll)

	cr := b.CR() &^ crSNBMask
	b.SetCR(cr | crSER | sector<<crSNBShift)
	b.SetCR(b.CR() | crStart)
	waitIdle(b)
	b.SetCR(b.CR() &^ crSER)

	return opResult(b)
}

// ProgramWord writes one 256-bit flash word (eight consecutive 32-bit
// words) at the given bank offset. The destination must have been erased;
// programming can only clear bits. The bank is re-locked on return.
func ProgramWord(b Bank, offset uint32, words *[8]uint32) error {
	if offset%WordBytes != 0 {
		return ErrAlignment
	}

	unlock(b)
	defer lock(b)

	waitIdle(b)
	b.WriteCCR(ccrClearAll)

	b.SetCR(b.CR() | crPG)
	for i, w := range words {
		b.WriteWord(offset+uint32(i)*4, w)
	}
	b.Barrier()
	waitIdle(b)
	b.SetCR(b.CR() &^ crPG)

	return opResult(b)
}
