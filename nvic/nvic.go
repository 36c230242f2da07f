// Package nvic holds the index arithmetic for the Cortex-M7 vectored
// interrupt controller. The controller keeps enable, pending and priority
// state in parallel register arrays; board code combines these helpers
// with volatile accesses to the arrays at 0xE000E100 and friends.
package nvic

// RegIndex returns which 32-bit word of the ISER/ICER/ISPR/ICPR arrays
// covers the given IRQ number.
func RegIndex(irq int) int {
	return irq / 32
}

// BitMask returns the bit within that word for the given IRQ number.
// Enable, disable and pending registers are all write-one semantics, so
// the mask is written directly without read-modify-write.
func BitMask(irq int) uint32 {
	return 1 << (uint(irq) % 32)
}

// PriorityByte encodes a 0..15 priority level into the 8-bit IPR entry.
// Only the upper 4 bits are implemented on this core; lower number means
// higher priority.
func PriorityByte(prio uint8) uint8 {
	return prio << 4
}

// Priority bands used across the firmware images: hard-realtime timers
// first, serial traffic in the middle, human input last.
const (
	PrioBeatTimer = 1
	PrioHeartbeat = 2
	PrioSerial    = 8
	PrioAlarm     = 12
	PrioButton    = 13
)
