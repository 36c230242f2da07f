package nvic

import "testing"

func TestRegIndexAndBitMask(t *testing.T) {
	cases := []struct {
		irq  int
		reg  int
		mask uint32
	}{
		{0, 0, 1 << 0},
		{29, 0, 1 << 29}, // TIM3
		{31, 0, 1 << 31},
		{32, 1, 1 << 0},
		{39, 1, 1 << 7},  // USART3
		{40, 1, 1 << 8},  // EXTI15_10
		{41, 1, 1 << 9},  // RTC alarm
		{55, 1, 1 << 23}, // TIM7
		{64, 2, 1 << 0},
	}
	for _, c := range cases {
		if got := RegIndex(c.irq); got != c.reg {
			t.Errorf("RegIndex(%d) = %d, want %d", c.irq, got, c.reg)
		}
		if got := BitMask(c.irq); got != c.mask {
			t.Errorf("BitMask(%d) = %#x, want %#x", c.irq, got, c.mask)
		}
	}
}

func TestPriorityByte(t *testing.T) {
	if got := PriorityByte(0); got != 0 {
		t.Errorf("PriorityByte(0) = %#x, want 0", got)
	}
	if got := PriorityByte(13); got != 0xD0 {
		t.Errorf("PriorityByte(13) = %#x, want 0xD0", got)
	}
	if got := PriorityByte(15); got != 0xF0 {
		t.Errorf("PriorityByte(15) = %#x, want 0xF0", got)
	}
	// The lower nibble must stay clear; it is not implemented in silicon.
	for p := uint8(0); p < 16; p++ {
		if PriorityByte(p)&0x0F != 0 {
			t.Fatalf("PriorityByte(%d) has low nibble bits set", p)
		}
	}
}
