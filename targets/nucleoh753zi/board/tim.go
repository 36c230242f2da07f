//go:build tinygo

package board

import (
	"runtime/interrupt"

	"nucleolab/core"
	"nucleolab/nvic"
)

// Timer register bits.
const (
	timCEN = 1 << 0 // CR1: counter enable
	timUIE = 1 << 0 // DIER: update interrupt enable
	timUIF = 1 << 0 // SR: update flag
	timUG  = 1 << 0 // EGR: latch PSC/ARR now
)

type timClock struct{}

func (timClock) Micros() uint32 {
	return tim2.CNT.Get()
}

// InitMicrosTimer starts TIM2 as the free-running microsecond counter
// (64 MHz kernel clock, prescaler 64) and registers it as the clock
// driver. The full 32-bit range gives ~71 minutes before wrap; all
// elapsed arithmetic in core is modular, so wrap is harmless.
func InitMicrosTimer() {
	enableClock(&rcc.APB1LENR, rccTIM2EN)

	tim2.PSC.Set(63)
	tim2.ARR.Set(0xFFFFFFFF)
	tim2.EGR.Set(timUG)
	tim2.CR1.SetBits(timCEN)

	core.SetClockDriver(timClock{})
}

// PeriodicTimer runs TIM3 or TIM7 at a 1 kHz count rate and fires the
// update interrupt once per period. Implements metronome.BeatTimer.
type PeriodicTimer struct {
	regs *timRegs
}

func (t PeriodicTimer) Start(periodMillis uint32) {
	t.regs.PSC.Set(63999) // 64 MHz / 64000 = 1 kHz
	t.regs.ARR.Set(periodMillis - 1)
	t.regs.EGR.Set(timUG)
	t.regs.SR.ClearBits(timUIF) // UG sets UIF; don't fire immediately
	t.regs.DIER.SetBits(timUIE)
	t.regs.CR1.SetBits(timCEN)
}

// SetPeriod rewrites the reload without stopping the counter; the new
// period takes effect on the next update, so one beat may straddle the
// old and new tempo.
func (t PeriodicTimer) SetPeriod(periodMillis uint32) {
	t.regs.ARR.Set(periodMillis - 1)
}

var (
	beatCallback      func()
	heartbeatCallback func()

	beatInterrupt      = interrupt.New(irqTIM3, handleBeatTimer)
	heartbeatInterrupt = interrupt.New(irqTIM7, handleHeartbeatTimer)
)

func handleBeatTimer(interrupt.Interrupt) {
	tim3.SR.ClearBits(timUIF)
	if beatCallback != nil {
		beatCallback()
	}
}

func handleHeartbeatTimer(interrupt.Interrupt) {
	tim7.SR.ClearBits(timUIF)
	if heartbeatCallback != nil {
		heartbeatCallback()
	}
}

// BeatTimer hands out TIM3 with its update interrupt wired to fn. The
// caller starts it with the period it wants.
func BeatTimer(fn func()) PeriodicTimer {
	enableClock(&rcc.APB1LENR, rccTIM3EN)
	beatCallback = fn
	enableIRQ(irqTIM3, nvic.PrioBeatTimer)
	return PeriodicTimer{regs: tim3}
}

// HeartbeatTimer starts TIM7 at a fixed period and wires its update
// interrupt to fn.
func HeartbeatTimer(periodMillis uint32, fn func()) {
	enableClock(&rcc.APB1LENR, rccTIM7EN)
	heartbeatCallback = fn
	enableIRQ(irqTIM7, nvic.PrioHeartbeat)
	PeriodicTimer{regs: tim7}.Start(periodMillis)
}
