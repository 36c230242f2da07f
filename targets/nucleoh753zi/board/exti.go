//go:build tinygo

package board

import (
	"runtime/interrupt"

	"nucleolab/nvic"
)

const (
	buttonLine = 1 << 13 // EXTI13 = PC13
	alarmLine  = 1 << 17 // RTC Alarm A, internal line
)

var (
	buttonCallback func()
	alarmCallback  func()

	buttonInterrupt = interrupt.New(irqEXTI15_10, handleButton)
	alarmInterrupt  = interrupt.New(irqRTCAlarm, handleAlarm)
)

// InitButton routes PC13 through the external-interrupt controller,
// falling edge (press), and wires the interrupt to fn. InitGPIO must have
// configured the pin first.
func InitButton(fn func()) {
	enableClock(&rcc.APB4ENR, rccSYSCFGEN)

	// EXTICR4 field for line 13: port C.
	syscfg.EXTICR[3].ReplaceBits(0x2, 0xF, 4)

	exti.FTSR1.SetBits(buttonLine)
	exti.RTSR1.ClearBits(buttonLine)
	exti.PR1.Set(buttonLine)
	exti.IMR1.SetBits(buttonLine)

	buttonCallback = fn
	enableIRQ(irqEXTI15_10, nvic.PrioButton)
}

// EnableAlarmLine routes the RTC alarm through its internal EXTI line,
// rising edge, and wires the interrupt to fn. The RTC itself is armed
// separately via rtc.Device.SetAlarm.
func EnableAlarmLine(fn func()) {
	exti.RTSR1.SetBits(alarmLine)
	exti.PR1.Set(alarmLine)
	exti.IMR1.SetBits(alarmLine)

	alarmCallback = fn
	enableIRQ(irqRTCAlarm, nvic.PrioAlarm)
}

func handleButton(interrupt.Interrupt) {
	if exti.PR1.Get()&buttonLine == 0 {
		return
	}
	exti.PR1.Set(buttonLine) // write-1-to-clear
	if buttonCallback != nil {
		buttonCallback()
	}
}

func handleAlarm(interrupt.Interrupt) {
	if exti.PR1.Get()&alarmLine != 0 {
		exti.PR1.Set(alarmLine)
	}
	if alarmCallback != nil {
		alarmCallback()
	}
}
