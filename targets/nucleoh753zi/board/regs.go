//go:build tinygo

// Package board is the register-level support code for the Nucleo-H753ZI:
// peripheral overlays, clock enables, the three user LEDs and the button,
// the timers, USART3, the RTC and the flash bank. Apps never touch a
// register; they go through the driver interfaces in core, rtc and flash.
package board

import (
	"runtime/volatile"
	"unsafe"
)

// Peripheral base addresses and register layouts, RM0433. Each overlay
// covers only the registers this firmware uses; reserved gaps are padded
// so the offsets line up.

type rccRegs struct {
	CR       volatile.Register32     // 0x00
	_        [27]volatile.Register32 // 0x04..0x6C
	BDCR     volatile.Register32     // 0x70
	CSR      volatile.Register32     // 0x74
	_        [26]volatile.Register32 // 0x78..0xDC
	AHB4ENR  volatile.Register32     // 0xE0
	_        volatile.Register32     // 0xE4 APB3ENR
	APB1LENR volatile.Register32     // 0xE8
	APB1HENR volatile.Register32     // 0xEC
	APB2ENR  volatile.Register32     // 0xF0
	APB4ENR  volatile.Register32     // 0xF4
}

type pwrRegs struct {
	CR1  volatile.Register32 // 0x00
	CSR1 volatile.Register32 // 0x04
}

type gpioRegs struct {
	MODER   volatile.Register32 // 0x00
	OTYPER  volatile.Register32 // 0x04
	OSPEEDR volatile.Register32 // 0x08
	PUPDR   volatile.Register32 // 0x0C
	IDR     volatile.Register32 // 0x10
	ODR     volatile.Register32 // 0x14
	BSRR    volatile.Register32 // 0x18
	LCKR    volatile.Register32 // 0x1C
	AFRL    volatile.Register32 // 0x20
	AFRH    volatile.Register32 // 0x24
}

type syscfgRegs struct {
	_      volatile.Register32    // 0x00
	PMCR   volatile.Register32    // 0x04
	EXTICR [4]volatile.Register32 // 0x08..0x14
}

type extiRegs struct {
	RTSR1  volatile.Register32     // 0x00
	FTSR1  volatile.Register32     // 0x04
	SWIER1 volatile.Register32     // 0x08
	_      [29]volatile.Register32 // 0x0C..0x7C
	IMR1   volatile.Register32     // 0x80 CPU interrupt mask
	EMR1   volatile.Register32     // 0x84
	PR1    volatile.Register32     // 0x88 pending, write-1-to-clear
}

type timRegs struct {
	CR1   volatile.Register32 // 0x00
	CR2   volatile.Register32 // 0x04
	SMCR  volatile.Register32 // 0x08
	DIER  volatile.Register32 // 0x0C
	SR    volatile.Register32 // 0x10
	EGR   volatile.Register32 // 0x14
	CCMR1 volatile.Register32 // 0x18
	CCMR2 volatile.Register32 // 0x1C
	CCER  volatile.Register32 // 0x20
	CNT   volatile.Register32 // 0x24
	PSC   volatile.Register32 // 0x28
	ARR   volatile.Register32 // 0x2C
}

type usartRegs struct {
	CR1  volatile.Register32 // 0x00
	CR2  volatile.Register32 // 0x04
	CR3  volatile.Register32 // 0x08
	BRR  volatile.Register32 // 0x0C
	GTPR volatile.Register32 // 0x10
	RTOR volatile.Register32 // 0x14
	RQR  volatile.Register32 // 0x18
	ISR  volatile.Register32 // 0x1C
	ICR  volatile.Register32 // 0x20
	RDR  volatile.Register32 // 0x24
	TDR  volatile.Register32 // 0x28
}

type rtcRegFile struct {
	TR    volatile.Register32     // 0x00
	DR    volatile.Register32     // 0x04
	SSR   volatile.Register32     // 0x08
	ICSR  volatile.Register32     // 0x0C
	PRER  volatile.Register32     // 0x10
	WUTR  volatile.Register32     // 0x14
	CR    volatile.Register32     // 0x18
	_     [2]volatile.Register32  // 0x1C, 0x20
	WPR   volatile.Register32     // 0x24
	_     [6]volatile.Register32  // 0x28..0x3C
	ALRMA volatile.Register32     // 0x40
	_     [3]volatile.Register32  // 0x44..0x4C
	SR    volatile.Register32     // 0x50
	MISR  volatile.Register32     // 0x54
	_     volatile.Register32     // 0x58
	SCR   volatile.Register32     // 0x5C
}

type flashRegFile struct {
	ACR     volatile.Register32 // 0x00
	KEYR1   volatile.Register32 // 0x04
	OPTKEYR volatile.Register32 // 0x08
	CR1     volatile.Register32 // 0x0C
	SR1     volatile.Register32 // 0x10
	CCR1    volatile.Register32 // 0x14
}

var (
	rcc    = (*rccRegs)(unsafe.Pointer(uintptr(0x58024400)))
	pwr    = (*pwrRegs)(unsafe.Pointer(uintptr(0x58024800)))
	gpioB  = (*gpioRegs)(unsafe.Pointer(uintptr(0x58020400)))
	gpioC  = (*gpioRegs)(unsafe.Pointer(uintptr(0x58020800)))
	gpioD  = (*gpioRegs)(unsafe.Pointer(uintptr(0x58020C00)))
	gpioE  = (*gpioRegs)(unsafe.Pointer(uintptr(0x58021000)))
	syscfg = (*syscfgRegs)(unsafe.Pointer(uintptr(0x58000400)))
	exti   = (*extiRegs)(unsafe.Pointer(uintptr(0x58000000)))
	tim2   = (*timRegs)(unsafe.Pointer(uintptr(0x40000000)))
	tim3   = (*timRegs)(unsafe.Pointer(uintptr(0x40000400)))
	tim7   = (*timRegs)(unsafe.Pointer(uintptr(0x40001400)))
	usart3 = (*usartRegs)(unsafe.Pointer(uintptr(0x40004800)))
	rtcHW  = (*rtcRegFile)(unsafe.Pointer(uintptr(0x58004000)))
	flashR = (*flashRegFile)(unsafe.Pointer(uintptr(0x52002000)))
)

// IRQ numbers, RM0433 vector table.
const (
	irqTIM3      = 29
	irqUSART3    = 39
	irqEXTI15_10 = 40
	irqRTCAlarm  = 41
	irqTIM7      = 55
)
