//go:build tinygo

package board

import (
	"runtime/interrupt"

	"nucleolab/nvic"
)

// USART3 bits. The peripheral sits on APB1 and reaches the ST-LINK
// virtual COM port through PD8 (TX) and PD9 (RX), alternate function 7.
const (
	usartUE     = 1 << 0
	usartRE     = 1 << 2
	usartTE     = 1 << 3
	usartRXNEIE = 1 << 5

	isrORE  = 1 << 3
	isrRXNE = 1 << 5
	isrTXE  = 1 << 7

	icrORECF = 1 << 3

	// 64 MHz kernel clock / 115200 baud.
	brr115200 = 556
)

// SerialPort is the polled transmit side of USART3. Implements
// console.ByteWriter.
type SerialPort struct{}

func (SerialPort) WriteByte(c byte) {
	for usart3.ISR.Get()&isrTXE == 0 {
	}
	usart3.TDR.Set(uint32(c))
}

var rxCallback func(byte)

var serialInterrupt = interrupt.New(irqUSART3, handleSerial)

func handleSerial(interrupt.Interrupt) {
	isr := usart3.ISR.Get()
	if isr&isrRXNE != 0 {
		b := byte(usart3.RDR.Get()) // the read clears RXNE
		if rxCallback != nil {
			rxCallback(b)
		}
	}
	if isr&isrORE != 0 {
		usart3.ICR.Set(icrORECF)
	}
}

// InitSerial brings up USART3 at 115200 8N1 and returns the transmit
// handle. Receive interrupts stay off until EnableSerialRx.
func InitSerial() SerialPort {
	enableClock(&rcc.AHB4ENR, rccGPIODEN)
	enableClock(&rcc.APB1LENR, rccUSART3EN)

	// PD8, PD9 to alternate function 7.
	gpioD.MODER.ReplaceBits(0x2, 0x3, 16) // PD8
	gpioD.MODER.ReplaceBits(0x2, 0x3, 18) // PD9
	gpioD.AFRH.ReplaceBits(0x7, 0xF, 0)   // PD8
	gpioD.AFRH.ReplaceBits(0x7, 0xF, 4)   // PD9

	usart3.BRR.Set(brr115200)
	usart3.CR1.Set(usartUE | usartRE | usartTE)

	return SerialPort{}
}

// EnableSerialRx delivers every received byte to fn from the USART3
// interrupt.
func EnableSerialRx(fn func(byte)) {
	rxCallback = fn
	usart3.CR1.SetBits(usartRXNEIE)
	enableIRQ(irqUSART3, nvic.PrioSerial)
}
