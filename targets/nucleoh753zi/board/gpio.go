//go:build tinygo

package board

import "nucleolab/core"

// Nucleo-H753ZI user LEDs and button.
const (
	greenPin  = 0  // PB0, LD1
	yellowPin = 1  // PE1, LD2
	redPin    = 14 // PB14, LD3
	buttonPin = 13 // PC13, B1, external pull-up, pressed = low
)

type gpioDriver struct{}

func (gpioDriver) SetLED(led core.LED, on bool) {
	port, pin := ledPin(led)
	if on {
		port.BSRR.Set(1 << pin)
	} else {
		port.BSRR.Set(1 << (pin + 16))
	}
}

func (gpioDriver) ButtonDown() bool {
	return gpioC.IDR.Get()&(1<<buttonPin) == 0
}

func ledPin(led core.LED) (*gpioRegs, uint) {
	switch led {
	case core.Yellow:
		return gpioE, yellowPin
	case core.Red:
		return gpioB, redPin
	}
	return gpioB, greenPin
}

// InitGPIO clocks ports B, C and E, configures the LED pins as push-pull
// outputs and the button as a plain input, and registers the driver.
func InitGPIO() {
	enableClock(&rcc.AHB4ENR, rccGPIOBEN|rccGPIOCEN|rccGPIOEEN)

	configOutput(gpioB, greenPin)
	configOutput(gpioB, redPin)
	configOutput(gpioE, yellowPin)

	// PC13: input mode 00, no internal pull (the board has one).
	gpioC.MODER.ReplaceBits(0, 0x3, buttonPin*2)

	core.SetGPIODriver(gpioDriver{})
}

func configOutput(port *gpioRegs, pin uint) {
	port.MODER.ReplaceBits(0x1, 0x3, uint8(pin*2))
	port.OTYPER.ClearBits(1 << pin)
	port.OSPEEDR.ReplaceBits(0, 0x3, uint8(pin*2))
	port.PUPDR.ReplaceBits(0, 0x3, uint8(pin*2))
}
