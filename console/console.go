// Package console is the serial LED console: interrupt-driven receive
// into a ring buffer, polled transmit, a single-letter command set, a
// five-second heartbeat, and the user button.
package console

import (
	"sync/atomic"

	"nucleolab/core"
)

// ByteWriter sends one byte out the serial line, blocking until the
// transmit data register is empty. The board implements it by spinning on
// TXE; tests capture the bytes.
type ByteWriter interface {
	WriteByte(c byte)
}

// HeartbeatSeconds is the heartbeat timer period.
const HeartbeatSeconds = 5

// Console is the command console state. The RX ISR and the heartbeat ISR
// run concurrently with Poll; everything they share is either the SPSC
// ring or a single-word flag.
type Console struct {
	out ByteWriter
	rx  Ring

	heartbeat uint32 // set by the heartbeat ISR
	uptime    uint32 // seconds, advanced by the heartbeat ISR
}

func New(out ByteWriter) *Console {
	return &Console{out: out}
}

// RxISR handles one received byte: enqueue and echo. A full queue drops
// the byte. Called from the USART handler with the byte already read from
// the data register.
func (c *Console) RxISR(b byte) {
	c.rx.Put(b)
	c.out.WriteByte(b)
}

// HeartbeatISR records a heartbeat tick and advances uptime. Called from
// the timer update handler.
func (c *Console) HeartbeatISR() {
	atomic.AddUint32(&c.uptime, HeartbeatSeconds)
	atomic.StoreUint32(&c.heartbeat, 1)
}

// Uptime returns whole seconds since boot, heartbeat resolution.
func (c *Console) Uptime() uint32 {
	return atomic.LoadUint32(&c.uptime)
}

// Banner prints the greeting, the help menu and the first prompt.
func (c *Console) Banner() {
	c.println("")
	c.println("LED COMMAND CONSOLE (press H for help)")
	c.help()
	c.prompt()
}

// Poll runs one main-loop iteration: drain the RX queue through the
// dispatcher, then handle the button and the heartbeat.
func (c *Console) Poll() {
	for {
		b, ok := c.rx.Get()
		if !ok {
			break
		}
		c.Exec(b)
	}

	if core.TakePress() {
		core.DelayMillis(core.DebounceMillis)
		c.println("\r\n*** BUTTON PRESSED! ***")
		core.ToggleLED(core.Green)
		c.prompt()
	}

	if atomic.SwapUint32(&c.heartbeat, 0) != 0 {
		c.print("\r\n[Heartbeat] Uptime: ")
		c.printUint(c.Uptime())
		c.println(" seconds")
		c.prompt()
	}
}

// Exec dispatches one command byte and reprints the prompt. Commands are
// case-insensitive; upper and lower case produce identical output.
func (c *Console) Exec(cmd byte) {
	c.dispatch(foldUpper(cmd))
	c.prompt()
}

func (c *Console) dispatch(cmd byte) {
	switch cmd {
	case 'G':
		c.reportToggle("Green", core.ToggleLED(core.Green))
	case 'Y':
		c.reportToggle("Yellow", core.ToggleLED(core.Yellow))
	case 'R':
		c.reportToggle("Red", core.ToggleLED(core.Red))
	case 'A':
		core.AllLEDsOn()
		c.println("\r\nAll LEDs ON")
	case 'O':
		core.AllLEDsOff()
		c.println("\r\nAll LEDs OFF")
	case 'S':
		c.status()
	case 'H', '?':
		c.println("")
		c.help()
	case 'P':
		c.party()
	case '\r', '\n':
		// Line terminators are not commands.
	default:
		c.print("\r\nUnknown command: ")
		c.out.WriteByte(cmd)
		c.println(" (Press H for help)")
	}
}

func (c *Console) reportToggle(name string, on bool) {
	c.print("\r\n")
	c.print(name)
	c.print(" LED ")
	c.println(onOff(on))
}

func (c *Console) status() {
	c.println("")
	c.print("LED Status: GREEN=")
	c.print(onOff(core.LEDIsOn(core.Green)))
	c.print(", YELLOW=")
	c.print(onOff(core.LEDIsOn(core.Yellow)))
	c.print(", RED=")
	c.println(onOff(core.LEDIsOn(core.Red)))
	c.print("Uptime: ")
	c.printUint(c.Uptime())
	c.println(" seconds")
}

func (c *Console) help() {
	c.println("+---------------------------------+")
	c.println("|  G - Toggle GREEN LED           |")
	c.println("|  Y - Toggle YELLOW LED          |")
	c.println("|  R - Toggle RED LED             |")
	c.println("|  A - All LEDs ON                |")
	c.println("|  O - All LEDs OFF               |")
	c.println("|  S - Show status                |")
	c.println("|  P - Party mode!                |")
	c.println("|  H - Show this help             |")
	c.println("+---------------------------------+")
}

// party runs a fixed LED chase. Blocks for about 1.5 s.
func (c *Console) party() {
	c.println("\r\n*** PARTY MODE! ***")
	for cycle := 0; cycle < 3; cycle++ {
		for led := core.Green; led <= core.Red; led++ {
			core.AllLEDsOff()
			core.SetLEDState(led, true)
			core.DelayMillis(100)
		}
		core.AllLEDsOn()
		core.DelayMillis(100)
		core.AllLEDsOff()
		core.DelayMillis(100)
	}
	c.println("Party's over!")
}

func (c *Console) prompt() {
	c.print("> ")
}

func (c *Console) print(s string) {
	for i := 0; i < len(s); i++ {
		c.out.WriteByte(s[i])
	}
}

func (c *Console) println(s string) {
	c.print(s)
	c.print("\r\n")
}

// printUint writes a decimal number without allocating; the transmit path
// runs a byte at a time anyway.
func (c *Console) printUint(n uint32) {
	if n == 0 {
		c.out.WriteByte('0')
		return
	}
	var buf [10]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = '0' + byte(n%10)
		n /= 10
	}
	for ; i < len(buf); i++ {
		c.out.WriteByte(buf[i])
	}
}

func onOff(on bool) string {
	if on {
		return "ON"
	}
	return "OFF"
}

func foldUpper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}
