// Package rtc drives the STM32H7 real-time clock at register level: the
// write-protection key sequence, the initialization-mode handshake, the
// shadow-register synchronization on reads, and Alarm A.
//
// The register file is abstracted behind the Registers interface so the
// exact sequences run unchanged against the hardware overlay on the board
// and against a simulated register file in tests.
package rtc

// Register bits, RM0433 RTC chapter.
const (
	icsrINIT  = 1 << 7
	icsrINITF = 1 << 6
	icsrRSF   = 1 << 5

	crALRAE  = 1 << 8
	crALRAIE = 1 << 12

	srALRAF   = 1 << 0
	scrCALRAF = 1 << 0

	alrmarMSK4 = 1 << 31 // match any day
	alrmarMSK3 = 1 << 23 // match any hour
	alrmarMSK2 = 1 << 15 // match any minute
	alrmarMSK1 = 1 << 7  // match any second

	// Writing these two bytes to WPR in order disables write protection;
	// any other value re-locks immediately.
	wprKey1   = 0xCA
	wprKey2   = 0x53
	wprRelock = 0xFF

	// ~32 kHz LSI divided down to 1 Hz: asynchronous 128, synchronous 250.
	prescaler1Hz = 127<<16 | 249
)

// Registers is the slice of the RTC register file the protocol needs.
// Board code implements it with a volatile overlay at 0x58004000.
type Registers interface {
	TR() uint32
	SetTR(uint32)
	DR() uint32
	SetDR(uint32)
	ICSR() uint32
	SetICSR(uint32)
	SetPRER(uint32)
	CR() uint32
	SetCR(uint32)
	WriteWPR(uint32)
	SetALRMAR(uint32)
	SR() uint32
	WriteSCR(uint32)
}

// Time is a wall-clock time of day, decimal fields.
type Time struct {
	Hours   uint8 // 0..23
	Minutes uint8 // 0..59
	Seconds uint8 // 0..59
}

// Date is a calendar date. Year is the offset from a caller-chosen
// century (00..99); Weekday runs 1..7 with 1 = Monday.
type Date struct {
	Year    uint8
	Month   uint8 // 1..12
	Day     uint8 // 1..31
	Weekday uint8 // 1..7
}

// Alarm describes an Alarm A match. A set mask means "match any" for that
// field.
type Alarm struct {
	Day     uint8
	Hours   uint8
	Minutes uint8
	Seconds uint8

	MaskDay     bool
	MaskHours   bool
	MaskMinutes bool
	MaskSeconds bool
}

// Device is a handle on the RTC register file.
type Device struct {
	regs Registers
}

func New(regs Registers) *Device {
	return &Device{regs: regs}
}

// withWriteAccess runs fn with write protection disabled and re-locks on
// the way out, whether or not fn succeeded. Writes attempted while locked
// are silently rejected by the hardware, so every mutation goes through
// here.
func (d *Device) withWriteAccess(fn func()) {
	d.regs.WriteWPR(wprKey1)
	d.regs.WriteWPR(wprKey2)
	defer d.regs.WriteWPR(wprRelock)
	fn()
}

// Configure programs the prescaler, time and date. The sequence enters
// initialization mode (the counter is stopped while INIT is set), loads
// the registers, and exits; the clock restarts from the new value.
// Callers must have enabled the backup-domain clock path first.
func (d *Device) Configure(t Time, dt Date) {
	d.withWriteAccess(func() {
		d.regs.SetICSR(d.regs.ICSR() | icsrINIT)
		for d.regs.ICSR()&icsrINITF == 0 {
		}

		d.regs.SetPRER(prescaler1Hz)
		d.regs.SetTR(encodeTime(t))
		d.regs.SetDR(encodeDate(dt))

		d.regs.SetICSR(d.regs.ICSR() &^ icsrINIT)
	})
}

// ReadTime returns the current time of day. It clears the shadow-register
// sync flag and polls it back up, which guarantees the subsequent TR read
// is a consistent snapshot; no software locking is needed.
func (d *Device) ReadTime() Time {
	d.syncShadow()
	return decodeTime(d.regs.TR())
}

// ReadDate returns the current date, synchronized the same way.
func (d *Device) ReadDate() Date {
	d.syncShadow()
	return decodeDate(d.regs.DR())
}

func (d *Device) syncShadow() {
	d.regs.SetICSR(d.regs.ICSR() &^ icsrRSF)
	for d.regs.ICSR()&icsrRSF == 0 {
	}
}

// SetAlarm programs and enables Alarm A along with its interrupt. The
// alarm must be disabled while its register is written.
func (d *Device) SetAlarm(a Alarm) {
	d.withWriteAccess(func() {
		d.regs.SetCR(d.regs.CR() &^ (crALRAE | crALRAIE))
		d.regs.SetALRMAR(encodeAlarm(a))
		d.regs.SetCR(d.regs.CR() | crALRAE | crALRAIE)
	})
}

// DisableAlarm turns Alarm A and its interrupt off.
func (d *Device) DisableAlarm() {
	d.withWriteAccess(func() {
		d.regs.SetCR(d.regs.CR() &^ (crALRAE | crALRAIE))
	})
}

// AlarmFired reports whether the Alarm A flag is set.
func (d *Device) AlarmFired() bool {
	return d.regs.SR()&srALRAF != 0
}

// ClearAlarmFlag acknowledges Alarm A via the clear register.
func (d *Device) ClearAlarmFlag() {
	d.regs.WriteSCR(scrCALRAF)
}

func encodeTime(t Time) uint32 {
	return uint32(DecToBCD(t.Hours))<<16 |
		uint32(DecToBCD(t.Minutes))<<8 |
		uint32(DecToBCD(t.Seconds))
}

func decodeTime(tr uint32) Time {
	return Time{
		Hours:   BCDToDec(uint8(tr >> 16 & 0x3F)),
		Minutes: BCDToDec(uint8(tr >> 8 & 0x7F)),
		Seconds: BCDToDec(uint8(tr & 0x7F)),
	}
}

func encodeDate(dt Date) uint32 {
	return uint32(DecToBCD(dt.Year))<<16 |
		uint32(dt.Weekday&0x7)<<13 |
		uint32(DecToBCD(dt.Month))<<8 |
		uint32(DecToBCD(dt.Day))
}

func decodeDate(dr uint32) Date {
	return Date{
		Year:    BCDToDec(uint8(dr >> 16 & 0xFF)),
		Weekday: uint8(dr >> 13 & 0x7),
		Month:   BCDToDec(uint8(dr >> 8 & 0x1F)),
		Day:     BCDToDec(uint8(dr & 0x3F)),
	}
}

func encodeAlarm(a Alarm) uint32 {
	v := uint32(DecToBCD(a.Day))<<24 |
		uint32(DecToBCD(a.Hours))<<16 |
		uint32(DecToBCD(a.Minutes))<<8 |
		uint32(DecToBCD(a.Seconds))
	if a.MaskDay {
		v |= alrmarMSK4
	}
	if a.MaskHours {
		v |= alrmarMSK3
	}
	if a.MaskMinutes {
		v |= alrmarMSK2
	}
	if a.MaskSeconds {
		v |= alrmarMSK1
	}
	return v
}
