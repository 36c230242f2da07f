package rtc

import "testing"

// fakeRegs simulates the RTC register file: the WPR key sequence, the
// init-mode handshake, shadow-register sync, and Alarm A matching against
// a ticking clock.
type fakeRegs struct {
	tr, dr, prer, cr, alrmar, sr uint32

	icsr      uint32
	wprStage  int // 0 locked, 1 saw first key, 2 unlocked
	syncDelay int
}

func (f *fakeRegs) unlocked() bool { return f.wprStage == 2 }

func (f *fakeRegs) WriteWPR(v uint32) {
	switch {
	case v == wprKey1:
		f.wprStage = 1
	case v == wprKey2 && f.wprStage == 1:
		f.wprStage = 2
	default:
		f.wprStage = 0
	}
}

func (f *fakeRegs) TR() uint32 { return f.tr }
func (f *fakeRegs) SetTR(v uint32) {
	if f.unlocked() && f.icsr&icsrINIT != 0 {
		f.tr = v
	}
}

func (f *fakeRegs) DR() uint32 { return f.dr }
func (f *fakeRegs) SetDR(v uint32) {
	if f.unlocked() && f.icsr&icsrINIT != 0 {
		f.dr = v
	}
}

func (f *fakeRegs) SetPRER(v uint32) {
	if f.unlocked() && f.icsr&icsrINIT != 0 {
		f.prer = v
	}
}

func (f *fakeRegs) ICSR() uint32 {
	v := f.icsr
	if v&icsrINIT != 0 {
		v |= icsrINITF
	}
	if f.syncDelay > 0 {
		f.syncDelay--
		v &^= icsrRSF
	} else {
		v |= icsrRSF
	}
	return v
}

func (f *fakeRegs) SetICSR(v uint32) {
	if f.unlocked() {
		f.icsr = f.icsr&^uint32(icsrINIT) | v&icsrINIT
	}
	// Clearing RSF needs no write access; the shadow re-syncs one poll
	// later.
	if v&icsrRSF == 0 {
		f.syncDelay = 1
	}
}

func (f *fakeRegs) CR() uint32 { return f.cr }
func (f *fakeRegs) SetCR(v uint32) {
	if f.unlocked() {
		f.cr = v
	}
}

func (f *fakeRegs) SetALRMAR(v uint32) {
	if f.unlocked() && f.cr&crALRAE == 0 {
		f.alrmar = v
	}
}

func (f *fakeRegs) SR() uint32 { return f.sr }
func (f *fakeRegs) WriteSCR(v uint32) {
	if v&scrCALRAF != 0 {
		f.sr &^= srALRAF
	}
}

// Tick advances the simulated clock by whole seconds and raises the alarm
// flag on a match, like the 1 Hz calendar update would.
func (f *fakeRegs) Tick(seconds int) {
	for i := 0; i < seconds; i++ {
		t := decodeTime(f.tr)
		t.Seconds++
		if t.Seconds == 60 {
			t.Seconds = 0
			t.Minutes++
		}
		if t.Minutes == 60 {
			t.Minutes = 0
			t.Hours++
		}
		t.Hours %= 24
		f.tr = encodeTime(t)

		if f.cr&crALRAE != 0 && f.alarmMatches(t) {
			f.sr |= srALRAF
		}
	}
}

func (f *fakeRegs) alarmMatches(t Time) bool {
	a := f.alrmar
	if a&alrmarMSK1 == 0 && uint8(a&0x7F) != DecToBCD(t.Seconds) {
		return false
	}
	if a&alrmarMSK2 == 0 && uint8(a>>8&0x7F) != DecToBCD(t.Minutes) {
		return false
	}
	if a&alrmarMSK3 == 0 && uint8(a>>16&0x3F) != DecToBCD(t.Hours) {
		return false
	}
	if a&alrmarMSK4 == 0 && a>>24&0x3F != f.dr&0x3F {
		return false
	}
	return true
}

func TestBCDRoundTrip(t *testing.T) {
	for d := uint8(0); d <= 99; d++ {
		b := DecToBCD(d)
		if got := BCDToDec(b); got != d {
			t.Errorf("BCDToDec(DecToBCD(%d)) = %d", d, got)
		}
		if b>>4 != d/10 {
			t.Errorf("DecToBCD(%d) = %#x: tens digit not in upper nibble", d, b)
		}
	}
}

func TestConfigureAndReadBack(t *testing.T) {
	regs := &fakeRegs{}
	dev := New(regs)

	dev.Configure(
		Time{Hours: 12, Minutes: 0, Seconds: 0},
		Date{Year: 25, Month: 1, Day: 15, Weekday: 3},
	)

	if regs.prer != uint32(prescaler1Hz) {
		t.Errorf("prescaler = %#x, want %#x", regs.prer, uint32(prescaler1Hz))
	}
	if got := dev.ReadTime(); got != (Time{12, 0, 0}) {
		t.Errorf("ReadTime = %+v, want 12:00:00", got)
	}

	regs.Tick(1)
	if got := dev.ReadTime(); got != (Time{12, 0, 1}) {
		t.Errorf("ReadTime after one tick = %+v, want 12:00:01", got)
	}
	if got := dev.ReadDate(); got != (Date{Year: 25, Month: 1, Day: 15, Weekday: 3}) {
		t.Errorf("ReadDate = %+v", got)
	}
}

func TestWritesRejectedWhileLocked(t *testing.T) {
	regs := &fakeRegs{}
	dev := New(regs)
	dev.Configure(Time{Hours: 8}, Date{Year: 25, Month: 6, Day: 1, Weekday: 1})

	// The device re-locked on the way out of Configure.
	if regs.unlocked() {
		t.Fatal("register file should be locked after Configure")
	}

	// A raw write without the key sequence must leave old values in place.
	regs.SetTR(encodeTime(Time{Hours: 23, Minutes: 59, Seconds: 59}))
	if got := dev.ReadTime(); got != (Time{8, 0, 0}) {
		t.Errorf("locked write went through: ReadTime = %+v", got)
	}

	// A wrong second key relocks.
	regs.WriteWPR(wprKey1)
	regs.WriteWPR(0x99)
	if regs.unlocked() {
		t.Error("wrong key value should relock")
	}
}

func TestMinuteRollover(t *testing.T) {
	regs := &fakeRegs{}
	dev := New(regs)
	dev.Configure(Time{Hours: 9, Minutes: 59, Seconds: 58}, Date{Year: 25, Month: 3, Day: 2, Weekday: 7})

	regs.Tick(3)
	if got := dev.ReadTime(); got != (Time{10, 0, 1}) {
		t.Errorf("rollover: ReadTime = %+v, want 10:00:01", got)
	}
}

func TestAlarmFiresExactlyOnce(t *testing.T) {
	regs := &fakeRegs{}
	dev := New(regs)
	dev.Configure(Time{Hours: 12}, Date{Year: 25, Month: 1, Day: 15, Weekday: 3})

	dev.SetAlarm(Alarm{Hours: 12, Minutes: 0, Seconds: 11, MaskDay: true})

	fired := 0
	for i := 0; i < 11; i++ {
		regs.Tick(1)
		if dev.AlarmFired() {
			fired++
			dev.ClearAlarmFlag()
		}
	}
	if fired != 1 {
		t.Errorf("alarm fired %d times over 11 seconds, want exactly once", fired)
	}
	if dev.AlarmFired() {
		t.Error("alarm flag should stay clear after acknowledge")
	}
}

func TestDisableAlarm(t *testing.T) {
	regs := &fakeRegs{}
	dev := New(regs)
	dev.Configure(Time{Hours: 6}, Date{Year: 25, Month: 2, Day: 10, Weekday: 1})

	dev.SetAlarm(Alarm{Hours: 6, Minutes: 0, Seconds: 5, MaskDay: true})
	dev.DisableAlarm()

	regs.Tick(10)
	if dev.AlarmFired() {
		t.Error("disabled alarm fired")
	}
}

func TestAlarmMasksMatchAny(t *testing.T) {
	regs := &fakeRegs{}
	dev := New(regs)
	dev.Configure(Time{Hours: 1, Minutes: 2, Seconds: 0}, Date{Year: 25, Month: 1, Day: 1, Weekday: 4})

	// Seconds-only alarm: every field masked except seconds.
	dev.SetAlarm(Alarm{Seconds: 30, MaskDay: true, MaskHours: true, MaskMinutes: true})

	regs.Tick(29)
	if dev.AlarmFired() {
		t.Fatal("alarm fired before :30")
	}
	regs.Tick(1)
	if !dev.AlarmFired() {
		t.Error("alarm should fire at :30 with hour/minute masked")
	}
}
