package digitalclock

import (
	"testing"

	"nucleolab/core"
	"nucleolab/rtc"
)

type stepClock struct {
	now uint32
}

func (c *stepClock) Micros() uint32 {
	c.now += 100
	return c.now
}

type ledEvent struct {
	led core.LED
	on  bool
}

// recordGPIO logs every pin write so tests can count blink patterns.
type recordGPIO struct {
	events []ledEvent
}

func (g *recordGPIO) SetLED(l core.LED, on bool) {
	g.events = append(g.events, ledEvent{l, on})
}

func (g *recordGPIO) ButtonDown() bool { return false }

func (g *recordGPIO) onCount(l core.LED) int {
	n := 0
	for _, e := range g.events {
		if e.led == l && e.on {
			n++
		}
	}
	return n
}

// fakeRegs is a minimal RTC register file: shadow registers always read
// as synchronized, and the write-protection key sequence gates CR and
// alarm writes like the hardware does.
type fakeRegs struct {
	tr, dr, cr, alrmar, sr uint32

	wprStage int
	unlocked bool
}

func (f *fakeRegs) TR() uint32 { return f.tr }

func (f *fakeRegs) SetTR(v uint32) {
	if f.unlocked {
		f.tr = v
	}
}

func (f *fakeRegs) DR() uint32 { return f.dr }

func (f *fakeRegs) SetDR(v uint32) {
	if f.unlocked {
		f.dr = v
	}
}

func (f *fakeRegs) ICSR() uint32   { return 1 << 5 } // RSF: always in sync
func (f *fakeRegs) SetICSR(uint32) {}
func (f *fakeRegs) SetPRER(uint32) {}

func (f *fakeRegs) CR() uint32 { return f.cr }

func (f *fakeRegs) SetCR(v uint32) {
	if f.unlocked {
		f.cr = v
	}
}

func (f *fakeRegs) WriteWPR(v uint32) {
	switch {
	case v == 0xCA:
		f.wprStage = 1
	case v == 0x53 && f.wprStage == 1:
		f.unlocked = true
		f.wprStage = 0
	default:
		f.wprStage = 0
		f.unlocked = false
	}
}

func (f *fakeRegs) SetALRMAR(v uint32) {
	if f.unlocked && f.cr&(1<<8) == 0 {
		f.alrmar = v
	}
}

func (f *fakeRegs) SR() uint32 { return f.sr }

func (f *fakeRegs) WriteSCR(v uint32) {
	if v&1 != 0 {
		f.sr &^= 1
	}
}

func bcdTime(h, m, s uint8) uint32 {
	return uint32(rtc.DecToBCD(h))<<16 | uint32(rtc.DecToBCD(m))<<8 | uint32(rtc.DecToBCD(s))
}

func setup(tr uint32) (*App, *fakeRegs, *recordGPIO) {
	core.SetClockDriver(&stepClock{})
	gpio := &recordGPIO{}
	core.SetGPIODriver(gpio)
	core.ClearPress()
	core.AllLEDsOff()
	gpio.events = nil

	regs := &fakeRegs{tr: tr}
	return New(rtc.New(regs)), regs, gpio
}

func TestAlarmAfterCarry(t *testing.T) {
	cases := []struct {
		now  rtc.Time
		want rtc.Alarm
	}{
		{rtc.Time{Hours: 12, Minutes: 0, Seconds: 0}, rtc.Alarm{Hours: 12, Minutes: 0, Seconds: 10, MaskDay: true}},
		{rtc.Time{Hours: 12, Minutes: 0, Seconds: 55}, rtc.Alarm{Hours: 12, Minutes: 1, Seconds: 5, MaskDay: true}},
		{rtc.Time{Hours: 12, Minutes: 59, Seconds: 55}, rtc.Alarm{Hours: 13, Minutes: 0, Seconds: 5, MaskDay: true}},
		{rtc.Time{Hours: 23, Minutes: 59, Seconds: 55}, rtc.Alarm{Hours: 0, Minutes: 0, Seconds: 5, MaskDay: true}},
	}
	for _, c := range cases {
		if got := alarmAfter(c.now, 10); got != c.want {
			t.Errorf("alarmAfter(%+v, 10) = %+v, want %+v", c.now, got, c.want)
		}
	}
}

func TestAlarmISR(t *testing.T) {
	app, regs, _ := setup(bcdTime(12, 0, 0))

	app.AlarmISR()
	if app.AlarmTriggered() {
		t.Error("ISR without the alarm flag should not trigger")
	}

	regs.sr = 1 // ALRAF
	app.AlarmISR()
	if !app.AlarmTriggered() {
		t.Fatal("ISR with the alarm flag should trigger")
	}
	if regs.sr&1 != 0 {
		t.Error("ISR should acknowledge the alarm flag")
	}
}

func TestAlarmAnimationDisarms(t *testing.T) {
	app, regs, gpio := setup(bcdTime(12, 0, 0))
	regs.unlocked = true
	regs.cr = 1<<8 | 1<<12 // armed
	regs.unlocked = false
	regs.sr = 1

	app.AlarmISR()
	app.Poll()

	if got := gpio.onCount(core.Green); got != 10 {
		t.Errorf("alarm animation green pulses = %d, want 10", got)
	}
	if regs.cr&(1<<8) != 0 {
		t.Error("alarm should be disarmed after the animation")
	}
	if app.AlarmTriggered() {
		t.Error("trigger flag should be consumed")
	}
	if regs.unlocked {
		t.Error("register file should be relocked")
	}
}

func TestSecondPulse(t *testing.T) {
	app, regs, gpio := setup(bcdTime(12, 0, 5))

	app.Poll()
	if got := gpio.onCount(core.Red); got != 1 {
		t.Fatalf("red pulses after first poll = %d, want 1", got)
	}

	app.Poll()
	if got := gpio.onCount(core.Red); got != 1 {
		t.Errorf("red pulses without a new second = %d, want 1", got)
	}

	regs.tr = bcdTime(12, 0, 6)
	app.Poll()
	if got := gpio.onCount(core.Red); got != 2 {
		t.Errorf("red pulses after second change = %d, want 2", got)
	}
}

func TestShortPressDisplaysTime(t *testing.T) {
	// 15:20 reads as 3 on a 12-hour dial, with 2 tens of minutes.
	app, _, gpio := setup(bcdTime(15, 20, 0))

	core.ButtonISR()
	app.Poll()

	if got := gpio.onCount(core.Green); got != 3 {
		t.Errorf("green blinks = %d, want 3", got)
	}
	if got := gpio.onCount(core.Yellow); got != 2 {
		t.Errorf("yellow blinks = %d, want 2", got)
	}
}

func TestShortPressZeroTensFlicker(t *testing.T) {
	app, _, gpio := setup(bcdTime(1, 5, 0))

	core.ButtonISR()
	app.Poll()

	if got := gpio.onCount(core.Green); got != 1 {
		t.Errorf("green blinks = %d, want 1", got)
	}
	if got := gpio.onCount(core.Yellow); got != 1 {
		t.Errorf("yellow flicker count = %d, want 1", got)
	}
}

func TestLongPressArmsAlarm(t *testing.T) {
	app, regs, _ := setup(bcdTime(12, 0, 0))

	core.ButtonISR()
	clk := &stepClock{now: core.PressTime() + 2500000}
	core.SetClockDriver(clk)
	app.Poll()

	want := uint32(1<<31) | uint32(0x12)<<16 | 0x10 // any day, 12:00:10
	if regs.alrmar != want {
		t.Errorf("ALRMAR = %#x, want %#x", regs.alrmar, want)
	}
	if regs.cr&(1<<8|1<<12) != 1<<8|1<<12 {
		t.Error("alarm enable and interrupt bits should be set")
	}
	if regs.unlocked {
		t.Error("register file should be relocked after arming")
	}
}
