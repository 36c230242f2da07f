// Package digitalclock is the LED clock: the red LED pulses every second,
// a short button press blinks out the current time, and holding the
// button arms an alarm ten seconds ahead.
package digitalclock

import (
	"sync/atomic"

	"nucleolab/core"
	"nucleolab/rtc"
)

const (
	longPressMillis   = 2000
	alarmLeadSeconds  = 10
	secondPulseMillis = 50
)

// App is the clock's main-loop state over an initialized RTC.
type App struct {
	clock *rtc.Device

	alarmTriggered uint32 // set by AlarmISR
	lastSecond     uint8
}

func New(clock *rtc.Device) *App {
	// 0xFF never matches a BCD-decoded second, so the first Poll pulses.
	return &App{clock: clock, lastSecond: 0xFF}
}

// AlarmISR is the RTC-side half of the alarm interrupt. The board handler
// clears the external-line pending bit before calling in; here the alarm
// flag itself is acknowledged so the interrupt does not refire.
func (a *App) AlarmISR() {
	if a.clock.AlarmFired() {
		a.clock.ClearAlarmFlag()
		atomic.StoreUint32(&a.alarmTriggered, 1)
	}
}

// AlarmTriggered reports whether an alarm fired since the last animation.
func (a *App) AlarmTriggered() bool {
	return atomic.LoadUint32(&a.alarmTriggered) != 0
}

// Run drives the clock forever.
func (a *App) Run() {
	core.AllLEDsOff()
	for {
		a.Poll()
	}
}

// Poll runs one main-loop iteration: seconds heartbeat, pending alarm,
// then the button.
func (a *App) Poll() {
	t := a.clock.ReadTime()
	if t.Seconds != a.lastSecond {
		a.lastSecond = t.Seconds
		a.secondPulse()
	}

	if atomic.SwapUint32(&a.alarmTriggered, 0) != 0 {
		a.alarmAnimation()
	}

	if core.TakePress() {
		core.WaitRelease()
		hold := core.Elapsed(core.PressTime()) / 1000
		core.DelayMillis(core.DebounceMillis)

		if hold >= longPressMillis {
			a.armAlarm()
		} else {
			a.displayTime(a.clock.ReadTime())
		}
	}
}

func (a *App) secondPulse() {
	core.SetLEDState(core.Red, true)
	core.DelayMillis(secondPulseMillis)
	core.SetLEDState(core.Red, false)
}

// armAlarm schedules Alarm A for ten seconds from now, carrying into
// minutes and hours, and confirms with three quick flashes. The day field
// is masked so the alarm matches on any date.
func (a *App) armAlarm() {
	now := a.clock.ReadTime()
	a.clock.SetAlarm(alarmAfter(now, alarmLeadSeconds))
	core.FlashAll(3, 100, 100)
}

func alarmAfter(t rtc.Time, seconds uint32) rtc.Alarm {
	total := uint32(t.Seconds) + seconds
	sec := total % 60
	min := uint32(t.Minutes) + total/60
	hr := (uint32(t.Hours) + min/60) % 24
	min %= 60

	return rtc.Alarm{
		Hours:   uint8(hr),
		Minutes: uint8(min),
		Seconds: uint8(sec),
		MaskDay: true,
	}
}

// displayTime blinks the time out: green once per hour on a 12-hour
// scale, then yellow once per ten minutes. Zero tens gets a single short
// flicker so the display is never silent.
func (a *App) displayTime(t rtc.Time) {
	hours := t.Hours % 12
	if hours == 0 {
		hours = 12
	}
	core.BlinkLED(core.Green, int(hours), 200, 200)

	core.DelayMillis(500)

	tens := t.Minutes / 10
	if tens > 0 {
		core.BlinkLED(core.Yellow, int(tens), 200, 200)
	} else {
		core.SetLEDState(core.Yellow, true)
		core.DelayMillis(50)
		core.SetLEDState(core.Yellow, false)
	}
}

// alarmAnimation flashes everything for a couple of seconds, then disarms
// the alarm so it stays a one-shot.
func (a *App) alarmAnimation() {
	core.FlashAll(10, 100, 100)
	a.clock.DisableAlarm()
}
