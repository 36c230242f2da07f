//go:build tinygo

// LED digital clock for the Nucleo-H753ZI: the red LED ticks the
// seconds, a short press blinks out the time, a long press arms an alarm
// ten seconds ahead.
package main

import (
	"nucleolab/core"
	"nucleolab/digitalclock"
	"nucleolab/rtc"
	"nucleolab/targets/nucleoh753zi/board"
)

func main() {
	board.InitMicrosTimer()
	board.InitGPIO()

	dev, err := board.InitRTC()
	if err != nil {
		// No oscillator, no clock. Hold the red LED so the failure is
		// visible.
		core.SetLEDState(core.Red, true)
		for {
		}
	}
	dev.Configure(
		rtc.Time{Hours: 12},
		rtc.Date{Year: 25, Month: 1, Day: 15, Weekday: 3},
	)

	app := digitalclock.New(dev)
	board.InitButton(core.ButtonISR)
	board.EnableAlarmLine(app.AlarmISR)

	app.Run()
}
