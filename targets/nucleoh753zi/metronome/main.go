//go:build tinygo

// LED metronome for the Nucleo-H753ZI: TIM3 beats the tempo, the button
// cycles it, and the choice survives power loss in flash sector 7.
package main

import (
	"nucleolab/core"
	"nucleolab/flash"
	"nucleolab/metronome"
	"nucleolab/targets/nucleoh753zi/board"
)

func main() {
	board.InitMicrosTimer()
	board.InitGPIO()

	var app *metronome.App
	timer := board.BeatTimer(func() { app.BeatISR() })
	app = metronome.New(flash.NewStore(board.Bank1(), flash.SettingsSector), timer)

	board.InitButton(core.ButtonISR)

	app.Run()
}
