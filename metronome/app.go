package metronome

import (
	"sync/atomic"

	"nucleolab/core"
	"nucleolab/flash"
)

// BeatTimer is the 1 kHz periodic timer behind the beat tick, TIM3 on the
// board.
type BeatTimer interface {
	// Start programs the period in milliseconds and starts counting.
	Start(periodMillis uint32)

	// SetPeriod rewrites the reload value without stopping the timer.
	// The new period takes effect on the next update event, so one beat
	// may straddle the old and new tempos.
	SetPeriod(periodMillis uint32)
}

// App is the metronome main-loop state.
type App struct {
	store flash.Store
	timer BeatTimer

	tempo Tempo
	ledOn bool

	beat uint32 // set by the timer ISR, cleared by the main loop
}

func New(store flash.Store, timer BeatTimer) *App {
	return &App{store: store, timer: timer}
}

// BeatISR records one beat tick. Called from the timer update handler
// after the interrupt flag has been cleared.
func (a *App) BeatISR() {
	atomic.StoreUint32(&a.beat, 1)
}

// Tempo returns the active tempo.
func (a *App) Tempo() Tempo {
	return a.tempo
}

// Start loads the persisted tempo, plays the power-on tempo sweep, and
// starts the beat timer.
func (a *App) Start() {
	a.tempo = LoadTempo(a.store)

	for t := Andante; t < tempoCount; t++ {
		showTempo(t)
		core.DelayMillis(200)
	}
	core.AllLEDsOff()
	core.DelayMillis(200)

	a.timer.Start(a.tempo.PeriodMillis())
}

// Poll runs one main-loop iteration: toggle the beat pattern on a tick,
// and advance + persist the tempo on a button press.
func (a *App) Poll() {
	if atomic.SwapUint32(&a.beat, 0) != 0 {
		if a.ledOn {
			core.AllLEDsOff()
		} else {
			showTempo(a.tempo)
		}
		a.ledOn = !a.ledOn
	}

	if core.TakePress() {
		core.DelayMillis(core.DebounceMillis)
		a.changeTempo(a.tempo.Next())
	}
}

// changeTempo retunes the running timer and persists the new tempo. A
// flash error aborts the change: the previous tempo and period stay in
// force.
func (a *App) changeTempo(next Tempo) {
	a.timer.SetPeriod(next.PeriodMillis())
	if err := SaveTempo(a.store, next); err != nil {
		a.timer.SetPeriod(a.tempo.PeriodMillis())
		return
	}
	a.tempo = next

	showTempo(a.tempo)
	core.DelayMillis(300)
}

// Run is the firmware entry loop.
func (a *App) Run() {
	a.Start()
	for {
		a.Poll()
	}
}

// showTempo lights the tempo's identity pattern: green, yellow, red, or
// all three for Presto.
func showTempo(t Tempo) {
	core.AllLEDsOff()
	switch t {
	case Andante:
		core.SetLEDState(core.Green, true)
	case Moderato:
		core.SetLEDState(core.Yellow, true)
	case Allegro:
		core.SetLEDState(core.Red, true)
	case Presto:
		core.AllLEDsOn()
	}
}
