// Package metronome is the LED metronome: a periodic beat timer, a
// four-step tempo cycle on the user button, and the tempo persisted to a
// dedicated flash sector so it survives power loss.
package metronome

import "nucleolab/flash"

// Tempo selects one of the four metronome speeds.
type Tempo uint8

const (
	Andante  Tempo = iota // 60 BPM
	Moderato              // 90 BPM
	Allegro               // 120 BPM
	Presto                // 180 BPM
	tempoCount
)

var tempoBPM = [tempoCount]uint32{60, 90, 120, 180}

// BPM returns the tempo in beats per minute.
func (t Tempo) BPM() uint32 {
	return tempoBPM[t]
}

// PeriodMillis returns the beat period for the 1 kHz timer.
func (t Tempo) PeriodMillis() uint32 {
	return 60000 / t.BPM()
}

// Next cycles to the following tempo.
func (t Tempo) Next() Tempo {
	return (t + 1) % tempoCount
}

func (t Tempo) String() string {
	switch t {
	case Andante:
		return "Andante"
	case Moderato:
		return "Moderato"
	case Allegro:
		return "Allegro"
	case Presto:
		return "Presto"
	}
	return "Unknown"
}

// ReloadValue is the auto-reload register value for a 1 ms-per-tick timer
// counting one beat period: the timer wraps after period ticks, so the
// reload is period-1.
func ReloadValue(t Tempo) uint32 {
	return t.PeriodMillis() - 1
}

// LoadTempo reads the persisted tempo, falling back to Andante when the
// record is missing, its magic is wrong, or the stored index is out of
// range.
func LoadTempo(store flash.Store) Tempo {
	index, ok := store.Load()
	if !ok || index >= uint32(tempoCount) {
		return Andante
	}
	return Tempo(index)
}

// SaveTempo persists the tempo. Takes up to about a second for the sector
// erase; beats are suspended for the duration.
func SaveTempo(store flash.Store, t Tempo) error {
	return store.Save(uint32(t))
}
