// Package tone drives the piezo buzzer used for audible feedback.
package tone

import (
	"math"
	"time"
)

// Frequencies in Hz.
const (
	NoteD8  = 4699
	NoteDS8 = 4978
)

// Emitter plays a tone without blocking the caller. Implementations must be safe to call from the
// GPIO edge callback.
type Emitter interface {
	Play(frequency int, duration time.Duration)
}

// Duration converts a note length index (1 = whole, 2 = half, 3 = quarter...) to a play time,
// where a whole note is 500ms.
func Duration(length int) time.Duration {
	if length < 1 {
		length = 1
	}
	return time.Duration(float64(500*time.Millisecond) / math.Pow(2, float64(length-1)))
}
