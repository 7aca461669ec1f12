// Package mode holds the display mode shared between the control loop and the mode button callback.
package mode

import (
	"github.com/callebjorkell/party-lamp/internal/tone"
	log "github.com/sirupsen/logrus"
	"sync/atomic"
)

type Mode uint32

const (
	Normal Mode = iota
	Special
)

func (m Mode) String() string {
	switch m {
	case Normal:
		return "normal"
	case Special:
		return "special"
	}
	return "unknown"
}

// State is the current display mode. Loads and stores are atomic, so the edge callback and the
// control loop can share it without a lock.
type State struct {
	v atomic.Uint32
}

func (s *State) Load() Mode {
	return Mode(s.v.Load())
}

func (s *State) Store(m Mode) {
	s.v.Store(uint32(m))
}

// Toggle flips the mode and returns the new one.
func (s *State) Toggle() Mode {
	for {
		old := s.v.Load()
		next := Special
		if Mode(old) != Normal {
			next = Normal
		}
		if s.v.CompareAndSwap(old, uint32(next)) {
			return next
		}
	}
}

const cueLength = 4

// Handler is called on the rising edge of the mode button. It toggles the mode and plays a short
// cue; it never blocks.
type Handler struct {
	state *State
	piezo tone.Emitter
}

func NewHandler(state *State, piezo tone.Emitter) *Handler {
	return &Handler{state: state, piezo: piezo}
}

func (h *Handler) HandleEdge() {
	m := h.state.Toggle()
	if m == Special {
		h.piezo.Play(tone.NoteDS8, tone.Duration(cueLength))
	} else {
		h.piezo.Play(tone.NoteD8, tone.Duration(cueLength))
	}
	log.Debugf("Mode switched to %v", m)
}
