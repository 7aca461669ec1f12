package neopixel

import (
	"github.com/callebjorkell/party-lamp/internal/color"
	log "github.com/sirupsen/logrus"
)

// StaticFill sets every pixel to c and pushes the buffer to the strip.
func StaticFill(s Strip, c color.RGBW) error {
	s.Fill(c)
	return s.Show()
}

const (
	rainbowLoops = 3
	rainbowStep  = 256
)

// Rainbow walks the first pixel three times around the color wheel while the rest of the strip
// trails it, spread over one full turn. Every call to Next renders one frame.
type Rainbow struct {
	strip Strip
	first int
}

func NewRainbow(s Strip) *Rainbow {
	return &Rainbow{strip: s}
}

// Frames is the number of frames in a full sweep.
func (r *Rainbow) Frames() int {
	return rainbowLoops * color.HueRange / rainbowStep
}

// Done reports whether every frame has been shown.
func (r *Rainbow) Done() bool {
	return r.first >= rainbowLoops*color.HueRange
}

// Next renders and shows one frame. The interruptor is checked before every pixel write; once it
// fires, the partially written frame is not shown and Next returns false. Next also returns false
// when the sweep is done.
func (r *Rainbow) Next(i Interruptor) bool {
	if r.Done() || i.IsInterrupted() {
		return false
	}

	n := r.strip.Len()
	for p := 0; p < n; p++ {
		if i.IsInterrupted() {
			log.Debug("Rainbow interrupted.")
			return false
		}
		hue := r.first + p*color.HueRange/n
		r.strip.SetPixel(p, color.Gamma32(color.HSV(uint16(hue))))
	}

	if err := r.strip.Show(); err != nil {
		log.Warn("Unable to show rainbow frame: ", err)
	}
	r.first += rainbowStep
	return true
}

// Run renders frames until the sweep is done or interrupted. It returns false if it was cut short.
func (r *Rainbow) Run(i Interruptor) bool {
	for r.Next(i) {
	}
	return r.Done()
}
