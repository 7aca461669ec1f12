package lamp

import (
	"github.com/callebjorkell/party-lamp/internal/button"
	"github.com/callebjorkell/party-lamp/internal/color"
	"github.com/callebjorkell/party-lamp/internal/diag"
	"github.com/pkg/errors"
	"time"
)

const (
	// LongPressThreshold is how long since the last interaction before adjustments use the coarse step.
	LongPressThreshold = 9 * time.Second
	// PartyThreshold is how long since the last interaction before the rainbow starts playing.
	PartyThreshold = 10 * time.Second
)

// IdlePolicy decides what restarts the idle clock.
type IdlePolicy int

const (
	// ResetOnPress restarts the idle clock whenever a color button is accepted.
	ResetOnPress IdlePolicy = iota
	// Uptime never restarts the idle clock, so both thresholds count from power on.
	Uptime
)

func (p IdlePolicy) String() string {
	switch p {
	case ResetOnPress:
		return "press"
	case Uptime:
		return "uptime"
	}
	return "unknown"
}

func ParseIdlePolicy(s string) (IdlePolicy, error) {
	switch s {
	case "", "press":
		return ResetOnPress, nil
	case "uptime":
		return Uptime, nil
	}
	return 0, errors.Errorf("unknown idle policy %q", s)
}

// State is everything the control loop owns between ticks.
type State struct {
	Color           color.RGBW
	LastInteraction time.Time
}

// Elapsed is the time since the last interaction.
func (s State) Elapsed(now time.Time) time.Duration {
	return now.Sub(s.LastInteraction)
}

// Binding maps a button to a channel adjustment.
type Binding struct {
	Pin       button.Pin
	Channel   color.Channel
	Direction diag.Direction
}

// ColorPins are the eight adjustment buttons.
type ColorPins struct {
	WhiteUp, WhiteDown button.Pin
	RedUp, RedDown     button.Pin
	GreenUp, GreenDown button.Pin
	BlueUp, BlueDown   button.Pin
}

// Bindings returns the buttons in polling priority order. When several are held, the first one
// wins.
func (p ColorPins) Bindings() []Binding {
	return []Binding{
		{p.WhiteUp, color.White, diag.Up},
		{p.WhiteDown, color.White, diag.Down},
		{p.RedUp, color.Red, diag.Up},
		{p.RedDown, color.Red, diag.Down},
		{p.GreenUp, color.Green, diag.Up},
		{p.GreenDown, color.Green, diag.Down},
		{p.BlueUp, color.Blue, diag.Up},
		{p.BlueDown, color.Blue, diag.Down},
	}
}

// Pins lists the pins in priority order.
func (p ColorPins) Pins() []button.Pin {
	var pins []button.Pin
	for _, b := range p.Bindings() {
		pins = append(pins, b.Pin)
	}
	return pins
}
