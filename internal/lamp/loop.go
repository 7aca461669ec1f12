// Package lamp is the control loop: it renders the current mode, polls the color buttons and
// reports every accepted adjustment.
package lamp

import (
	"context"
	"github.com/callebjorkell/party-lamp/internal/button"
	"github.com/callebjorkell/party-lamp/internal/color"
	"github.com/callebjorkell/party-lamp/internal/diag"
	"github.com/callebjorkell/party-lamp/internal/mode"
	"github.com/callebjorkell/party-lamp/internal/neopixel"
	log "github.com/sirupsen/logrus"
	"time"
)

type Thermometer interface {
	ReadTemperature() float64
}

type Debouncer interface {
	IsPressed(pin button.Pin) bool
}

type Options struct {
	Strip       neopixel.Strip
	Mode        *mode.State
	Buttons     Debouncer
	Pins        ColorPins
	Thermometer Thermometer
	Sink        diag.Sink
	Policy      IdlePolicy
	Initial     color.RGBW
	// Now defaults to time.Now.
	Now func() time.Time
}

type Controller struct {
	state    State
	strip    neopixel.Strip
	mode     *mode.State
	buttons  Debouncer
	bindings []Binding
	thermo   Thermometer
	sink     diag.Sink
	policy   IdlePolicy
	now      func() time.Time

	lastMode mode.Mode
	partying bool
}

func NewController(o Options) *Controller {
	now := o.Now
	if now == nil {
		now = time.Now
	}

	return &Controller{
		state: State{
			Color:           o.Initial,
			LastInteraction: now(),
		},
		strip:    o.Strip,
		mode:     o.Mode,
		buttons:  o.Buttons,
		bindings: o.Pins.Bindings(),
		thermo:   o.Thermometer,
		sink:     o.Sink,
		policy:   o.Policy,
		now:      now,
		lastMode: o.Mode.Load(),
	}
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	return c.state
}

// Run ticks until the context is cancelled.
func (c *Controller) Run(ctx context.Context) error {
	log.Infof("Starting control loop in %v mode, idle policy %v", c.lastMode, c.policy)
	for {
		select {
		case <-ctx.Done():
			log.Info("Control loop stopped")
			return nil
		default:
		}
		c.Tick(ctx)
	}
}

// Tick runs one pass: render the current mode, then act on at most one color button.
func (c *Controller) Tick(ctx context.Context) {
	now := c.now()
	elapsed := c.state.Elapsed(now)
	longPress := elapsed >= LongPressThreshold
	party := elapsed >= PartyThreshold

	c.render(ctx, party)
	c.poll(now, longPress)
}

func (c *Controller) render(ctx context.Context, party bool) {
	m := c.mode.Load()
	if m != c.lastMode {
		log.Infof("Display mode is now %v", m)
		c.lastMode = m
	}

	if m == mode.Normal {
		c.partying = false
		if err := neopixel.StaticFill(c.strip, c.state.Color); err != nil {
			log.Warn("Unable to show color: ", err)
		}
		return
	}

	if party != c.partying {
		log.Debugf("Party play: %v", party)
		c.partying = party
	}
	if !party {
		return
	}

	stillSpecial := neopixel.InterruptorFunc(func() bool {
		return c.mode.Load() != mode.Special || ctx.Err() != nil
	})
	if !neopixel.NewRainbow(c.strip).Run(stillSpecial) {
		log.Debug("Party interrupted")
	}
}

func (c *Controller) poll(now time.Time, longPress bool) {
	for _, b := range c.bindings {
		if !c.buttons.IsPressed(b.Pin) {
			continue
		}

		v := c.state.Color.Get(b.Channel)
		if b.Direction == diag.Up {
			v = color.Increase(v, longPress)
		} else {
			v = color.Decrease(v, longPress)
		}
		c.state.Color = c.state.Color.With(b.Channel, v)
		if c.policy == ResetOnPress {
			c.state.LastInteraction = now
		}

		e := diag.Event{
			Channel:     b.Channel,
			Direction:   b.Direction,
			Value:       v,
			Temperature: c.thermo.ReadTemperature(),
		}
		log.Debug(e.Line())
		if err := c.sink.Report(e); err != nil {
			log.Warn("Unable to report adjustment: ", err)
		}
		return
	}
}
