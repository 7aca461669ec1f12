//go:build pi

package tone

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"
	"sync"
	"time"
)

// Piezo plays square waves on a PWM capable pin.
type Piezo struct {
	pin   gpio.PinIO
	mu    sync.Mutex
	timer *time.Timer
}

// New opens the named pin (e.g. "GPIO13") for tone output.
func New(pinName string) (*Piezo, error) {
	if _, err := host.Init(); err != nil {
		return nil, errors.Wrap(err, "unable to initialize periph")
	}

	pin := gpioreg.ByName(pinName)
	if pin == nil {
		return nil, errors.Errorf("no such pin: %s", pinName)
	}
	if err := pin.Out(gpio.Low); err != nil {
		return nil, errors.Wrapf(err, "unable to set %s as output", pinName)
	}
	log.Infof("Piezo on %v", pin)
	return &Piezo{pin: pin}, nil
}

// Play starts the tone and schedules it to stop. A tone that is still playing is cut short.
func (p *Piezo) Play(frequency int, duration time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.timer != nil {
		p.timer.Stop()
	}
	if err := p.pin.PWM(gpio.DutyHalf, physic.Frequency(frequency)*physic.Hertz); err != nil {
		log.Warn("Unable to play tone: ", err)
		return
	}
	p.timer = time.AfterFunc(duration, p.silence)
}

func (p *Piezo) silence() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.pin.Out(gpio.Low); err != nil {
		log.Warn("Unable to silence piezo: ", err)
	}
}

// Close stops any playing tone and halts the pin.
func (p *Piezo) Close() error {
	p.mu.Lock()
	if p.timer != nil {
		p.timer.Stop()
	}
	p.mu.Unlock()
	p.silence()
	return p.pin.Halt()
}
