package button

import (
	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/gpio"
	"time"
)

const SettleDelay = 45 * time.Millisecond

// Debouncer confirms a press by reading the pin twice, one settle delay apart.
type Debouncer struct {
	r      Reader
	settle time.Duration
	sleep  func(time.Duration)
}

func NewDebouncer(r Reader) *Debouncer {
	return &Debouncer{
		r:      r,
		settle: SettleDelay,
		sleep:  time.Sleep,
	}
}

// WithSleep replaces the delay function, mostly so that tests do not have to wait.
func (d *Debouncer) WithSleep(sleep func(time.Duration)) *Debouncer {
	d.sleep = sleep
	return d
}

// IsPressed returns true if the pin is low, and still low after the settle delay. A confirmed
// press holds the caller for a second settle delay before returning.
func (d *Debouncer) IsPressed(pin Pin) bool {
	if d.r.Read(pin) != gpio.Low {
		return false
	}

	d.sleep(d.settle)
	if d.r.Read(pin) != gpio.Low {
		log.Debugf("Bounce on %v ignored", pin)
		return false
	}

	d.sleep(d.settle)
	return true
}
