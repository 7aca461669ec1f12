package button

import (
	"fmt"
	"periph.io/x/conn/v3/gpio"
)

// Pin is a GPIO line offset on the board's GPIO chip (BCM numbering on a Pi).
type Pin int

func (p Pin) String() string {
	return fmt.Sprintf("GPIO%d", int(p))
}

// Reader reads the raw level of an input. Buttons are wired with pull-ups, so gpio.Low means the
// button is held down.
type Reader interface {
	Read(pin Pin) gpio.Level
}

// EdgeWatcher calls handler from its own context whenever pin goes from low to high. The handler
// must return quickly.
type EdgeWatcher interface {
	OnRisingEdge(pin Pin, handler func()) error
}

type Config struct {
	// Chip is the GPIO character device, e.g. gpiochip0.
	Chip string
	// Inputs are the polled buttons.
	Inputs []Pin
}
