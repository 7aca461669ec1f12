//go:build pi

package button

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/warthog618/go-gpiocdev"
	"periph.io/x/conn/v3/gpio"
)

// Board holds the requested GPIO lines.
type Board struct {
	chip  string
	lines map[Pin]*gpiocdev.Line
	edges []*gpiocdev.Line
}

// Open requests every input line with a pull-up.
func Open(cfg Config) (*Board, error) {
	log.Infoln("Initializing button handler")
	b := &Board{
		chip:  cfg.Chip,
		lines: make(map[Pin]*gpiocdev.Line, len(cfg.Inputs)),
	}

	for _, pin := range cfg.Inputs {
		l, err := gpiocdev.RequestLine(cfg.Chip, int(pin), gpiocdev.AsInput, gpiocdev.WithPullUp)
		if err != nil {
			b.Close()
			return nil, errors.Wrapf(err, "request %v", pin)
		}
		b.lines[pin] = l
	}

	return b, nil
}

// Read returns the line level. A line that cannot be read is reported high, which is "not pressed".
func (b *Board) Read(pin Pin) gpio.Level {
	l, ok := b.lines[pin]
	if !ok {
		log.Warnf("Read of unrequested pin %v", pin)
		return gpio.High
	}

	v, err := l.Value()
	if err != nil {
		log.Warnf("Unable to read %v: %v", pin, err)
		return gpio.High
	}
	return v != 0
}

func (b *Board) OnRisingEdge(pin Pin, handler func()) error {
	l, err := gpiocdev.RequestLine(b.chip, int(pin),
		gpiocdev.AsInput,
		gpiocdev.WithPullUp,
		gpiocdev.WithRisingEdge,
		gpiocdev.WithEventHandler(func(gpiocdev.LineEvent) {
			handler()
		}))
	if err != nil {
		return errors.Wrapf(err, "watch %v", pin)
	}
	b.edges = append(b.edges, l)
	return nil
}

func (b *Board) Close() error {
	var first error
	for _, l := range b.edges {
		if err := l.Close(); err != nil && first == nil {
			first = err
		}
	}
	for pin, l := range b.lines {
		if err := l.Close(); err != nil && first == nil {
			first = errors.Wrapf(err, "close %v", pin)
		}
	}
	return first
}
