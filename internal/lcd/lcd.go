//go:build pi

package lcd

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
	"time"
)

const (
	registerSelectionPin = "GPIO4"
	clockEdgePin         = "GPIO17"
	data4Pin             = "GPIO25"
	data5Pin             = "GPIO22"
	data6Pin             = "GPIO23"
	data7Pin             = "GPIO24"

	character   = gpio.High
	command     = gpio.Low
	signalPulse = 500000 * time.Nanosecond
	signalDelay = 500000 * time.Nanosecond
)

// hd44780 drives the controller in 4 bit mode.
type hd44780 struct {
	registerSelection gpio.PinIO
	clockEdge         gpio.PinIO
	dataPins          [4]gpio.PinIO
}

// Open initializes the LCD pins and the controller.
func Open() (*Display, error) {
	if _, err := host.Init(); err != nil {
		return nil, errors.Wrap(err, "unable to initialize periph")
	}

	log.Infoln("Initializing LCD")
	h := &hd44780{}
	pins := []struct {
		name string
		dst  *gpio.PinIO
	}{
		{registerSelectionPin, &h.registerSelection},
		{clockEdgePin, &h.clockEdge},
		{data4Pin, &h.dataPins[0]},
		{data5Pin, &h.dataPins[1]},
		{data6Pin, &h.dataPins[2]},
		{data7Pin, &h.dataPins[3]},
	}
	for _, p := range pins {
		*p.dst = gpioreg.ByName(p.name)
		if *p.dst == nil {
			return nil, errors.Errorf("no such pin: %s", p.name)
		}
	}

	for _, b := range []byte{0x33, 0x32, 0x28, 0x0C, 0x06, 0x01} {
		if err := h.sendByte(b, command); err != nil {
			return nil, errors.Wrap(err, "lcd init")
		}
	}

	return &Display{w: h}, nil
}

func (h *hd44780) printLine(l Line, msg string) error {
	if err := h.sendByte(byte(l), command); err != nil {
		return err
	}
	m := fit(msg)
	for i := 0; i < lineWidth; i++ {
		if err := h.sendByte(m[i], character); err != nil {
			return err
		}
	}
	return nil
}

func (h *hd44780) sendByte(bits byte, mode gpio.Level) error {
	if err := h.registerSelection.Out(mode); err != nil {
		return err
	}
	if err := h.pulseByte(bits, 0x10); err != nil {
		return err
	}
	return h.pulseByte(bits, 0x01)
}

func (h *hd44780) pulseByte(bits, mask byte) error {
	for i, pin := range h.dataPins {
		level := gpio.Low
		if bits&(mask<<uint(i)) != 0 {
			level = gpio.High
		}
		if err := pin.Out(level); err != nil {
			return err
		}
	}
	time.Sleep(signalDelay)
	if err := h.clockEdge.Out(gpio.High); err != nil {
		return err
	}
	time.Sleep(signalPulse)
	if err := h.clockEdge.Out(gpio.Low); err != nil {
		return err
	}
	time.Sleep(signalDelay)
	return nil
}
