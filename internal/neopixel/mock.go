//go:build !pi

package neopixel

import (
	"github.com/callebjorkell/party-lamp/internal/color"
	log "github.com/sirupsen/logrus"
)

type mockEngine struct {
	colors     []uint32
	brightness int
}

func (d *mockEngine) Init() error {
	return nil
}

func (d *mockEngine) Render() error {
	if log.IsLevelEnabled(log.TraceLevel) {
		first := color.Scale(color.FromUint32(d.colors[0]), uint8(d.brightness))
		log.Tracef("neopixel: render %d pixels, first %v", len(d.colors), first)
	}
	return nil
}

func (d *mockEngine) Wait() error {
	return nil
}

func (d *mockEngine) Fini() {
	log.Debug("neopixel: fini")
}

func (d *mockEngine) Leds(_ int) []uint32 {
	return d.colors
}

func (d *mockEngine) SetBrightness(_ int, brightness int) {
	d.brightness = brightness
}

func NewLedController(cfg Config) (*LedController, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.Infof("Simulating LED strip with %d pixels", cfg.Count)
	l := &LedController{
		ws: &mockEngine{
			colors:     make([]uint32, cfg.Count),
			brightness: int(cfg.Brightness),
		},
	}
	return l, l.clear()
}
