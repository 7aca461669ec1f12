//go:build pi

package neopixel

import (
	"github.com/pkg/errors"
	ws "github.com/rpi-ws281x/rpi-ws281x-go"
	log "github.com/sirupsen/logrus"
	"strings"
)

func stripeType(order string) int {
	if strings.ToLower(order) == "rgbw" {
		return ws.SK6812StripRGBW
	}
	return ws.SK6812StripGRBW
}

func NewLedController(cfg Config) (*LedController, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	opt := ws.DefaultOptions
	opt.Channels[0].GpioPin = cfg.GpioPin
	opt.Channels[0].Brightness = int(cfg.Brightness)
	opt.Channels[0].LedCount = cfg.Count
	opt.Channels[0].StripeType = stripeType(cfg.Order)

	dev, err := ws.MakeWS2811(&opt)
	if err != nil {
		return nil, errors.Wrap(err, "create ws281x device")
	}
	if err := dev.Init(); err != nil {
		return nil, errors.Wrap(err, "init ws281x device")
	}

	log.Infof("LED strip with %d pixels on GPIO%d", cfg.Count, cfg.GpioPin)
	l := &LedController{ws: dev}
	if err := l.clear(); err != nil {
		return nil, errors.Wrap(err, "blank strip")
	}
	return l, nil
}
