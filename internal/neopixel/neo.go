package neopixel

import (
	"github.com/callebjorkell/party-lamp/internal/color"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"strings"
)

const (
	DefaultBrightness = 50
	DefaultCount      = 72
	DefaultGpioPin    = 18
	DefaultOrder      = "grbw"
)

type Config struct {
	GpioPin    int
	Count      int
	Brightness uint8
	// Order is the wire order of the pixels, rgbw or grbw.
	Order string
}

func (c Config) Validate() error {
	if c.Count < 1 {
		return errors.New("strip needs at least one led")
	}
	switch strings.ToLower(c.Order) {
	case "rgbw", "grbw":
	default:
		return errors.Errorf("unsupported pixel order %q", c.Order)
	}
	return nil
}

// Strip is an LED strip with an in-memory pixel buffer. Only Show talks to the hardware.
type Strip interface {
	Fill(c color.RGBW)
	SetPixel(i int, c color.RGBW)
	Show() error
	SetBrightness(level uint8)
	Len() int
}

type wsEngine interface {
	Init() error
	Render() error
	Wait() error
	Fini()
	Leds(channel int) []uint32
	SetBrightness(channel int, brightness int)
}

// LedController is the Strip backed by the ws281x engine.
type LedController struct {
	ws wsEngine
}

var _ Strip = (*LedController)(nil)

func (l *LedController) Fill(c color.RGBW) {
	leds := l.ws.Leds(0)
	v := c.Uint32()
	for i := range leds {
		leds[i] = v
	}
}

func (l *LedController) SetPixel(i int, c color.RGBW) {
	leds := l.ws.Leds(0)
	if i < 0 || i >= len(leds) {
		return
	}
	leds[i] = c.Uint32()
}

func (l *LedController) Show() error {
	return l.ws.Render()
}

func (l *LedController) SetBrightness(level uint8) {
	l.ws.SetBrightness(0, int(level))
}

func (l *LedController) Len() int {
	return len(l.ws.Leds(0))
}

// Pixel returns the buffered value of a pixel.
func (l *LedController) Pixel(i int) color.RGBW {
	return color.FromUint32(l.ws.Leds(0)[i])
}

func (l *LedController) clear() error {
	l.Fill(color.RGBW{})
	return l.Show()
}

// Close turns the strip off and releases the driver.
func (l *LedController) Close() {
	if err := l.clear(); err != nil {
		log.Warn("Unable to clear the strip: ", err)
	}
	if err := l.ws.Wait(); err != nil {
		log.Warn("Unable to wait for the strip: ", err)
	}
	l.ws.Fini()
}
