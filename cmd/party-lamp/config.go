package main

import (
	"fmt"
	"github.com/callebjorkell/party-lamp/internal/button"
	"github.com/callebjorkell/party-lamp/internal/color"
	"github.com/callebjorkell/party-lamp/internal/diag"
	"github.com/callebjorkell/party-lamp/internal/lamp"
	"github.com/callebjorkell/party-lamp/internal/neopixel"
	"github.com/callebjorkell/party-lamp/internal/thermistor"
	"gopkg.in/yaml.v3"
	"math"
	"periph.io/x/conn/v3/physic"
)

type Config struct {
	Strip struct {
		GpioPin    int    `yaml:"gpioPin"`
		Count      int    `yaml:"count"`
		Brightness uint8  `yaml:"brightness"`
		Order      string `yaml:"order"`
	} `yaml:"strip"`
	Buttons struct {
		Chip      string `yaml:"chip"`
		WhiteUp   int    `yaml:"whiteUp"`
		WhiteDown int    `yaml:"whiteDown"`
		RedUp     int    `yaml:"redUp"`
		RedDown   int    `yaml:"redDown"`
		GreenUp   int    `yaml:"greenUp"`
		GreenDown int    `yaml:"greenDown"`
		BlueUp    int    `yaml:"blueUp"`
		BlueDown  int    `yaml:"blueDown"`
		Mode      int    `yaml:"mode"`
	} `yaml:"buttons"`
	Piezo      string `yaml:"piezo"`
	Thermistor struct {
		Bus              string  `yaml:"bus"`
		Address          uint16  `yaml:"address"`
		Channel          int     `yaml:"channel"`
		Supply           float64 `yaml:"supply"`
		SeriesResistance float64 `yaml:"seriesResistance"`
	} `yaml:"thermistor"`
	Serial struct {
		Port string `yaml:"port"`
		Baud int    `yaml:"baud"`
	} `yaml:"serial"`
	LCD        bool   `yaml:"lcd"`
	IdlePolicy string `yaml:"idlePolicy"`
	Initial    struct {
		Red   uint8 `yaml:"red"`
		Green uint8 `yaml:"green"`
		Blue  uint8 `yaml:"blue"`
		White uint8 `yaml:"white"`
	} `yaml:"initial"`
}

// DefaultConfig is the wiring of the lamp as built.
func DefaultConfig() *Config {
	c := &Config{}
	c.Strip.GpioPin = neopixel.DefaultGpioPin
	c.Strip.Count = neopixel.DefaultCount
	c.Strip.Brightness = neopixel.DefaultBrightness
	c.Strip.Order = neopixel.DefaultOrder

	c.Buttons.Chip = "gpiochip0"
	c.Buttons.WhiteUp = 5
	c.Buttons.WhiteDown = 6
	c.Buttons.RedUp = 16
	c.Buttons.RedDown = 19
	c.Buttons.GreenUp = 20
	c.Buttons.GreenDown = 21
	c.Buttons.BlueUp = 26
	c.Buttons.BlueDown = 27
	c.Buttons.Mode = 12

	c.Piezo = "GPIO13"

	c.Thermistor.Address = 0x48
	c.Thermistor.Supply = 3.3
	c.Thermistor.SeriesResistance = thermistor.DefaultSeriesResistance

	c.Serial.Baud = diag.DefaultBaud
	c.IdlePolicy = lamp.ResetOnPress.String()
	c.Initial.White = 50
	return c
}

func (c *Config) ColorPins() lamp.ColorPins {
	b := c.Buttons
	return lamp.ColorPins{
		WhiteUp: button.Pin(b.WhiteUp), WhiteDown: button.Pin(b.WhiteDown),
		RedUp: button.Pin(b.RedUp), RedDown: button.Pin(b.RedDown),
		GreenUp: button.Pin(b.GreenUp), GreenDown: button.Pin(b.GreenDown),
		BlueUp: button.Pin(b.BlueUp), BlueDown: button.Pin(b.BlueDown),
	}
}

func (c *Config) InitialColor() color.RGBW {
	return color.RGBW{R: c.Initial.Red, G: c.Initial.Green, B: c.Initial.Blue, W: c.Initial.White}
}

func (c *Config) StripConfig() neopixel.Config {
	return neopixel.Config{
		GpioPin:    c.Strip.GpioPin,
		Count:      c.Strip.Count,
		Brightness: c.Strip.Brightness,
		Order:      c.Strip.Order,
	}
}

func (c *Config) ThermistorConfig() thermistor.Config {
	return thermistor.Config{
		Bus:     c.Thermistor.Bus,
		Address: c.Thermistor.Address,
		Channel: c.Thermistor.Channel,
		Supply:  physic.ElectricPotential(math.Round(c.Thermistor.Supply*1000)) * physic.MilliVolt,
		Series:  c.Thermistor.SeriesResistance,
	}
}

func (c *Config) validate() error {
	if err := c.StripConfig().Validate(); err != nil {
		return err
	}

	seen := make(map[button.Pin]bool)
	for i, pin := range append(c.ColorPins().Pins(), button.Pin(c.Buttons.Mode)) {
		if pin < 0 {
			return fmt.Errorf("button %d has a negative pin", i)
		}
		if seen[pin] {
			return fmt.Errorf("pin %v is assigned to more than one button", pin)
		}
		seen[pin] = true
	}

	if c.Piezo == "" {
		return fmt.Errorf("piezo pin is missing")
	}
	if c.Thermistor.Channel < 0 || c.Thermistor.Channel > 3 {
		return fmt.Errorf("thermistor channel must be between 0 and 3")
	}
	if c.Thermistor.Supply <= 0 {
		return fmt.Errorf("thermistor supply voltage must be positive")
	}
	if c.Thermistor.SeriesResistance <= 0 {
		return fmt.Errorf("thermistor series resistance must be positive")
	}
	if c.Serial.Port != "" && c.Serial.Baud <= 0 {
		return fmt.Errorf("baud rate must be positive for serial port %s", c.Serial.Port)
	}
	if _, err := lamp.ParseIdlePolicy(c.IdlePolicy); err != nil {
		return err
	}

	return nil
}

// parseConfig overlays the YAML content on the defaults. Empty content gives the defaults.
func parseConfig(content []byte) (*Config, error) {
	c := DefaultConfig()
	err := yaml.Unmarshal(content, c)
	if err != nil {
		return nil, err
	}

	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}
