//go:build pi

package thermistor

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/devices/v3/ads1x15"
	"periph.io/x/host/v3"
)

type Config struct {
	Bus     string
	Address uint16
	Channel int
	Supply  physic.ElectricPotential
	Series  float64
}

// Thermometer is a Sensor behind an ADS1115 on the I2C bus.
type Thermometer struct {
	*Sensor
	bus i2c.BusCloser
}

var channels = []ads1x15.Channel{ads1x15.Channel0, ads1x15.Channel1, ads1x15.Channel2, ads1x15.Channel3}

func Open(cfg Config) (*Thermometer, error) {
	if _, err := host.Init(); err != nil {
		return nil, errors.Wrap(err, "unable to initialize periph")
	}
	if cfg.Channel < 0 || cfg.Channel >= len(channels) {
		return nil, errors.Errorf("invalid ADC channel %d", cfg.Channel)
	}

	bus, err := i2creg.Open(cfg.Bus)
	if err != nil {
		return nil, errors.Wrap(err, "open i2c bus")
	}

	opts := ads1x15.DefaultOpts
	if cfg.Address != 0 {
		opts.I2cAddress = cfg.Address
	}
	adc, err := ads1x15.NewADS1115(bus, &opts)
	if err != nil {
		bus.Close()
		return nil, errors.Wrap(err, "open ADS1115")
	}

	pin, err := adc.PinForChannel(channels[cfg.Channel], cfg.Supply, physic.Hertz, ads1x15.SaveEnergy)
	if err != nil {
		bus.Close()
		return nil, errors.Wrap(err, "open ADC channel")
	}

	log.Infof("Thermistor on ADS1115 channel %d", cfg.Channel)
	return &Thermometer{
		Sensor: NewSensor(pin, cfg.Supply, cfg.Series),
		bus:    bus,
	}, nil
}

func (t *Thermometer) Close() error {
	return t.bus.Close()
}
