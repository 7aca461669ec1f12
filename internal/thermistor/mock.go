//go:build !pi

package thermistor

import (
	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/physic"
)

type Config struct {
	Bus     string
	Address uint16
	Channel int
	Supply  physic.ElectricPotential
	Series  float64
}

// Thermometer reports a divider sitting at half the supply, which is room temperature.
type Thermometer struct {
	*Sensor
}

func Open(cfg Config) (*Thermometer, error) {
	log.Infof("Simulating thermistor on channel %d", cfg.Channel)
	return &Thermometer{
		Sensor: NewSensor(&fixedADC{v: cfg.Supply / 2}, cfg.Supply, cfg.Series),
	}, nil
}

func (t *Thermometer) Close() error {
	return nil
}
