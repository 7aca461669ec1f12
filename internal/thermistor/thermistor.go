// Package thermistor converts the voltage over an NTC thermistor voltage divider to a temperature.
package thermistor

import (
	log "github.com/sirupsen/logrus"
	"math"
	"periph.io/x/conn/v3/analog"
	"periph.io/x/conn/v3/physic"
)

// Steinhart-Hart coefficients for the 10k NTC on the sensor board.
const (
	c1 = 0.001129148
	c2 = 0.000234125
	c3 = 0.0000000876741

	kelvinOffset = 273.15

	// DefaultSeriesResistance is the fixed resistor on the low side of the divider.
	DefaultSeriesResistance = 10000.0
)

// Celsius returns the temperature for a divider where the thermistor sits on the high side and ratio
// is the measured voltage over the supply. Readings on either rail come out as absolute zero and
// readings past the supply as NaN. Callers only print the value, so neither case is an error.
func Celsius(ratio, seriesResistance float64) float64 {
	r2 := seriesResistance * (1.0/ratio - 1.0)
	logR2 := math.Log(r2)
	kelvin := 1.0 / (c1 + c2*logR2 + c3*logR2*logR2*logR2)
	return kelvin - kelvinOffset
}

// CelsiusRaw is Celsius for a raw ADC count on a scale where fullScale is the supply voltage.
func CelsiusRaw(raw, fullScale int32, seriesResistance float64) float64 {
	return Celsius(float64(raw)/float64(fullScale), seriesResistance)
}

// Sensor reads a thermistor through an ADC pin.
type Sensor struct {
	pin    analog.PinADC
	supply physic.ElectricPotential
	series float64
}

func NewSensor(pin analog.PinADC, supply physic.ElectricPotential, seriesResistance float64) *Sensor {
	return &Sensor{pin: pin, supply: supply, series: seriesResistance}
}

// ReadTemperature returns degrees Celsius, or NaN when the ADC could not be read.
func (s *Sensor) ReadTemperature() float64 {
	sample, err := s.pin.Read()
	if err != nil {
		log.Warn("Unable to read thermistor: ", err)
		return math.NaN()
	}
	return Celsius(float64(sample.V)/float64(s.supply), s.series)
}
