package thermistor

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"math"
	"periph.io/x/conn/v3/physic"
	"testing"
)

func TestCelsius(t *testing.T) {
	tt := []struct {
		name  string
		ratio float64
		temp  float64
	}{
		{"balanced divider", 0.5, 25.0},
		{"cold", 0.25, 1.67},
		{"warm", 0.75, 52.04},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.temp, Celsius(tc.ratio, DefaultSeriesResistance), 0.01)
		})
	}
}

func TestCelsiusRaw(t *testing.T) {
	assert.InDelta(t, 25.04, CelsiusRaw(512, 1023, DefaultSeriesResistance), 0.01)
}

func TestCelsiusRails(t *testing.T) {
	assert.InDelta(t, -kelvinOffset, Celsius(0, DefaultSeriesResistance), 0.001)
	assert.InDelta(t, -kelvinOffset, Celsius(1, DefaultSeriesResistance), 0.001)
	assert.True(t, math.IsNaN(Celsius(1.5, DefaultSeriesResistance)))
}

func TestSensor(t *testing.T) {
	s := NewSensor(&fixedADC{v: 1650 * physic.MilliVolt}, 3300*physic.MilliVolt, DefaultSeriesResistance)
	assert.InDelta(t, 25.0, s.ReadTemperature(), 0.01)

	broken := NewSensor(&fixedADC{err: errors.New("i2c nack")}, 3300*physic.MilliVolt, DefaultSeriesResistance)
	assert.True(t, math.IsNaN(broken.ReadTemperature()))
}
