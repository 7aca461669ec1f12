package thermistor

import (
	"periph.io/x/conn/v3/analog"
	"periph.io/x/conn/v3/physic"
)

// fixedADC is an analog.PinADC that always reads the same voltage. It stands in for the ADC when
// there is no hardware.
type fixedADC struct {
	v   physic.ElectricPotential
	err error
}

func (f *fixedADC) String() string   { return "fixed-adc" }
func (f *fixedADC) Halt() error      { return nil }
func (f *fixedADC) Name() string     { return "fixed-adc" }
func (f *fixedADC) Number() int      { return -1 }
func (f *fixedADC) Function() string { return "ADC" }

func (f *fixedADC) Range() (analog.Sample, analog.Sample) {
	return analog.Sample{}, analog.Sample{V: f.v * 2}
}

func (f *fixedADC) Read() (analog.Sample, error) {
	if f.err != nil {
		return analog.Sample{}, f.err
	}
	return analog.Sample{V: f.v}, nil
}
