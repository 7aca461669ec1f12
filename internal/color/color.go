package color

import "fmt"

const (
	// fine and coarse adjustment steps.
	step     = 1
	longStep = 10
)

// RGBW is a single pixel value for a four channel strip.
type RGBW struct {
	R, G, B, W uint8
}

// Uint32 packs the color as 0xWWRRGGBB, which is the layout the ws281x driver expects.
func (c RGBW) Uint32() uint32 {
	return uint32(c.W)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

func (c RGBW) String() string {
	return fmt.Sprintf("%08x", c.Uint32())
}

// FromUint32 is the inverse of Uint32.
func FromUint32(v uint32) RGBW {
	return RGBW{
		W: uint8(v >> 24),
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}
}

type Channel byte

const (
	White Channel = iota
	Red
	Green
	Blue
)

// String returns the single letter used for the channel in the diagnostic output.
func (c Channel) String() string {
	switch c {
	case White:
		return "W"
	case Red:
		return "R"
	case Green:
		return "G"
	case Blue:
		return "B"
	}
	return "?"
}

// Get returns the intensity of the given channel.
func (c RGBW) Get(ch Channel) uint8 {
	switch ch {
	case Red:
		return c.R
	case Green:
		return c.G
	case Blue:
		return c.B
	default:
		return c.W
	}
}

// With returns a copy of the color with the given channel replaced.
func (c RGBW) With(ch Channel, v uint8) RGBW {
	switch ch {
	case Red:
		c.R = v
	case Green:
		c.G = v
	case Blue:
		c.B = v
	default:
		c.W = v
	}
	return c
}

// Increase steps a channel value up. A long press moves by 10 as long as that does not pass 255,
// otherwise the value moves by one. 255 stays 255.
func Increase(v uint8, longPress bool) uint8 {
	if v == 255 {
		return v
	}
	if longPress && v < 255-longStep+1 {
		return v + longStep
	}
	return v + step
}

// Decrease is the mirror image of Increase. 0 stays 0.
func Decrease(v uint8, longPress bool) uint8 {
	if v == 0 {
		return v
	}
	if longPress && v > longStep-1 {
		return v - longStep
	}
	return v - step
}

// Scale returns the same color with every channel scaled by level/255, where 255 keeps the input
// unchanged and 0 turns the pixel off.
func Scale(c RGBW, level uint8) RGBW {
	if level == 255 {
		return c
	}
	if level == 0 {
		return RGBW{}
	}

	// same rounding as the strip library: multiply by level+1 and shift.
	s := func(v uint8) uint8 {
		return uint8((uint16(v) * (uint16(level) + 1)) >> 8)
	}
	return RGBW{R: s(c.R), G: s(c.G), B: s(c.B), W: s(c.W)}
}
