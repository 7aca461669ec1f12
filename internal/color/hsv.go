package color

import "math"

// HueRange is the size of the color wheel. Hue values wrap around at this point.
const HueRange = 65536

const gamma = 2.6

var gammaTable [256]uint8

func init() {
	for i := range gammaTable {
		gammaTable[i] = uint8(math.Pow(float64(i)/255, gamma)*255 + 0.5)
	}
}

// HSV converts a hue on the 0-65535 wheel to a fully saturated, full value color. White is left off.
func HSV(hue uint16) RGBW {
	return HSVWith(hue, 255, 255)
}

// HSVWith converts hue, saturation and value to an RGB color. The wheel is split in six 255-wide
// segments; red sits at both 0 and the top of the range so the sweep wraps without a seam.
func HSVWith(hue uint16, sat, val uint8) RGBW {
	var r, g, b uint32

	h := (uint32(hue)*1530 + 32768) / 65536
	switch {
	case h < 510:
		b = 0
		if h < 255 {
			r, g = 255, h
		} else {
			r, g = 510-h, 255
		}
	case h < 1020:
		r = 0
		if h < 765 {
			g, b = 255, h-510
		} else {
			g, b = 1020-h, 255
		}
	case h < 1530:
		g = 0
		if h < 1275 {
			r, b = h-1020, 255
		} else {
			r, b = 255, 1530-h
		}
	default:
		r, g, b = 255, 0, 0
	}

	v1 := 1 + uint32(val)
	s1 := 1 + uint32(sat)
	s2 := 255 - uint32(sat)

	apply := func(c uint32) uint8 {
		return uint8(((((c * s1) >> 8) + s2) * v1) >> 8)
	}
	return RGBW{R: apply(r), G: apply(g), B: apply(b)}
}

// Gamma8 maps a linear intensity to a perceptually linear one.
func Gamma8(v uint8) uint8 {
	return gammaTable[v]
}

// Gamma32 applies Gamma8 to every channel.
func Gamma32(c RGBW) RGBW {
	return RGBW{
		R: gammaTable[c.R],
		G: gammaTable[c.G],
		B: gammaTable[c.B],
		W: gammaTable[c.W],
	}
}
