package color

import (
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
	"testing"
)

func TestScale(t *testing.T) {
	tt := []struct {
		name   string
		input  RGBW
		level  uint8
		output RGBW
	}{
		{
			"full brightness red",
			RGBW{R: 0xff},
			255,
			RGBW{R: 0xff},
		},
		{
			"full brightness white",
			RGBW{W: 0xff},
			255,
			RGBW{W: 0xff},
		},
		{
			"zero brightness mixed",
			RGBW{R: 0xff, G: 0x10, B: 0x20, W: 0x30},
			0,
			RGBW{},
		},
		{
			"half brightness",
			RGBW{R: 0x80, G: 0x60, B: 0x40, W: 0xff},
			127,
			RGBW{R: 0x40, G: 0x30, B: 0x20, W: 0x7f},
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.output, Scale(tc.input, tc.level))
		})
	}
}

func TestAdjust(t *testing.T) {
	tt := []struct {
		name      string
		fn        func(uint8, bool) uint8
		input     uint8
		longPress bool
		output    uint8
	}{
		{"increase short", Increase, 100, false, 101},
		{"increase long", Increase, 100, true, 110},
		{"increase long to top", Increase, 245, true, 255},
		{"increase long near top", Increase, 246, true, 247},
		{"increase at top", Increase, 255, true, 255},
		{"increase at top short", Increase, 255, false, 255},
		{"decrease short", Decrease, 100, false, 99},
		{"decrease long", Decrease, 100, true, 90},
		{"decrease long to zero", Decrease, 10, true, 0},
		{"decrease long near bottom", Decrease, 5, true, 4},
		{"decrease at bottom", Decrease, 0, true, 0},
		{"decrease at bottom short", Decrease, 0, false, 0},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.output, tc.fn(tc.input, tc.longPress))
		})
	}
}

func TestAdjustProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := rapid.Uint8().Draw(t, "value")
		long := rapid.Bool().Draw(t, "long")

		up := Increase(v, long)
		down := Decrease(v, long)

		if v < 255 && up <= v {
			t.Fatalf("increase(%d, %v) = %d is not above the input", v, long, up)
		}
		if v > 0 && down >= v {
			t.Fatalf("decrease(%d, %v) = %d is not below the input", v, long, down)
		}
		if int(up)-int(v) > longStep || int(v)-int(down) > longStep {
			t.Fatalf("step for %d too large: up=%d down=%d", v, up, down)
		}
		if back := Decrease(up, long); int(back) > int(v)+longStep {
			t.Fatalf("decrease(increase(%d)) = %d", v, back)
		}
	})
}

func TestChannelAccess(t *testing.T) {
	c := RGBW{R: 1, G: 2, B: 3, W: 4}
	for _, ch := range []Channel{White, Red, Green, Blue} {
		n := c.With(ch, 200)
		assert.Equal(t, uint8(200), n.Get(ch), ch.String())
	}
	assert.Equal(t, RGBW{R: 1, G: 2, B: 3, W: 9}, c.With(White, 9))
	assert.Equal(t, "W", White.String())
	assert.Equal(t, "B", Blue.String())
}

func TestPacking(t *testing.T) {
	c := RGBW{R: 0x11, G: 0x22, B: 0x33, W: 0x44}
	assert.Equal(t, uint32(0x44112233), c.Uint32())
	assert.Equal(t, c, FromUint32(c.Uint32()))
}

func TestHSV(t *testing.T) {
	assert.Equal(t, RGBW{R: 255}, HSV(0))
	assert.Equal(t, RGBW{R: 255}, HSV(65535))
	assert.Equal(t, RGBW{G: 255}, HSV(21845))
	assert.Equal(t, RGBW{B: 255}, HSV(43690))
	assert.Equal(t, RGBW{R: 255, G: 255, B: 255}, HSVWith(1234, 0, 255))
	assert.Equal(t, RGBW{}, HSVWith(1234, 255, 0))
}

func TestGamma(t *testing.T) {
	assert.Equal(t, uint8(0), Gamma8(0))
	assert.Equal(t, uint8(255), Gamma8(255))
	for i := 1; i < 256; i++ {
		assert.LessOrEqual(t, Gamma8(uint8(i-1)), Gamma8(uint8(i)))
	}
	assert.Equal(t, RGBW{R: 255, W: 255}, Gamma32(RGBW{R: 255, W: 255}))
}
