package diag

import (
	"bytes"
	"errors"
	"github.com/callebjorkell/party-lamp/internal/color"
	"github.com/stretchr/testify/assert"
	"math"
	"testing"
)

func TestLine(t *testing.T) {
	tt := []struct {
		name  string
		event Event
		line  string
	}{
		{"white up", Event{color.White, Up, 51, 23.456}, "W + 51 23.46 C"},
		{"red down", Event{color.Red, Down, 0, -4}, "R - 0 -4.00 C"},
		{"sensor nan", Event{color.Green, Up, 255, math.NaN()}, "G + 255 nan C"},
		{"sensor inf", Event{color.Blue, Down, 9, math.Inf(1)}, "B - 9 inf C"},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.line, tc.event.Line())
		})
	}
}

func TestWriterSink(t *testing.T) {
	var buf bytes.Buffer
	s := NewWriterSink(&buf)

	assert.NoError(t, s.Report(Event{color.White, Up, 51, 20}))
	assert.NoError(t, s.Report(Event{color.White, Down, 50, 20}))
	assert.Equal(t, "W + 51 20.00 C\r\nW - 50 20.00 C\r\n", buf.String())
}

type failingSink struct{ calls int }

func (f *failingSink) Report(Event) error {
	f.calls++
	return errors.New("unplugged")
}

func TestMulti(t *testing.T) {
	var buf bytes.Buffer
	f := &failingSink{}
	m := Multi{f, NewWriterSink(&buf)}

	err := m.Report(Event{color.Red, Up, 1, 20})
	assert.Error(t, err)
	assert.Equal(t, 1, f.calls)
	assert.Equal(t, "R + 1 20.00 C\r\n", buf.String())
}
