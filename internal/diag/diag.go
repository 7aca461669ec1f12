// Package diag writes the one-line-per-event diagnostic stream.
package diag

import (
	"fmt"
	"github.com/callebjorkell/party-lamp/internal/color"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"math"
	"strconv"
	"sync"
)

type Direction bool

const (
	Up   Direction = true
	Down Direction = false
)

func (d Direction) String() string {
	if d == Up {
		return "+"
	}
	return "-"
}

// Event is a single accepted channel adjustment.
type Event struct {
	Channel     color.Channel
	Direction   Direction
	Value       uint8
	Temperature float64
}

// Line formats the event as "<Channel> <+/-> <value> <temperature> C".
func (e Event) Line() string {
	return fmt.Sprintf("%v %v %d %s C", e.Channel, e.Direction, e.Value, FormatTemperature(e.Temperature))
}

// FormatTemperature prints two decimals, or nan/inf for a failed reading.
func FormatTemperature(t float64) string {
	switch {
	case math.IsNaN(t):
		return "nan"
	case math.IsInf(t, 0):
		return "inf"
	}
	return strconv.FormatFloat(t, 'f', 2, 64)
}

type Sink interface {
	Report(e Event) error
}

// WriterSink writes one line per event, terminated by CRLF like a serial console expects.
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

func (s *WriterSink) Report(e Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := io.WriteString(s.w, e.Line()+"\r\n")
	return errors.Wrap(err, "write diagnostic line")
}

// Multi reports to every sink. A failing sink is logged and does not stop the others.
type Multi []Sink

func (m Multi) Report(e Event) error {
	var first error
	for _, s := range m {
		if err := s.Report(e); err != nil {
			log.Warn("Diagnostic sink failed: ", err)
			if first == nil {
				first = err
			}
		}
	}
	return first
}
