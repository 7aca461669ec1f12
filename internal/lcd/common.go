package lcd

import (
	"fmt"
	"github.com/callebjorkell/party-lamp/internal/diag"
	"sync"
)

type Line byte

func (l Line) String() string {
	switch l {
	case Line1:
		return "L1"
	case Line2:
		return "L2"
	}
	return "N/A"
}

const (
	Line1 Line = 0x80
	Line2 Line = 0xC0

	lineWidth = 16
)

type lineWriter interface {
	printLine(l Line, msg string) error
}

// Display mirrors the latest diagnostic event on a 16x2 character LCD.
type Display struct {
	mu sync.Mutex
	w  lineWriter
}

// Report shows the adjusted channel on the first line and the temperature on the second.
func (d *Display) Report(e diag.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.w.printLine(Line1, fmt.Sprintf("%v %v %d", e.Channel, e.Direction, e.Value)); err != nil {
		return err
	}
	return d.w.printLine(Line2, diag.FormatTemperature(e.Temperature)+" C")
}

// Clear blanks both lines.
func (d *Display) Clear() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.w.printLine(Line1, ""); err != nil {
		return err
	}
	return d.w.printLine(Line2, "")
}

// fit pads or cuts msg to exactly one line.
func fit(msg string) string {
	m := fmt.Sprintf("%-16s", msg)
	return m[:lineWidth]
}
