package diag

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"go.bug.st/serial"
)

const DefaultBaud = 9600

// SerialSink writes the diagnostic stream to a UART.
type SerialSink struct {
	*WriterSink
	port serial.Port
}

func OpenSerial(device string, baud int) (*SerialSink, error) {
	port, err := serial.Open(device, &serial.Mode{BaudRate: baud})
	if err != nil {
		return nil, errors.Wrapf(err, "open serial port %s", device)
	}

	log.Infof("Diagnostics on %s at %d baud", device, baud)
	return &SerialSink{
		WriterSink: NewWriterSink(port),
		port:       port,
	}, nil
}

func (s *SerialSink) Close() error {
	return s.port.Close()
}
