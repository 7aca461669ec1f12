//go:build !pi

package tone

import (
	log "github.com/sirupsen/logrus"
	"time"
)

type Piezo struct {
	pinName string
}

func New(pinName string) (*Piezo, error) {
	log.Infof("Simulating piezo on %s", pinName)
	return &Piezo{pinName: pinName}, nil
}

func (p *Piezo) Play(frequency int, duration time.Duration) {
	log.Infof("piezo %s: %d Hz for %v", p.pinName, frequency, duration)
}

func (p *Piezo) Close() error {
	return nil
}
