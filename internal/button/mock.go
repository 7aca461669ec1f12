//go:build !pi

package button

import (
	log "github.com/sirupsen/logrus"
	"os"
	"os/signal"
	"periph.io/x/conn/v3/gpio"
	"sync"
	"syscall"
)

// Board simulates the buttons. All inputs idle high. Sending SIGHUP to the process fires the
// rising edge handlers.
type Board struct {
	mu       sync.Mutex
	levels   map[Pin]gpio.Level
	handlers []func()
	hup      chan os.Signal
	done     chan struct{}
}

func Open(cfg Config) (*Board, error) {
	log.Infoln("Initializing simulated button handler")
	b := &Board{
		levels: make(map[Pin]gpio.Level, len(cfg.Inputs)),
		done:   make(chan struct{}),
	}
	for _, pin := range cfg.Inputs {
		b.levels[pin] = gpio.High
	}
	return b, nil
}

// Set forces the level of a simulated input.
func (b *Board) Set(pin Pin, l gpio.Level) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.levels[pin] = l
}

func (b *Board) Read(pin Pin) gpio.Level {
	b.mu.Lock()
	defer b.mu.Unlock()

	l, ok := b.levels[pin]
	if !ok {
		return gpio.High
	}
	return l
}

func (b *Board) OnRisingEdge(pin Pin, handler func()) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers = append(b.handlers, handler)
	if b.hup == nil {
		b.hup = make(chan os.Signal, 1)
		signal.Notify(b.hup, syscall.SIGHUP)
		go b.simulateEdges()
	}
	log.Infof("Send SIGHUP to simulate a rising edge on %v", pin)
	return nil
}

func (b *Board) simulateEdges() {
	for {
		select {
		case <-b.hup:
		case <-b.done:
			return
		}

		b.mu.Lock()
		handlers := b.handlers
		b.mu.Unlock()
		for _, h := range handlers {
			h()
		}
	}
}

func (b *Board) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.hup != nil {
		signal.Stop(b.hup)
	}
	select {
	case <-b.done:
	default:
		close(b.done)
	}
	return nil
}
