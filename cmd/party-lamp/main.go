package main

import (
	"context"
	"fmt"
	"github.com/callebjorkell/party-lamp/internal/button"
	"github.com/callebjorkell/party-lamp/internal/diag"
	"github.com/callebjorkell/party-lamp/internal/lamp"
	"github.com/callebjorkell/party-lamp/internal/lcd"
	"github.com/callebjorkell/party-lamp/internal/mode"
	"github.com/callebjorkell/party-lamp/internal/neopixel"
	"github.com/callebjorkell/party-lamp/internal/thermistor"
	"github.com/callebjorkell/party-lamp/internal/tone"
	"github.com/coreos/go-systemd/v22/daemon"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"os"
	"os/signal"
	"syscall"
)

type colorFormatter struct {
	log.TextFormatter
}

func (f *colorFormatter) Format(entry *log.Entry) ([]byte, error) {
	var levelColor int
	switch entry.Level {
	case log.DebugLevel, log.TraceLevel:
		levelColor = 90 // dark grey
	case log.WarnLevel:
		levelColor = 33 // yellow
	case log.ErrorLevel, log.FatalLevel, log.PanicLevel:
		levelColor = 91 // bright red
	default:
		levelColor = 39 // default
	}
	return []byte(fmt.Sprintf("\x1b[%dm%s\x1b[0m\n", levelColor, entry.Message)), nil
}

func main() {
	log.SetFormatter(&colorFormatter{})

	if err := RootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func openSinks(conf *Config) (diag.Multi, func(), error) {
	var sinks diag.Multi
	closers := []func() error{}
	cleanup := func() {
		for _, c := range closers {
			if err := c(); err != nil {
				log.Warn("Close failed: ", err)
			}
		}
	}

	if conf.Serial.Port != "" {
		s, err := diag.OpenSerial(conf.Serial.Port, conf.Serial.Baud)
		if err != nil {
			return nil, cleanup, err
		}
		sinks = append(sinks, s)
		closers = append(closers, s.Close)
	} else {
		sinks = append(sinks, diag.NewWriterSink(os.Stdout))
	}

	if conf.LCD {
		d, err := lcd.Open()
		if err != nil {
			return nil, cleanup, err
		}
		sinks = append(sinks, d)
		closers = append(closers, d.Clear)
	}

	return sinks, cleanup, nil
}

func startLamp(conf *Config) error {
	strip, err := neopixel.NewLedController(conf.StripConfig())
	if err != nil {
		return errors.Wrap(err, "led strip")
	}
	defer strip.Close()
	strip.SetBrightness(conf.Strip.Brightness)

	pins := conf.ColorPins()
	board, err := button.Open(button.Config{Chip: conf.Buttons.Chip, Inputs: pins.Pins()})
	if err != nil {
		return errors.Wrap(err, "buttons")
	}
	defer board.Close()

	piezo, err := tone.New(conf.Piezo)
	if err != nil {
		return errors.Wrap(err, "piezo")
	}
	defer piezo.Close()

	thermo, err := thermistor.Open(conf.ThermistorConfig())
	if err != nil {
		return errors.Wrap(err, "thermistor")
	}
	defer thermo.Close()

	sinks, closeSinks, err := openSinks(conf)
	defer closeSinks()
	if err != nil {
		return errors.Wrap(err, "diagnostics")
	}

	policy, err := lamp.ParseIdlePolicy(conf.IdlePolicy)
	if err != nil {
		return err
	}

	state := &mode.State{}
	handler := mode.NewHandler(state, piezo)
	if err := board.OnRisingEdge(button.Pin(conf.Buttons.Mode), handler.HandleEdge); err != nil {
		return errors.Wrap(err, "mode button")
	}

	ctrl := lamp.NewController(lamp.Options{
		Strip:       strip,
		Mode:        state,
		Buttons:     button.NewDebouncer(board),
		Pins:        pins,
		Thermometer: thermo,
		Sink:        sinks,
		Policy:      policy,
		Initial:     conf.InitialColor(),
	})

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signalChan)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return ctrl.Run(ctx)
	})
	g.Go(func() error {
		select {
		case s := <-signalChan:
			log.Infof("Got %v, shutting down", s)
			if _, err := daemon.SdNotify(false, daemon.SdNotifyStopping); err != nil {
				log.Debug("sd_notify: ", err)
			}
			cancel()
		case <-ctx.Done():
		}
		return nil
	})

	if ok, err := daemon.SdNotify(false, daemon.SdNotifyReady); err != nil {
		log.Warn("Unable to notify systemd: ", err)
	} else if ok {
		log.Debug("Notified systemd")
	}

	err = g.Wait()
	log.Info("Done...")
	return err
}
