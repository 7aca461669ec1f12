package main

import (
	"bytes"
	"github.com/callebjorkell/party-lamp/internal/button"
	"github.com/callebjorkell/party-lamp/internal/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"periph.io/x/conn/v3/physic"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	c, err := parseConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, 72, c.Strip.Count)
	assert.Equal(t, uint8(50), c.Strip.Brightness)
	assert.Equal(t, color.RGBW{W: 50}, c.InitialColor())
	assert.Equal(t, "press", c.IdlePolicy)
	assert.Equal(t, 9600, c.Serial.Baud)
	assert.Equal(t, 3300*physic.MilliVolt, c.ThermistorConfig().Supply)
	assert.Len(t, c.ColorPins().Pins(), 8)
	assert.Equal(t, button.Pin(5), c.ColorPins().WhiteUp)
}

func TestConfigOverride(t *testing.T) {
	c, err := parseConfig([]byte(`
strip:
  count: 30
  order: rgbw
buttons:
  mode: 4
serial:
  port: /dev/ttyUSB0
idlePolicy: uptime
initial:
  red: 10
  white: 0
`))
	require.NoError(t, err)

	assert.Equal(t, 30, c.Strip.Count)
	assert.Equal(t, "rgbw", c.Strip.Order)
	assert.Equal(t, uint8(50), c.Strip.Brightness, "unset fields keep their default")
	assert.Equal(t, 4, c.Buttons.Mode)
	assert.Equal(t, "/dev/ttyUSB0", c.Serial.Port)
	assert.Equal(t, "uptime", c.IdlePolicy)
	assert.Equal(t, color.RGBW{R: 10}, c.InitialColor())
}

func TestConfigErrors(t *testing.T) {
	tt := []struct {
		name    string
		content string
	}{
		{"no leds", "strip: {count: 0}"},
		{"bad order", "strip: {order: bgr}"},
		{"brightness overflow", "strip: {brightness: 300}"},
		{"duplicate pin", "buttons: {whiteUp: 6}"},
		{"mode shares a pin", "buttons: {mode: 5}"},
		{"negative pin", "buttons: {blueDown: -1}"},
		{"no piezo", `piezo: ""`},
		{"bad adc channel", "thermistor: {channel: 4}"},
		{"no supply", "thermistor: {supply: 0}"},
		{"no baud", "serial: {port: /dev/ttyS0, baud: 0}"},
		{"bad idle policy", "idlePolicy: sometimes"},
		{"not yaml", "strip: [}"},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseConfig([]byte(tc.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lamp.yaml")
	require.NoError(t, os.WriteFile(path, []byte("strip: {count: 12}\n"), 0o600))

	c, err := loadConfig(&startFlags{configFile: path, idlePolicy: "uptime"})
	require.NoError(t, err)
	assert.Equal(t, 12, c.Strip.Count)
	assert.Equal(t, "uptime", c.IdlePolicy)

	_, err = loadConfig(&startFlags{idlePolicy: "never"})
	assert.Error(t, err)

	_, err = loadConfig(&startFlags{configFile: filepath.Join(t.TempDir(), "missing.yaml")})
	assert.Error(t, err)
}

func TestVersionCmd(t *testing.T) {
	var out bytes.Buffer
	cmd := RootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "party-lamp dev (built: unknown)\n", out.String())
}
