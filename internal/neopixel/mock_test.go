//go:build !pi

package neopixel

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestNewLedController(t *testing.T) {
	l, err := NewLedController(Config{Count: 3, Brightness: DefaultBrightness, Order: DefaultOrder})
	require.NoError(t, err)
	assert.Equal(t, 3, l.Len())
	l.Close()

	_, err = NewLedController(Config{Count: 0, Order: DefaultOrder})
	assert.Error(t, err)
}
