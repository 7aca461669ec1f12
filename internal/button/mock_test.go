//go:build !pi

package button

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/gpio"
	"syscall"
	"testing"
	"time"
)

func TestSimulatedBoard(t *testing.T) {
	b, err := Open(Config{Inputs: []Pin{8, 9}})
	assert.NoError(t, err)
	defer b.Close()

	d := NewDebouncer(b).WithSleep(func(time.Duration) {})
	assert.False(t, d.IsPressed(8))

	b.Set(8, gpio.Low)
	assert.True(t, d.IsPressed(8))
	assert.False(t, d.IsPressed(9))
}

func TestSimulatedEdge(t *testing.T) {
	b, err := Open(Config{})
	require.NoError(t, err)
	defer b.Close()

	fired := make(chan struct{}, 1)
	require.NoError(t, b.OnRisingEdge(2, func() { fired <- struct{}{} }))
	require.NoError(t, syscall.Kill(syscall.Getpid(), syscall.SIGHUP))

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("edge handler was not called")
	}
}
