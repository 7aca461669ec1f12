package neopixel

// Interruptor is polled by long running animations. Once it reports true, the animation SHOULD
// stop writing to the strip and return.
type Interruptor interface {
	IsInterrupted() bool
}

// InterruptorFunc adapts a plain function to an Interruptor.
type InterruptorFunc func() bool

func (f InterruptorFunc) IsInterrupted() bool {
	return f()
}
