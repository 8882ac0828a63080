package rb

import (
	"github.com/rs/zerolog/log"
)

// Step describes one measurement of the greedy loop.
// Bases is the number of basis vectors the error was measured with,
// Index is the training set index with the largest projection error.
type Step struct {
	Iteration int
	Bases     int
	MaxError  float64
	Index     int
}

// Observer receives the greedy progress.
type Observer interface {
	Observe(step Step)
}

// ObserverFunc adapts a function to an Observer.
type ObserverFunc func(step Step)

// Observe calls f(step).
func (f ObserverFunc) Observe(step Step) {
	f(step)
}

// LogObserver reports every step as a debug log event.
func LogObserver(name string) Observer {
	return ObserverFunc(func(step Step) {
		log.Debug().
			Str("run", name).
			Int("iteration", step.Iteration).
			Int("bases", step.Bases).
			Int("index", step.Index).
			Float64("sigma", step.MaxError).
			Msg("greedy step")
	})
}
