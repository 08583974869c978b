package progress

import (
	"sync"
	"time"
)

// Simulator defaults
const (
	// DefaultCeiling is the highest value reached before Complete is called
	DefaultCeiling  = 90.0
	DefaultInterval = 200 * time.Millisecond
	DefaultFraction = 0.15

	Done = 100.0
)

// Simulator reports upload progress that the transport cannot measure.
// While running, every tick closes a fixed fraction of the remaining gap to
// the ceiling, so the value approaches it without ever passing it. Only
// Complete reports 100.
type Simulator struct {
	mu       sync.Mutex
	value    float64
	ceiling  float64
	fraction float64
	interval time.Duration
	stop     chan struct{}
	onUpdate func(float64)
}

// Option configures a Simulator
type Option func(*Simulator)

// WithCeiling sets the value the simulation approaches
func WithCeiling(ceiling float64) Option {
	return func(s *Simulator) {
		if ceiling > 0 && ceiling < Done {
			s.ceiling = ceiling
		}
	}
}

// WithInterval sets the tick period. Zero disables the ticker; the
// simulation then only advances through Step.
func WithInterval(interval time.Duration) Option {
	return func(s *Simulator) {
		if interval >= 0 {
			s.interval = interval
		}
	}
}

// WithFraction sets the share of the remaining gap closed per tick
func WithFraction(fraction float64) Option {
	return func(s *Simulator) {
		if fraction > 0 && fraction <= 1 {
			s.fraction = fraction
		}
	}
}

// New creates an idle simulator
func New(opts ...Option) *Simulator {
	s := &Simulator{
		ceiling:  DefaultCeiling,
		fraction: DefaultFraction,
		interval: DefaultInterval,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetUpdateCallback sets the callback fired after every value change.
// It runs on the ticker goroutine for ticks.
func (s *Simulator) SetUpdateCallback(callback func(float64)) {
	s.mu.Lock()
	s.onUpdate = callback
	s.mu.Unlock()
}

// Start resets the value to 0 and begins ticking. A running simulation is
// restarted.
func (s *Simulator) Start() {
	s.mu.Lock()
	s.halt()
	s.value = 0
	if s.interval > 0 {
		stop := make(chan struct{})
		s.stop = stop
		go s.run(stop, time.NewTicker(s.interval))
	}
	s.mu.Unlock()

	s.notifyUpdate(0)
}

// Step advances the simulation by one tick and returns the new value
func (s *Simulator) Step() float64 {
	s.mu.Lock()
	value := s.advance()
	s.mu.Unlock()

	s.notifyUpdate(value)
	return value
}

// Complete stops ticking and reports 100
func (s *Simulator) Complete() {
	s.finish(Done)
}

// Cancel stops ticking and resets the value to 0
func (s *Simulator) Cancel() {
	s.finish(0)
}

// Stop halts the ticker and keeps the current value
func (s *Simulator) Stop() {
	s.mu.Lock()
	s.halt()
	s.mu.Unlock()
}

// Value returns the current progress in percent
func (s *Simulator) Value() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Running reports whether the ticker goroutine is active
func (s *Simulator) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stop != nil
}

func (s *Simulator) finish(value float64) {
	s.mu.Lock()
	s.halt()
	s.value = value
	s.mu.Unlock()

	s.notifyUpdate(value)
}

// run ticks until stop is closed
func (s *Simulator) run(stop chan struct{}, ticker *time.Ticker) {
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s.mu.Lock()
			// a tick racing with Complete or a restart must not apply
			if s.stop != stop {
				s.mu.Unlock()
				return
			}
			value := s.advance()
			s.mu.Unlock()
			s.notifyUpdate(value)
		}
	}
}

// advance must be called with mu held
func (s *Simulator) advance() float64 {
	if s.value < s.ceiling {
		s.value += (s.ceiling - s.value) * s.fraction
		if s.value > s.ceiling {
			s.value = s.ceiling
		}
	}
	return s.value
}

// halt must be called with mu held
func (s *Simulator) halt() {
	if s.stop != nil {
		close(s.stop)
		s.stop = nil
	}
}

// notifyUpdate calls the update callback if set
func (s *Simulator) notifyUpdate(value float64) {
	s.mu.Lock()
	callback := s.onUpdate
	s.mu.Unlock()

	if callback != nil {
		callback(value)
	}
}
