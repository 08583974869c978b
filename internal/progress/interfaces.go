package progress

// Tracker drives the cosmetic progress bar of a single upload.
type Tracker interface {
	SetUpdateCallback(func(float64))
	Start()
	Complete()
	Cancel()
	Value() float64
}

var _ Tracker = (*Simulator)(nil)
