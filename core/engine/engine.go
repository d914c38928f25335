// core/engine/engine.go
package engine

import "edeck-core/deckvar"

// Conditions is one operating point. HybridThrottle is ignored for decks
// that do not sample a hybrid-throttle axis.
type Conditions struct {
	Mach           float64
	Altitude       float64 // geometric ft
	Throttle       float64
	HybridThrottle float64
}

// Outputs maps each dependent variable the model knows about to its value in
// default units. Variables a model cannot produce are absent, never zero.
type Outputs map[deckvar.Variable]float64

// Model is the uniform engine-model contract: every engine type, whatever
// its internal representation, answers performance queries the same way, so
// heterogeneous collections can be iterated without type inspection.
type Model interface {
	Name() string
	Performance(c Conditions) (Outputs, error)
}
