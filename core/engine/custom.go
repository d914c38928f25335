// core/engine/custom.go
package engine

// Custom adapts an arbitrary performance function to the Model contract,
// for engine types that are not table decks (simple analytic models,
// external code wrappers).
type Custom struct {
	name string
	fn   func(Conditions) (Outputs, error)
}

func NewCustom(name string, fn func(Conditions) (Outputs, error)) *Custom {
	return &Custom{name: name, fn: fn}
}

func (c *Custom) Name() string { return c.name }

func (c *Custom) Performance(cond Conditions) (Outputs, error) { return c.fn(cond) }
