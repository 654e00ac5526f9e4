// Package netlist: central Netlist type, entity bookkeeping structures,
// and the New constructor with its functional options.
package netlist

// kind discriminates the two entity kinds sharing the label namespace.
type kind uint8

const (
	kindModule kind = iota
	kindNet
)

// node is the internal record behind one registered label.
//
// peers holds the labels of the opposite kind incident to this entity, in
// pin insertion order; len(peers) is the entity's degree. Weight is a
// partial attribute: weighted reports whether weight was ever set.
type node struct {
	kind     kind
	peers    []string
	weight   int64
	weighted bool
	fixed    bool
}

// pin identifies one incidence record (net touches module).
type pin struct {
	net    string
	module string
}

// Netlist is the in-memory netlist aggregate: entity registry, incidence
// structure, attribute maps, configuration scalars, and running maxima.
//
// A Netlist is created empty by New, populated through AddModule/AddNet/
// Connect and the attribute setters, then optionally sealed with Freeze.
// There is no deletion: construction is append-only.
type Netlist struct {
	// index resolves a label to its entity record in O(1).
	index map[string]*node

	// modules and nets preserve registration order per kind.
	modules []string
	nets    []string

	// pins deduplicates incidence records.
	pins map[pin]struct{}

	// Configuration scalars owned by the builder of the netlist.
	numPads   int
	costModel int

	// Running maxima, maintained eagerly on every successful Connect.
	maxDegree    int
	maxNetDegree int

	frozen bool
}

// Option configures a Netlist before first use.
type Option func(*Netlist)

// WithCapacity pre-sizes the internal collections for an expected number of
// modules and nets. Panics on negative counts (programmer error).
// Complexity: O(modules + nets) allocation, no further cost.
func WithCapacity(modules, nets int) Option {
	if modules < 0 || nets < 0 {
		panic("netlist: WithCapacity(negative)")
	}
	return func(n *Netlist) {
		n.index = make(map[string]*node, modules+nets)
		n.modules = make([]string, 0, modules)
		n.nets = make([]string, 0, nets)
	}
}

// WithCostModel sets the connectivity-cost selector carried by the netlist.
// The value is opaque to this package; downstream consumers interpret it.
func WithCostModel(model int) Option {
	return func(n *Netlist) { n.costModel = model }
}

// New creates an empty Netlist with the given options applied in order.
// Complexity: O(len(opts)).
func New(opts ...Option) *Netlist {
	n := &Netlist{
		index: make(map[string]*node),
		pins:  make(map[pin]struct{}),
	}
	for _, opt := range opts {
		opt(n)
	}

	return n
}
