// Package netlist: lifecycle transitions and copying.
//
// Freeze is the one-way end of the construction phase: afterwards every
// mutator returns ErrFrozen and the aggregate is an immutable snapshot safe
// for concurrent readers. Clone produces an independent, unfrozen deep copy
// so a consumer can branch construction from a frozen baseline.

package netlist

// Freeze ends the construction phase. Every subsequent mutation returns
// ErrFrozen; query operations remain valid and become safe for concurrent
// readers. Freezing an already-frozen netlist is a no-op. O(1).
func (n *Netlist) Freeze() {
	n.frozen = true
}

// Frozen reports whether the netlist has been frozen. O(1).
func (n *Netlist) Frozen() bool {
	return n.frozen
}

// Clone returns a deep copy of the netlist: registry, incidence, attributes,
// configuration scalars, and running maxima. The clone is NOT frozen even if
// the source is, so construction may continue on the copy.
// Complexity: O(M + E + P).
func (n *Netlist) Clone() *Netlist {
	out := &Netlist{
		index:        make(map[string]*node, len(n.index)),
		modules:      make([]string, len(n.modules)),
		nets:         make([]string, len(n.nets)),
		pins:         make(map[pin]struct{}, len(n.pins)),
		numPads:      n.numPads,
		costModel:    n.costModel,
		maxDegree:    n.maxDegree,
		maxNetDegree: n.maxNetDegree,
	}
	copy(out.modules, n.modules)
	copy(out.nets, n.nets)
	for label, nd := range n.index {
		cp := &node{
			kind:     nd.kind,
			peers:    make([]string, len(nd.peers)),
			weight:   nd.weight,
			weighted: nd.weighted,
			fixed:    nd.fixed,
		}
		copy(cp.peers, nd.peers)
		out.index[label] = cp
	}
	for p := range n.pins {
		out.pins[p] = struct{}{}
	}

	return out
}
