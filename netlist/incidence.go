// Package netlist: incidence structure operations.
//
// Pins (net–module incidence records) are stored twice: a global pin set
// for O(1) deduplication, and per-entity peer slices preserving insertion
// order for adjacency iteration. Degree is the peer-slice length, so degree
// queries are O(1). Bipartite shape is enforced at the API boundary:
// Connect is the only incidence mutation and it takes exactly one net and
// one module.

package netlist

// Connect records that net touches module.
// Both labels must already be registered under their respective kinds;
// otherwise Connect fails (ErrNetNotFound / ErrModuleNotFound checked in that
// order) and the incidence structure is left untouched. Reconnecting an
// existing pair is an idempotent no-op.
//
// The running maxima are updated eagerly: each successful Connect compares
// the two endpoints' new degree against MaxDegree/MaxNetDegree in O(1).
//
// Returns ErrFrozen, ErrEmptyLabel, ErrNetNotFound, ErrModuleNotFound.
// Complexity: O(1) amortized.
func (n *Netlist) Connect(netLabel, moduleLabel string) error {
	if n.frozen {
		return ErrFrozen
	}
	if netLabel == "" || moduleLabel == "" {
		return ErrEmptyLabel
	}
	nn, err := n.net(netLabel)
	if err != nil {
		return err
	}
	mn, err := n.module(moduleLabel)
	if err != nil {
		return err
	}

	p := pin{net: netLabel, module: moduleLabel}
	if _, dup := n.pins[p]; dup {
		return nil // already connected
	}
	n.pins[p] = struct{}{}
	nn.peers = append(nn.peers, moduleLabel)
	mn.peers = append(mn.peers, netLabel)

	if d := len(mn.peers); d > n.maxDegree {
		n.maxDegree = d
	}
	if d := len(nn.peers); d > n.maxNetDegree {
		n.maxNetDegree = d
	}

	return nil
}

// Connected reports whether net currently touches module. O(1).
func (n *Netlist) Connected(netLabel, moduleLabel string) bool {
	_, ok := n.pins[pin{net: netLabel, module: moduleLabel}]

	return ok
}

// Degree returns the number of distinct nets touching the given module.
// Returns ErrModuleNotFound for an unknown label. O(1).
func (n *Netlist) Degree(moduleLabel string) (int, error) {
	mn, err := n.module(moduleLabel)
	if err != nil {
		return 0, err
	}

	return len(mn.peers), nil
}

// NetDegree returns the number of distinct modules touched by the given net.
// Returns ErrNetNotFound for an unknown label. O(1).
func (n *Netlist) NetDegree(netLabel string) (int, error) {
	nn, err := n.net(netLabel)
	if err != nil {
		return 0, err
	}

	return len(nn.peers), nil
}

// NetsOf returns the nets incident to the given module, in pin insertion
// order. Each call returns a fresh slice; mutating it does not affect the
// netlist. Returns ErrModuleNotFound for an unknown label.
// Complexity: O(deg).
func (n *Netlist) NetsOf(moduleLabel string) ([]string, error) {
	mn, err := n.module(moduleLabel)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(mn.peers))
	copy(out, mn.peers)

	return out, nil
}

// ModulesOf returns the modules touched by the given net (its pins), in pin
// insertion order. Each call returns a fresh slice. Returns ErrNetNotFound
// for an unknown label.
// Complexity: O(deg).
func (n *Netlist) ModulesOf(netLabel string) ([]string, error) {
	nn, err := n.net(netLabel)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(nn.peers))
	copy(out, nn.peers)

	return out, nil
}

// PinCount returns the total number of distinct incidence records. O(1).
func (n *Netlist) PinCount() int {
	return len(n.pins)
}
