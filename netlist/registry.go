// Package netlist: entity registry operations.
//
// This file provides the ordered, uniquely-labeled module and net
// collections together with the O(1) label→record index populated at
// insertion time. Modules and nets share a single label namespace: a label
// registered under one kind can never be reused by the other.

package netlist

// AddModule registers a new module under the given label.
// Returns ErrEmptyLabel for an empty label, ErrDuplicateLabel if the label
// is already registered (as a module or as a net), ErrFrozen after Freeze.
// Complexity: O(1) amortized.
func (n *Netlist) AddModule(label string) error {
	if n.frozen {
		return ErrFrozen
	}
	if label == "" {
		return ErrEmptyLabel
	}
	if _, exists := n.index[label]; exists {
		return ErrDuplicateLabel
	}
	n.index[label] = &node{kind: kindModule}
	n.modules = append(n.modules, label)

	return nil
}

// AddNet registers a new net under the given label.
// Returns ErrEmptyLabel for an empty label, ErrDuplicateLabel if the label
// is already registered (as a module or as a net), ErrFrozen after Freeze.
// Complexity: O(1) amortized.
func (n *Netlist) AddNet(label string) error {
	if n.frozen {
		return ErrFrozen
	}
	if label == "" {
		return ErrEmptyLabel
	}
	if _, exists := n.index[label]; exists {
		return ErrDuplicateLabel
	}
	n.index[label] = &node{kind: kindNet}
	n.nets = append(n.nets, label)

	return nil
}

// HasModule reports whether label names a registered module. O(1).
func (n *Netlist) HasModule(label string) bool {
	nd, ok := n.index[label]

	return ok && nd.kind == kindModule
}

// HasNet reports whether label names a registered net. O(1).
func (n *Netlist) HasNet(label string) bool {
	nd, ok := n.index[label]

	return ok && nd.kind == kindNet
}

// NumModules returns the number of registered modules. O(1).
func (n *Netlist) NumModules() int {
	return len(n.modules)
}

// NumNets returns the number of registered nets. O(1).
func (n *Netlist) NumNets() int {
	return len(n.nets)
}

// Modules returns a copy of the module labels in registration order.
// Complexity: O(M).
func (n *Netlist) Modules() []string {
	out := make([]string, len(n.modules))
	copy(out, n.modules)

	return out
}

// Nets returns a copy of the net labels in registration order.
// Complexity: O(E).
func (n *Netlist) Nets() []string {
	out := make([]string, len(n.nets))
	copy(out, n.nets)

	return out
}

// module resolves label to its record iff it names a module.
func (n *Netlist) module(label string) (*node, error) {
	nd, ok := n.index[label]
	if !ok || nd.kind != kindModule {
		return nil, ErrModuleNotFound
	}

	return nd, nil
}

// net resolves label to its record iff it names a net.
func (n *Netlist) net(label string) (*node, error) {
	nd, ok := n.index[label]
	if !ok || nd.kind != kindNet {
		return nil, ErrNetNotFound
	}

	return nd, nil
}
