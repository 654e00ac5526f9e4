// Package netlist: attribute maps and configuration scalars.
//
// Weights are partial attributes: an entity never passed to a weight setter
// reports "unweighted" (presence flag false), not zero. The fixed set marks
// modules excluded from movement by downstream placers. Pad count and cost
// model are opaque configuration scalars owned by the netlist builder.

package netlist

// SetModuleWeight assigns (or overwrites) the weight of a module.
// Last write wins. Returns ErrFrozen, ErrModuleNotFound. O(1).
func (n *Netlist) SetModuleWeight(label string, w int64) error {
	if n.frozen {
		return ErrFrozen
	}
	mn, err := n.module(label)
	if err != nil {
		return err
	}
	mn.weight = w
	mn.weighted = true

	return nil
}

// SetNetWeight assigns (or overwrites) the weight of a net.
// Last write wins. Returns ErrFrozen, ErrNetNotFound. O(1).
func (n *Netlist) SetNetWeight(label string, w int64) error {
	if n.frozen {
		return ErrFrozen
	}
	nn, err := n.net(label)
	if err != nil {
		return err
	}
	nn.weight = w
	nn.weighted = true

	return nil
}

// ModuleWeight reports the weight of a module and whether one was ever set.
// An unweighted module yields (0, false, nil) — absence is not zero.
// Returns ErrModuleNotFound for an unknown label. O(1).
func (n *Netlist) ModuleWeight(label string) (int64, bool, error) {
	mn, err := n.module(label)
	if err != nil {
		return 0, false, err
	}

	return mn.weight, mn.weighted, nil
}

// NetWeight reports the weight of a net and whether one was ever set.
// Returns ErrNetNotFound for an unknown label. O(1).
func (n *Netlist) NetWeight(label string) (int64, bool, error) {
	nn, err := n.net(label)
	if err != nil {
		return 0, false, err
	}

	return nn.weight, nn.weighted, nil
}

// MarkFixed adds a module to the fixed set (idempotent).
// Nets cannot be fixed: a net label yields ErrModuleNotFound.
// Returns ErrFrozen, ErrModuleNotFound. O(1).
func (n *Netlist) MarkFixed(label string) error {
	if n.frozen {
		return ErrFrozen
	}
	mn, err := n.module(label)
	if err != nil {
		return err
	}
	mn.fixed = true

	return nil
}

// IsFixed reports whether the module is in the fixed set.
// Returns ErrModuleNotFound for an unknown label. O(1).
func (n *Netlist) IsFixed(label string) (bool, error) {
	mn, err := n.module(label)
	if err != nil {
		return false, err
	}

	return mn.fixed, nil
}

// FixedModules returns the fixed module labels in registration order.
// Complexity: O(M).
func (n *Netlist) FixedModules() []string {
	var out []string
	for _, label := range n.modules {
		if n.index[label].fixed {
			out = append(out, label)
		}
	}

	return out
}

// MaxDegree returns the highest module degree observed so far.
// Maintained eagerly on Connect; exact at all times (no deletion). O(1).
func (n *Netlist) MaxDegree() int {
	return n.maxDegree
}

// MaxNetDegree returns the highest net degree observed so far.
// Maintained eagerly on Connect; exact at all times (no deletion). O(1).
func (n *Netlist) MaxNetDegree() int {
	return n.maxNetDegree
}

// SetNumPads records the number of pad (I/O-boundary) modules.
// Returns ErrFrozen, or ErrNegativePadCount for a negative count. O(1).
func (n *Netlist) SetNumPads(pads int) error {
	if n.frozen {
		return ErrFrozen
	}
	if pads < 0 {
		return ErrNegativePadCount
	}
	n.numPads = pads

	return nil
}

// NumPads returns the recorded pad count. O(1).
func (n *Netlist) NumPads() int {
	return n.numPads
}

// SetCostModel records the connectivity-cost selector. The value is opaque
// to this package. Returns ErrFrozen after Freeze. O(1).
func (n *Netlist) SetCostModel(model int) error {
	if n.frozen {
		return ErrFrozen
	}
	n.costModel = model

	return nil
}

// CostModel returns the recorded cost-model selector. O(1).
func (n *Netlist) CostModel() int {
	return n.costModel
}
