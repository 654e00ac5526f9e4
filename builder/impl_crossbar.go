// SPDX-License-Identifier: MIT
// Package: netlistx/builder
//
// impl_crossbar.go — implementation of Crossbar(m, n).
//
// Contract:
//   • m ≥ 1 and n ≥ 1 (else ErrTooFewModules / ErrTooFewNets).
//   • Registers m modules and n nets; every net touches every module —
//     the complete bipartite incidence K_{m,n}.
//
// Determinism:
//   • Pins emitted j ascending over nets, inner i ascending over modules.
//
// Complexity: O(m + n) entities + O(m·n) pins.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netlistx/netlist"
)

const (
	methodCrossbar = "Crossbar"
	minCrossbarDim = 1
)

// Crossbar returns a Constructor for the complete net–module incidence:
// the worst-case dense fixture for cut cost evaluation.
func Crossbar(m, n int) Constructor {
	return func(nl *netlist.Netlist, cfg builderConfig) error {
		if m < minCrossbarDim {
			return fmt.Errorf("%s: m=%d (must be ≥ %d): %w",
				methodCrossbar, m, minCrossbarDim, ErrTooFewModules)
		}
		if n < minCrossbarDim {
			return fmt.Errorf("%s: n=%d (must be ≥ %d): %w",
				methodCrossbar, n, minCrossbarDim, ErrTooFewNets)
		}
		if err := addModules(nl, cfg, methodCrossbar, m); err != nil {
			return err
		}
		if err := addNets(nl, cfg, methodCrossbar, n); err != nil {
			return err
		}
		for j := 0; j < n; j++ {
			net := cfg.netLabel(j)
			for i := 0; i < m; i++ {
				if err := nl.Connect(net, cfg.moduleLabel(i)); err != nil {
					return fmt.Errorf("%s: Connect(%s): %w", methodCrossbar, net, err)
				}
			}
		}

		return nil
	}
}
