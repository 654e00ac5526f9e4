// SPDX-License-Identifier: MIT
// Package matrix: netlist → dense incidence matrix adapter.

package matrix

import (
	"github.com/katalvlaran/netlistx/netlist"
)

// IncidenceMatrix represents a netlist as an M×E matrix mapping modules to
// nets. ModuleIndex maps module label → row, NetIndex maps net label →
// column (both immutable after construction, registry insertion order).
// Data[i][j] holds 1 iff net j touches module i, 0 otherwise.
type IncidenceMatrix struct {
	ModuleIndex map[string]int // module label → row
	NetIndex    map[string]int // net label → column
	Data        [][]int        // M×E 0/1 incidence
}

// NewIncidenceMatrix builds an IncidenceMatrix from a netlist snapshot.
// Rows and columns follow the netlist's registration order. Returns
// ErrNilNetlist if nl is nil.
// Time: O(M·E); Memory: O(M·E).
func NewIncidenceMatrix(nl *netlist.Netlist) (IncidenceMatrix, error) {
	if nl == nil {
		return IncidenceMatrix{}, ErrNilNetlist
	}

	modules := nl.Modules()
	nets := nl.Nets()

	mIdx := make(map[string]int, len(modules))
	for i, label := range modules {
		mIdx[label] = i
	}
	nIdx := make(map[string]int, len(nets))
	for j, label := range nets {
		nIdx[label] = j
	}

	data := make([][]int, len(modules))
	for i := range data {
		data[i] = make([]int, len(nets))
	}
	for j, net := range nets {
		pins, err := nl.ModulesOf(net)
		if err != nil {
			return IncidenceMatrix{}, err
		}
		for _, module := range pins {
			data[mIdx[module]][j] = 1
		}
	}

	return IncidenceMatrix{
		ModuleIndex: mIdx,
		NetIndex:    nIdx,
		Data:        data,
	}, nil
}

// ModuleCount returns the number of modules (rows).
func (m IncidenceMatrix) ModuleCount() int {
	return len(m.Data)
}

// NetCount returns the number of nets (columns).
func (m IncidenceMatrix) NetCount() int {
	return len(m.NetIndex)
}

// ModuleRow returns a copy of the incidence row for the given module.
// The row sum equals the module's degree. Returns ErrUnknownModule.
// Time: O(E).
func (m IncidenceMatrix) ModuleRow(label string) ([]int, error) {
	i, ok := m.ModuleIndex[label]
	if !ok {
		return nil, ErrUnknownModule
	}
	row := make([]int, len(m.Data[i]))
	copy(row, m.Data[i])

	return row, nil
}

// NetColumn returns a copy of the incidence column for the given net.
// The column sum equals the net's degree. Returns ErrUnknownNet.
// Time: O(M).
func (m IncidenceMatrix) NetColumn(label string) ([]int, error) {
	j, ok := m.NetIndex[label]
	if !ok {
		return nil, ErrUnknownNet
	}
	col := make([]int, len(m.Data))
	for i := range m.Data {
		col[i] = m.Data[i][j]
	}

	return col, nil
}

// PinCount returns the total number of 1-entries (incidence records).
// Time: O(M·E).
func (m IncidenceMatrix) PinCount() int {
	total := 0
	for i := range m.Data {
		for _, v := range m.Data[i] {
			total += v
		}
	}

	return total
}
