// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All adapters return these sentinels and tests check them via errors.Is.
// Messages are prefixed with "matrix: ..." for consistency and grepping.

package matrix

import "errors"

var (
	// ErrNilNetlist indicates that a nil *netlist.Netlist was passed into
	// an adapter.
	ErrNilNetlist = errors.New("matrix: netlist is nil")

	// ErrUnknownModule indicates that a referenced module label is not
	// present in the matrix row index.
	ErrUnknownModule = errors.New("matrix: unknown module label")

	// ErrUnknownNet indicates that a referenced net label is not present
	// in the matrix column index.
	ErrUnknownNet = errors.New("matrix: unknown net label")
)
