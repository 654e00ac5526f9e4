package netlist

import "errors"

// Sentinel errors for netlist operations.
// Callers branch with errors.Is; messages are package-prefixed for grepping.
var (
	// ErrEmptyLabel indicates an entity label is the empty string.
	ErrEmptyLabel = errors.New("netlist: label is empty")

	// ErrDuplicateLabel indicates the label is already registered, as a
	// module or as a net (labels share one namespace).
	ErrDuplicateLabel = errors.New("netlist: duplicate label")

	// ErrModuleNotFound indicates an operation referenced a label that is
	// not a registered module.
	ErrModuleNotFound = errors.New("netlist: module not found")

	// ErrNetNotFound indicates an operation referenced a label that is
	// not a registered net.
	ErrNetNotFound = errors.New("netlist: net not found")

	// ErrNegativePadCount indicates SetNumPads received a negative count.
	ErrNegativePadCount = errors.New("netlist: negative pad count")

	// ErrFrozen indicates a mutation was attempted after Freeze.
	ErrFrozen = errors.New("netlist: netlist is frozen")
)
