// Package netlist provides an in-memory hypergraph representation of a
// circuit netlist: modules (placeable components) connected through nets
// (electrical hyperedges), with constant-time label resolution, degree and
// adjacency queries, per-entity weights, and a fixed-module set.
//
// The structure N = (M, E, P) is bipartite by construction:
//
//   - M — ordered collection of module labels
//   - E — ordered collection of net labels
//   - P — pin set: incidence records, each touching exactly one net and
//     exactly one module (never module–module or net–net)
//
// Why use netlist.Netlist?
//
//   - O(1) label→entity resolution — a single shared label index covers both
//     kinds; no scanning.
//   - Explicit errors — connecting or annotating an unknown label returns a
//     sentinel (ErrModuleNotFound / ErrNetNotFound); nothing is dropped
//     silently.
//   - Exact running maxima — MaxDegree/MaxNetDegree are maintained eagerly on
//     every Connect; construction is append-only, so they are never stale.
//   - Freeze transition — construction ends with Freeze(); afterwards every
//     mutator returns ErrFrozen and the aggregate is safe for concurrent
//     readers.
//
// Configuration Options (Option):
//
//	– WithCapacity(modules, nets int)
//	    Pre-sizes the internal collections for a known netlist shape.
//
//	– WithCostModel(model int)
//	    Sets the connectivity-cost selector interpreted by downstream
//	    consumers (opaque to this package).
//
// Core Methods:
//
//	// Entity registry
//	AddModule(label string) error      // O(1)
//	AddNet(label string) error         // O(1)
//	HasModule(label string) bool       // O(1)
//	HasNet(label string) bool          // O(1)
//	NumModules() int                   // O(1)
//	NumNets() int                      // O(1)
//	Modules() []string                 // O(M) copy, insertion order
//	Nets() []string                    // O(E) copy, insertion order
//
//	// Incidence
//	Connect(net, module string) error          // O(1), deduplicated
//	Connected(net, module string) bool         // O(1)
//	Degree(module string) (int, error)         // O(1)
//	NetDegree(net string) (int, error)         // O(1)
//	NetsOf(module string) ([]string, error)    // O(deg) copy, pin order
//	ModulesOf(net string) ([]string, error)    // O(deg) copy, pin order
//	PinCount() int                             // O(1)
//
//	// Attributes & statistics
//	SetModuleWeight(label string, w int64) error
//	SetNetWeight(label string, w int64) error
//	ModuleWeight(label string) (int64, bool, error)
//	NetWeight(label string) (int64, bool, error)
//	MarkFixed(label string) error
//	IsFixed(label string) (bool, error)
//	MaxDegree() int
//	MaxNetDegree() int
//	SetNumPads(n int) error
//	NumPads() int
//	SetCostModel(m int) error
//	CostModel() int
//
//	// Lifecycle
//	Freeze()
//	Frozen() bool
//	Clone() *Netlist
//
// Label namespace: modules and nets share a single namespace. Registering a
// net under an existing module label (or vice versa) fails with
// ErrDuplicateLabel; two distinct entities never alias the same label.
//
// Duplicate pins: Connect deduplicates. Reconnecting an existing (net,
// module) pair is an idempotent no-op — multiplicity carries no electrical
// meaning.
//
// Concurrency: the aggregate is exclusively owned during construction
// (single-threaded, no internal locking) and becomes a read-only snapshot
// after Freeze, safe for concurrent readers.
//
// Errors:
//
//	ErrEmptyLabel        - label is the empty string.
//	ErrDuplicateLabel    - label already registered (either kind).
//	ErrModuleNotFound    - referenced module label is unknown.
//	ErrNetNotFound       - referenced net label is unknown.
//	ErrNegativePadCount  - SetNumPads with n < 0.
//	ErrFrozen            - mutation attempted after Freeze.
package netlist
