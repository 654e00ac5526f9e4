// Package netcfg loads and validates netlist annotation configuration:
// the scalar and attribute data layered onto an already-built netlist
// (pad count, cost-model selector, per-entity weights, fixed modules).
//
// A parser collaborator builds the connectivity (AddModule/AddNet/Connect);
// netcfg carries everything else, typically from a YAML sidecar file:
//
//	num_pads: 4
//	cost_model: 1
//	module_weights:
//	  a0: 533
//	  a1: 543
//	net_weights:
//	  a3: 2
//	fixed:
//	  - a0
//
// Load decodes (strict: unknown keys are rejected) and validates the
// document; Apply replays it onto a netlist through the core mutators, so
// every unknown label surfaces the core's sentinel errors — the caller
// decides whether to abort the build or skip the record.
//
// Errors:
//
//	ErrInvalidConfig - malformed document or failed validation rule.
//	ErrNilNetlist    - Apply received a nil netlist.
package netcfg
