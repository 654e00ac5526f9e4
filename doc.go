// Package netlistx is an in-memory toolkit for building and querying
// circuit netlists — the module/net hypergraphs consumed by partitioning,
// placement, and cost-evaluation tools.
//
// 🚀 What is netlistx?
//
//	A small, strict library that brings together:
//		• Core structure: modules & nets with O(1) label resolution,
//		  deduplicated net–module pins, degree & adjacency queries
//		• Attributes: per-entity weights, fixed-module set, pad count,
//		  cost-model selector, eager max-degree statistics
//		• Builders: deterministic synthetic netlists (Chain, Star,
//		  Crossbar, seeded Random) for fixtures and benchmarks
//		• Config: YAML annotation documents, validated before applying
//		• Matrix view: dense module×net incidence export
//
// ✨ Why choose netlistx?
//
//   - Explicit contracts – every unresolved label is a sentinel error,
//     never a silent drop
//   - Construction discipline – append-only build phase, one-way Freeze
//     into a read-only snapshot safe for concurrent readers
//   - Deterministic fixtures – same seed, same netlist, every time
//
// Everything is organized under four subpackages:
//
//	netlist/ — the core Netlist aggregate: registry, incidence, attributes
//	builder/ — deterministic synthetic-netlist constructors
//	netcfg/  — YAML annotation loading & validation
//	matrix/  — dense incidence-matrix export for numeric consumers
//
// Quick ASCII example:
//
//	    m0 ──n0── m1 ──n1── m2
//
//	a three-module chain: net n0 pins {m0,m1}, net n1 pins {m1,m2}.
//
// Partitioners and placers consume the query API only and must treat a
// built netlist as read-only; parsers drive the mutation API and must
// register every label before connecting it.
package netlistx
