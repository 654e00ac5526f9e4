// SPDX-License-Identifier: MIT

// Package builder constructs synthetic netlists deterministically: canonical
// hypergraph shapes used as fixtures for partitioner/placer development,
// tests, and benchmarks.
//
// What:
//
//   - Build(nopts, bopts, cons...) — single orchestrator: creates the
//     netlist, resolves the builder configuration, applies constructors in
//     order.
//   - Chain(n)      — n modules in a line, n-1 two-pin nets.
//   - Star(n)       — one net touching all n modules.
//   - Crossbar(m,n) — every one of n nets touches all m modules.
//   - Random(m,n,p) — each (net, module) pin drawn with probability p.
//
// Why:
//
//   - Partitioning fixtures: known optimal cuts (Chain), worst-case dense
//     nets (Crossbar, Star), randomized stress inputs (Random).
//   - Reproducibility: same options, seed, and constructor order always
//     produce the identical netlist.
//
// Options:
//
//   - WithSeed / WithRand: RNG policy for Random (required there).
//   - WithModulePrefix / WithNetPrefix: label schemes ("m0","m1",… by default).
//   - WithModuleWeightFn / WithNetWeightFn: optional weight annotation.
//
// Errors:
//
//   - ErrTooFewModules: module count below the constructor's minimum.
//   - ErrTooFewNets: net count below the constructor's minimum.
//   - ErrInvalidProbability: p outside [0,1].
//   - ErrNeedRandSource: Random used without WithSeed/WithRand.
//   - ErrBuildFailed: orchestration failure (nil constructor).
//
// Constructors never panic at runtime; option constructors panic on
// meaningless input (nil function, nil RNG) to surface programmer error
// early.
package builder
