// SPDX-License-Identifier: MIT
// Package: netlistx/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Sentinels are never wrapped at definition site; implementations attach
//     context with %w.
//   • Constructors never panic at runtime.

package builder

import "errors"

// ErrTooFewModules indicates a module-count parameter is smaller than the
// minimum the requested constructor supports.
// Usage: if errors.Is(err, ErrTooFewModules) { /* fix m */ }.
var ErrTooFewModules = errors.New("builder: too few modules")

// ErrTooFewNets indicates a net-count parameter is smaller than the minimum
// the requested constructor supports.
// Usage: if errors.Is(err, ErrTooFewNets) { /* fix n */ }.
var ErrTooFewNets = errors.New("builder: too few nets")

// ErrInvalidProbability indicates a pin probability outside the closed
// interval [0,1].
// Usage: if errors.Is(err, ErrInvalidProbability) { /* clamp or reject p */ }.
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG;
// supply WithSeed or WithRand.
// Usage: if errors.Is(err, ErrNeedRandSource) { /* seed the builder */ }.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrBuildFailed indicates the orchestrator could not run a constructor
// (e.g., a nil Constructor was passed).
// Usage: if errors.Is(err, ErrBuildFailed) { /* inspect constructor list */ }.
var ErrBuildFailed = errors.New("builder: construction failed")
