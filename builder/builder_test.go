// SPDX-License-Identifier: MIT
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netlistx/builder"
	"github.com/katalvlaran/netlistx/netlist"
)

func TestBuild_NilConstructor(t *testing.T) {
	_, err := builder.Build(nil, nil, nil)
	require.ErrorIs(t, err, builder.ErrBuildFailed)
}

func TestChain_Shape(t *testing.T) {
	nl, err := builder.Build(nil, nil, builder.Chain(4))
	require.NoError(t, err)

	require.Equal(t, 4, nl.NumModules())
	require.Equal(t, 3, nl.NumNets())
	require.Equal(t, 6, nl.PinCount())

	// Interior modules sit on two nets, endpoints on one.
	d, err := nl.Degree("m0")
	require.NoError(t, err)
	require.Equal(t, 1, d)
	d, err = nl.Degree("m1")
	require.NoError(t, err)
	require.Equal(t, 2, d)

	// Every chain net is a two-pin net.
	require.Equal(t, 2, nl.MaxNetDegree())
	require.Equal(t, 2, nl.MaxDegree())

	pins, err := nl.ModulesOf("n1")
	require.NoError(t, err)
	require.Equal(t, []string{"m1", "m2"}, pins)
}

func TestChain_TooShort(t *testing.T) {
	_, err := builder.Build(nil, nil, builder.Chain(1))
	require.ErrorIs(t, err, builder.ErrTooFewModules)
}

func TestStar_Shape(t *testing.T) {
	nl, err := builder.Build(nil, nil, builder.Star(5))
	require.NoError(t, err)

	require.Equal(t, 5, nl.NumModules())
	require.Equal(t, 1, nl.NumNets())
	require.Equal(t, 5, nl.MaxNetDegree())
	require.Equal(t, 1, nl.MaxDegree())

	nd, err := nl.NetDegree("n0")
	require.NoError(t, err)
	require.Equal(t, 5, nd)
}

func TestCrossbar_Shape(t *testing.T) {
	nl, err := builder.Build(nil, nil, builder.Crossbar(3, 2))
	require.NoError(t, err)

	require.Equal(t, 3, nl.NumModules())
	require.Equal(t, 2, nl.NumNets())
	require.Equal(t, 6, nl.PinCount())
	require.Equal(t, 2, nl.MaxDegree())
	require.Equal(t, 3, nl.MaxNetDegree())

	_, err = builder.Build(nil, nil, builder.Crossbar(0, 2))
	require.ErrorIs(t, err, builder.ErrTooFewModules)
	_, err = builder.Build(nil, nil, builder.Crossbar(2, 0))
	require.ErrorIs(t, err, builder.ErrTooFewNets)
}

func TestRandom_Validation(t *testing.T) {
	_, err := builder.Build(nil, nil, builder.Random(3, 3, 0.5))
	require.ErrorIs(t, err, builder.ErrNeedRandSource, "no RNG supplied")

	bopts := []builder.Option{builder.WithSeed(42)}
	_, err = builder.Build(nil, bopts, builder.Random(3, 3, 1.5))
	require.ErrorIs(t, err, builder.ErrInvalidProbability)
	_, err = builder.Build(nil, bopts, builder.Random(3, 3, -0.1))
	require.ErrorIs(t, err, builder.ErrInvalidProbability)
	_, err = builder.Build(nil, bopts, builder.Random(0, 3, 0.5))
	require.ErrorIs(t, err, builder.ErrTooFewModules)
}

func TestRandom_Deterministic(t *testing.T) {
	build := func() *netlist.Netlist {
		nl, err := builder.Build(nil,
			[]builder.Option{builder.WithSeed(1337)},
			builder.Random(8, 6, 0.4))
		require.NoError(t, err)
		return nl
	}
	a, b := build(), build()

	require.Equal(t, a.PinCount(), b.PinCount())
	for _, net := range a.Nets() {
		pa, err := a.ModulesOf(net)
		require.NoError(t, err)
		pb, err := b.ModulesOf(net)
		require.NoError(t, err)
		require.Equal(t, pa, pb, "same seed must reproduce net %s", net)
	}
}

func TestRandom_ProbabilityExtremes(t *testing.T) {
	bopts := []builder.Option{builder.WithSeed(7)}

	empty, err := builder.Build(nil, bopts, builder.Random(4, 4, 0))
	require.NoError(t, err)
	require.Equal(t, 0, empty.PinCount())

	full, err := builder.Build(nil, bopts, builder.Random(4, 4, 1))
	require.NoError(t, err)
	require.Equal(t, 16, full.PinCount())
}

func TestOptions_LabelsAndWeights(t *testing.T) {
	nl, err := builder.Build(
		[]netlist.Option{netlist.WithCostModel(1)},
		[]builder.Option{
			builder.WithModulePrefix("cell_"),
			builder.WithNetPrefix("wire_"),
			builder.WithModuleWeightFn(func(*rand.Rand) int64 { return 10 }),
			builder.WithNetWeightFn(func(*rand.Rand) int64 { return 3 }),
		},
		builder.Star(3),
	)
	require.NoError(t, err)

	require.Equal(t, []string{"cell_0", "cell_1", "cell_2"}, nl.Modules())
	require.Equal(t, []string{"wire_0"}, nl.Nets())
	require.Equal(t, 1, nl.CostModel())

	w, ok, err := nl.ModuleWeight("cell_1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int64(10), w)

	w, ok, err = nl.NetWeight("wire_0")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int64(3), w)
}

func TestOptions_PanicOnNil(t *testing.T) {
	require.Panics(t, func() { builder.WithRand(nil) })
	require.Panics(t, func() { builder.WithModuleWeightFn(nil) })
	require.Panics(t, func() { builder.WithNetWeightFn(nil) })
}

// Composing constructors with overlapping label schemes surfaces the core's
// duplicate-label error instead of silently merging.
func TestBuild_ComposeCollision(t *testing.T) {
	_, err := builder.Build(nil, nil, builder.Star(3), builder.Chain(3))
	require.ErrorIs(t, err, netlist.ErrDuplicateLabel)
}
