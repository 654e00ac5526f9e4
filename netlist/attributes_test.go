package netlist_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netlistx/netlist"
)

func TestModuleWeight_AbsenceSemantics(t *testing.T) {
	nl := buildFixture(t)

	// Never weighted: absent, not zero.
	_, ok, err := nl.ModuleWeight("a1")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, nl.SetModuleWeight("a0", 533))
	w, ok, err := nl.ModuleWeight("a0")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int64(533), w)

	// Last write wins.
	require.NoError(t, nl.SetModuleWeight("a0", 543))
	w, ok, err = nl.ModuleWeight("a0")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int64(543), w)

	// Zero is a real weight, distinct from absence.
	require.NoError(t, nl.SetModuleWeight("a2", 0))
	w, ok, err = nl.ModuleWeight("a2")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int64(0), w)

	// Unknown and wrong-kind labels fail.
	_, _, err = nl.ModuleWeight("a9")
	require.ErrorIs(t, err, netlist.ErrModuleNotFound)
	require.ErrorIs(t, nl.SetModuleWeight("a3", 1), netlist.ErrModuleNotFound)
}

func TestNetWeight_AbsenceSemantics(t *testing.T) {
	nl := buildFixture(t)

	_, ok, err := nl.NetWeight("a3")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, nl.SetNetWeight("a3", 7))
	w, ok, err := nl.NetWeight("a3")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int64(7), w)

	_, _, err = nl.NetWeight("a0")
	require.ErrorIs(t, err, netlist.ErrNetNotFound)
	require.ErrorIs(t, nl.SetNetWeight("a9", 1), netlist.ErrNetNotFound)
}

func TestMarkFixed(t *testing.T) {
	nl := buildFixture(t)

	fixed, err := nl.IsFixed("a0")
	require.NoError(t, err)
	require.False(t, fixed)

	require.NoError(t, nl.MarkFixed("a0"))
	require.NoError(t, nl.MarkFixed("a0")) // idempotent

	fixed, err = nl.IsFixed("a0")
	require.NoError(t, err)
	require.True(t, fixed)
	require.Equal(t, []string{"a0"}, nl.FixedModules())

	// Nets cannot be fixed.
	require.ErrorIs(t, nl.MarkFixed("a3"), netlist.ErrModuleNotFound)
	_, err = nl.IsFixed("a9")
	require.ErrorIs(t, err, netlist.ErrModuleNotFound)
}

func TestConfigScalars(t *testing.T) {
	nl := netlist.New()

	require.ErrorIs(t, nl.SetNumPads(-1), netlist.ErrNegativePadCount)
	require.Equal(t, 0, nl.NumPads())

	require.NoError(t, nl.SetNumPads(4))
	require.Equal(t, 4, nl.NumPads())

	require.NoError(t, nl.SetCostModel(1))
	require.Equal(t, 1, nl.CostModel())
}

// MaxDegree/MaxNetDegree track the densest entity seen so far and ignore
// deduplicated reconnects.
func TestMaxima_EagerMaintenance(t *testing.T) {
	nl := netlist.New()
	for _, m := range []string{"m0", "m1", "m2"} {
		require.NoError(t, nl.AddModule(m))
	}
	for _, e := range []string{"n0", "n1"} {
		require.NoError(t, nl.AddNet(e))
	}

	require.Equal(t, 0, nl.MaxDegree())
	require.Equal(t, 0, nl.MaxNetDegree())

	require.NoError(t, nl.Connect("n0", "m0"))
	require.Equal(t, 1, nl.MaxDegree())
	require.Equal(t, 1, nl.MaxNetDegree())

	require.NoError(t, nl.Connect("n0", "m1"))
	require.NoError(t, nl.Connect("n0", "m2"))
	require.Equal(t, 1, nl.MaxDegree())
	require.Equal(t, 3, nl.MaxNetDegree())

	require.NoError(t, nl.Connect("n1", "m0"))
	require.Equal(t, 2, nl.MaxDegree())
	require.Equal(t, 3, nl.MaxNetDegree())

	// Reconnecting an existing pair does not inflate the maxima.
	require.NoError(t, nl.Connect("n0", "m0"))
	require.Equal(t, 2, nl.MaxDegree())
	require.Equal(t, 3, nl.MaxNetDegree())
}
