// Package netlist_test provides benchmarks for Netlist operations.
package netlist_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/netlistx/netlist"
)

// BenchmarkAddModule measures module registration throughput.
func BenchmarkAddModule(b *testing.B) {
	nl := netlist.New(netlist.WithCapacity(b.N, 0))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = nl.AddModule(fmt.Sprintf("m%d", i))
	}
}

// BenchmarkConnect measures pin insertion against one hot net.
func BenchmarkConnect(b *testing.B) {
	nl := netlist.New(netlist.WithCapacity(b.N, 1))
	_ = nl.AddNet("bus")
	for i := 0; i < b.N; i++ {
		_ = nl.AddModule(fmt.Sprintf("m%d", i))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = nl.Connect("bus", fmt.Sprintf("m%d", i))
	}
}

// BenchmarkDegree measures the O(1) degree query.
func BenchmarkDegree(b *testing.B) {
	nl := netlist.New()
	_ = nl.AddModule("m0")
	for i := 0; i < 100; i++ {
		_ = nl.AddNet(fmt.Sprintf("n%d", i))
		_ = nl.Connect(fmt.Sprintf("n%d", i), "m0")
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = nl.Degree("m0")
	}
}
