// SPDX-License-Identifier: MIT

// Package matrix provides a dense module×net incidence-matrix export of a
// netlist for numeric consumers (spectral partitioners, solvers, plotting).
//
// What:
//
//   - IncidenceMatrix — an M×E 0/1 matrix: rows are modules, columns are
//     nets, both in registry insertion order; Data[i][j] == 1 iff net j
//     touches module i.
//   - NewIncidenceMatrix builds the matrix from a netlist.Netlist snapshot;
//     the result is fully detached (mutating the netlist afterwards does
//     not change the matrix, and vice versa).
//
// Why:
//
//   - Spectral methods and ILP formulations consume dense incidence rather
//     than adjacency queries.
//   - Row/column sums reproduce Degree/NetDegree, which makes the export
//     easy to cross-check.
//
// Errors:
//
//   - ErrNilNetlist: a nil *netlist.Netlist was passed to the adapter.
//   - ErrUnknownModule / ErrUnknownNet: a row/column lookup referenced a
//     label absent from the matrix index.
//
// Complexity: construction is O(M·E) time and memory; per-row and
// per-column lookups are O(E) and O(M) respectively (copies).
package matrix
