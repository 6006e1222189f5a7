// Package board provides the whiteboard document model, its JSON
// snapshot persistence, and a reference host editor.
//
// The input layer never touches this package directly; it sees the board
// only through the host.Editor facade. Everything here is simple I/O and
// bookkeeping: shape CRUD, point hit-testing over the z-order, snapshot
// load/save, and a directory-backed document store.
//
// Editor implements host.Editor over a Document and is what the demo
// binary and integration tests put behind the input layer.
package board
