// Package host defines the facade the input layer uses to talk to the
// surrounding canvas editor.
//
// The input layer never renders and never caches host state; it reads
// camera, tool, and selection through the Editor interface at decision
// time and issues imperative mutations back through it. The canvas editor
// (or a test fake) implements Editor; this package only defines the
// contract.
//
// Camera, tool, and selection remain owned by the host. Pointer capture
// is the one resource the input layer owns: acquired at drag start,
// released unconditionally at session end.
package host
