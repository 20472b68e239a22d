// Package render drives the operation graph to a finished frame.
//
// Render schedules and executes a document's Output(0) operation
// against a backend.Backend, producing a Register that wraps whatever
// the backend presented. Present then copies a Register's pixel
// contents into a PixmapTarget for display, when the register exposes
// CPU pixel access (backend/gpu's registers don't: their bytes stay on
// the device, behind a DeviceHandle the host supplies).
//
// # Core types
//
//   - DeviceHandle: GPU device access provided by the host application.
//   - PixmapTarget: a CPU-backed *image.RGBA a Register is presented into.
//   - Register: one backend's presented Output(0) contents.
//
// The host application owns the GPU device and hands it in; this
// package never creates one itself.
package render
