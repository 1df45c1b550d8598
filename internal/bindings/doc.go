// Package bindings contains all cgo bindings to the DataSketches KLL shim.
//
// # Design Principles
//
// 1. Isolation: ALL cgo code lives in this package. No other package may
// import "C". The internalcheck suite enforces this.
//
// 2. Minimal Surface: one Go function per shim entry point, nothing more.
// Argument validation and error classification belong to the kll package.
//
// 3. Error Handling: a NULL return from the shim becomes a Go error at the
// call site. The shim never throws across the boundary; any input that would
// make it throw must be rejected before the call.
//
// 4. Memory Management: buffers allocated by the shim are copied into Go
// memory immediately and released through kll_bytes_free, the deallocator
// paired with the shim's own allocation. Freeing a shim buffer with any
// other allocator is undefined behavior.
//
// # Memory Layout
//
// Native sketches are opaque handles (unsafe.Pointer). The pointer is never
// dereferenced on the Go side and never outlives its owning wrapper.
//
// # Threading
//
// The shim is safe for concurrent read-only calls against one sketch.
// Mutations require external synchronization; this layer provides none.
package bindings
