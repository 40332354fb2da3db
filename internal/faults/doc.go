// Package faults defines the failure categories shared by the editor engine,
// preset store, and mod emitter.
//
// Errors are tagged with one of the exported sentinel markers so callers can
// classify them with errors.Is while still keeping the underlying cause in the
// chain. UserMessage turns a classified error into the short text shown to a
// person at the CLI or in the interactive editor.
package faults
