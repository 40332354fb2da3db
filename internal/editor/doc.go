// Package editor ties the schema, preset store, session state, and mod emitter
// into the user-facing workflows: loading defaults or a named preset, saving
// the current overrides as a preset, and exporting them as a mod.
//
// Saving and exporting share one gate. Every entry must validate and the diff
// against the defaults must be non-empty; the two rejections surface as
// faults.ErrValidation and faults.ErrNoChanges respectively, and neither
// touches the file system.
package editor
