// Package preset stores named override sets: partial mappings of schema keys
// to values that differ from the defaults.
//
// Presets are flat sectioned key/value files, one per preset, named after the
// preset. A Store pairs a read-only directory of built-in presets with a
// read/write directory of user presets; user saves are serialized through an
// advisory file lock in that directory.
package preset
