// Package preflight provides readiness checks for the files and tools scam
// depends on.
//
// The CLI "scam doctor" command runs RunAll and renders every Result; the
// mod command uses CheckPacker to fail fast before writing a working tree.
// Checks never modify anything on disk.
package preflight
