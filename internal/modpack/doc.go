// Package modpack renders a preset diff into the game's struct-based cfg
// format and hands the resulting working tree to the external packer.
//
// Render produces the CustomPlayer override text. Emitter writes it to
// <work_dir>/<cfg_path>, runs "<packer> <args...> <work_dir>" through an
// Executor, and removes the working tree once the packer succeeds. A failed or
// missing packer leaves the tree in place for inspection.
package modpack
