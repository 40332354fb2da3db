// Package tui implements the interactive full-screen editor.
//
// The model renders one tab per schema section. MovementParams loses its two
// rate keys to the Aiming tab, which pairs them with the sync toggle. Changed
// values are drawn green and invalid ones red. All session mutation happens in
// Update; only the packer run leaves the event loop, on a diff snapshot.
package tui
