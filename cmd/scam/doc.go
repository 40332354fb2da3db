// Command scam edits Stalker 2 movement and aiming overrides.
//
// Every command starts from the default values, optionally applies a preset
// (--from) and individual overrides (--set Section.Key=value, --sync), then
// reports or exports the result:
//
//	scam schema            list every key with its default and description
//	scam presets           list built-in and custom presets
//	scam show              print current values, marking changed and invalid ones
//	scam diff              print the overrides that differ from the defaults
//	scam save NAME         save the overrides as a custom preset
//	scam mod               render the mod cfg and run the packer
//	scam edit [PRESET]     open the interactive editor
//	scam doctor            check data files and the packer
//	scam config init       write a sample configuration
//	scam config validate   load and validate the configuration
package main
