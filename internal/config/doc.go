// Package config loads, normalizes, and validates scam configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every path the
// editor needs: the default-values schema, the built-in and custom preset
// directories, the mod working tree, and the external packer.
//
// Relative paths are resolved against the working directory so the tool keeps
// working when launched from the folder that holds its data files.
package config
