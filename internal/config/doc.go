// Package config loads engine settings from TOML or YAML files and
// applies them to the process-wide collation and number defaults.
//
// Settings are the outermost boundary at which the ambient locale is
// chosen; everything inside the engine takes explicit strategies. A
// Reloader can watch the settings file and re-apply it on change,
// mirroring a process whose locale is mutated while it runs.
package config
