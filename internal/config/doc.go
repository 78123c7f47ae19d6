// Package config loads the YAML device profile: sensor identity,
// calibrated range, precision class, measurement-chain uncertainties,
// data file location and acceptance rules.
//
// Load applies defaults before parsing and validates after, so a loaded
// Config is always safe to hand to the calculators. Watch/WatchFile
// provide fsnotify-based reload for the watch command.
package config
