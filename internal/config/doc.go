// Package config handles loading and parsing the kiosk panel
// configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/kiosk/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// Missing config files are NOT an error: the panel works out of the
// box against a kiosk server on localhost.
//
// # Default Values
//
//   - Config file: ~/.config/kiosk/config.toml
//   - API endpoint: 127.0.0.1:5000
//   - Poll interval: 3 seconds
//   - Print files: ~/.local/share/kiosk/print_files
//   - Slots: four named AMS slots (red, green, blue, yellow)
//
// # TOML Format
//
// Example config.toml:
//
//	api_bind = "127.0.0.1:5000"
//	print_files_dir = "~/kiosk/queue"
//	poll_seconds = 3
//
//	[[slots]]
//	id = "1"
//	name = "Matte Black PLA"
//	color = "#111111"
//
// All fields are optional. Tilde expansion is performed automatically
// for paths. Slots defined without a name or color receive display
// fallbacks.
//
// # Error Handling
//
// Load returns errors for path expansion failures, unreadable files,
// and TOML parse errors. The config package is read-only and stateless:
// configuration is loaded once at startup into an immutable Config.
package config
