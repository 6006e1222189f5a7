// Package config loads and watches the inkstorm configuration file.
//
// Configuration is TOML with one section per concern:
//
//	[gesture]
//	drag_threshold = 5.0
//	click_time_ms = 200
//
//	[wheel]
//	zoom_in = 1.1
//	zoom_out = 0.9
//	min_zoom = 0.1
//	max_zoom = 8.0
//	pan_scale = 1.0
//
//	[log]
//	level = "info"
//	file = "inkstorm.log"
//
// Every setting has a default; a missing file yields the default
// configuration without error. The gesture thresholds are deliberately
// tunable because the right values depend on the host platform's pointer
// resolution and latency.
//
// Watcher reloads the file on change and delivers the parsed result to a
// callback, which the input router uses for live retuning.
package config
