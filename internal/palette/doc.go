// Package palette provides the color-palette store consumed by the
// shape rendering layer.
//
// Entries carry a parsed color; CSS() serializes back to a hex string
// for the per-shape color-to-CSS glue, and TextColor() picks a readable
// foreground for rendering labels over a palette color.
package palette
