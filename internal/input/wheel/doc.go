// Package wheel remaps scroll wheel events into camera zoom and pan.
//
// The host canvas scrolls on wheel by default; this layer takes the wheel
// over entirely. Every wheel event is consumed, translated into exactly
// one camera mutation, and never reaches the host's own handlers.
//
// Behavior is selected by modifier keys:
//
//   - No modifier: zoom toward the cursor. The page point under the
//     cursor before the zoom stays under the cursor after it.
//   - Shift: horizontal pan, camera.x += deltaY * PanScale / zoom.
//   - Ctrl or Meta: vertical pan, camera.y += -deltaY * PanScale / zoom.
//
// Ctrl wins when both Ctrl and Shift are held. The remapper is stateless;
// nothing persists between events.
package wheel
