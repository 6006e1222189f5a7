// Package canvas provides the coordinate model shared by the input layer
// and the host editor.
//
// Two coordinate spaces exist. Screen space is viewport pixels, origin at
// the top-left of the viewport. Page space is the logical drawing surface.
// A Camera relates the two:
//
//	screen = (page + offset) * zoom
//
// where offset is the camera's (X, Y) translation in page units and zoom
// is a positive scale factor.
//
// # Camera
//
// Camera values are immutable; mutating operations return a new Camera:
//
//	cam := canvas.Camera{Zoom: 1}
//	cam = cam.Translated(10, 0)
//	cam = cam.ZoomedToPoint(cursor, cam.Zoom*1.1)
//
// ZoomedToPoint preserves the page point under a given screen point across
// a zoom change, which is the transform behind zoom-to-cursor.
package canvas
