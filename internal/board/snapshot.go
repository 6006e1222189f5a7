package board

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/inkstorm/internal/canvas"
)

// snapshotVersion is the current snapshot format version.
const snapshotVersion = 1

// EncodeSnapshot serializes a document to its JSON snapshot form.
func EncodeSnapshot(d *Document) ([]byte, error) {
	data := []byte(`{}`)

	var err error
	set := func(path string, value any) {
		if err != nil {
			return
		}
		data, err = sjson.SetBytes(data, path, value)
	}

	set("version", snapshotVersion)
	set("id", d.ID)
	set("name", d.Name)
	set("camera.x", d.Camera.X)
	set("camera.y", d.Camera.Y)
	set("camera.zoom", d.Camera.Zoom)
	set("shapes", []any{})

	for _, s := range d.Shapes() {
		set("shapes.-1", map[string]any{
			"id":    s.ID,
			"kind":  s.Kind,
			"x":     s.X,
			"y":     s.Y,
			"w":     s.W,
			"h":     s.H,
			"color": s.Color,
		})
	}

	if err != nil {
		return nil, fmt.Errorf("encoding snapshot %s: %w", d.ID, err)
	}
	return data, nil
}

// DecodeSnapshot parses a JSON snapshot into a document.
func DecodeSnapshot(data []byte) (*Document, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrMalformedSnapshot
	}

	root := gjson.ParseBytes(data)

	version := root.Get("version").Int()
	if version != snapshotVersion {
		return nil, fmt.Errorf("%w: version %d", ErrUnsupportedSnapshot, version)
	}

	doc := &Document{
		ID:   root.Get("id").String(),
		Name: root.Get("name").String(),
		Camera: canvas.Camera{
			X:    root.Get("camera.x").Float(),
			Y:    root.Get("camera.y").Float(),
			Zoom: root.Get("camera.zoom").Float(),
		},
	}
	if doc.ID == "" {
		return nil, fmt.Errorf("%w: missing id", ErrMalformedSnapshot)
	}
	if doc.Camera.Zoom <= 0 {
		doc.Camera.Zoom = 1
	}

	for _, item := range root.Get("shapes").Array() {
		doc.AddShape(Shape{
			ID:    item.Get("id").String(),
			Kind:  item.Get("kind").String(),
			X:     item.Get("x").Float(),
			Y:     item.Get("y").Float(),
			W:     item.Get("w").Float(),
			H:     item.Get("h").Float(),
			Color: item.Get("color").String(),
		})
	}

	return doc, nil
}
