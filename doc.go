// Package shapes provides circles and polygons as simple objects on a
// drawing canvas.
//
// # Overview
//
// A shape is a polygon item registered on a [Surface]. Its position,
// dimensions and vertices are views of one vertex list; assigning any of
// them recomputes the list and pushes it to the item. Style attributes
// ("fill", "outline", "width") are forwarded to the item configuration.
//
// # Quick Start
//
//	gui := shapes.NewGUI(shapes.WithWindowSize(800, 600))
//	canvas, _ := gui.NewCanvas(shapes.WithDimensions(600, 600), shapes.WithBackground("black"))
//
//	a, _ := shapes.NewCircle(canvas, shapes.Pt(100, 100), 50, 100000)
//	b, _ := shapes.NewCircle(canvas, shapes.Pt(200, 300), 1, 1000, shapes.Fill("green"))
//
//	_ = a.SetStyle("outline", "blue")
//	_ = b.SetRadius(50)
//
//	_ = gui.Update()
//	_ = canvas.SavePNG("frame.png")
//
//	_ = b.Delete()
//	gui.Destroy()
//
// # Visibility
//
// Changes take effect immediately but are only guaranteed to be visible
// after [Canvas.Refresh] or [GUI.Update].
//
// # Geometry
//
// Position is the center of the bounding box, not the vertex centroid.
// A circle's radius is recovered from its bounding box as the mean of the
// half-width and half-height.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, 0 is right
//
// # Rendering
//
// [Canvas] rasterizes its items with github.com/gogpu/gg.
package shapes
