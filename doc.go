// Package maskedit provides a raster mask editor for marking regions of an
// image.
//
// # Overview
//
// A user paints over a base image with a freehand brush or encloses
// regions with a polygon lasso. The result is a semi-transparent mask
// layer in a single uniform color, exported as PNG together with the base
// image composited under it.
//
// # Quick Start
//
//	import "github.com/gogpu/maskedit"
//
//	// Create an editing session (e = editor convention)
//	e, err := maskedit.NewEditor(800, 600)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Paint a stroke
//	e.PointerDown(maskedit.Pt(100, 100))
//	e.PointerMove(maskedit.Pt(300, 120))
//	e.PointerUp()
//
//	// Enclose a region
//	e.SetTool(maskedit.ToolSelection)
//	for _, p := range []maskedit.Point{{400, 100}, {600, 100}, {600, 300}, {402, 101}} {
//	    e.Click(p)
//	}
//
//	// Undo the closure, redo it, and save both images
//	e.Undo()
//	e.Redo()
//	err = e.Export(maskedit.DirDownloader{Dir: "."})
//
// # Layers
//
// A Surface holds three layers of equal size:
//   - interaction: ephemeral guides such as the lasso rubber band
//   - mask: the authoritative mask, snapshotted and exported
//   - base: the user-supplied image
//
// Layers store straight (non-premultiplied) alpha.
//
// # Quantization
//
// Anti-aliased drawing leaves edge pixels with partial alpha and mixed
// color. After every draw the touched pixels are quantized: opaque enough
// pixels close to MaskColor (or, after a lasso fill, every opaque enough
// pixel) are rewritten to exactly MaskColor, so overlapping strokes never
// darken and brush and lasso output are indistinguishable.
//
// # History
//
// Each committed action (a brush stroke, a lasso vertex or a lasso
// closure) pushes a snapshot of the mask layer tagged with its kind.
// Undo and redo restore snapshots and use the tag to move the lasso
// cursor, so the two tools share one linear history.
//
// # Coordinate System
//
// Uses surface-local pixel coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// # Logging
//
// maskedit is silent by default. Call SetLogger to receive debug records
// for rejected operations and info records for exports and image loads.
package maskedit
