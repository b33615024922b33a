// Package paintly provides an interactive 2D drawing surface built on gg.
//
// # Overview
//
// An Engine owns two raster layers of the same size: the committed surface,
// which holds the drawing, and the overlay, which holds only the hover
// indicator. Freehand strokes are smoothed with midpoint quadratic curves
// and painted with a brush or an eraser. One media element (an image or an
// animated GIF) can be placed, selected, dragged and corner-resized with
// its aspect ratio locked. Resizes preserve committed content through
// snapshot and restore.
//
// # Quick Start
//
//	eng, err := paintly.New(
//	    paintly.WithLayout(func() (float64, float64) { return 800, 600 }),
//	    paintly.WithDeviceScale(2),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := eng.Initialize(); err != nil {
//	    log.Fatal(err)
//	}
//	defer eng.Teardown()
//
//	eng.Attach(window) // any gpucontext.PointerEventSource
//
//	f, _ := os.Create("drawing.png")
//	defer f.Close()
//	eng.Export(f)
//
// # Coordinate System
//
// Pointer events arrive in client pixels. The engine maps them onto the
// surface's logical coordinate space using the bounds reported by
// WithBounds and the device scale. Layers are allocated at logical size
// times device scale; exports are written at that full resolution.
//
// # Events
//
// Handlers never return errors. A failed drawing operation is logged at
// warn level and the frame is abandoned. Before a successful Initialize,
// and after Teardown, handlers do nothing.
//
// # Presentation
//
// Surface and Overlay return copies of both layers. The
// integration/paintcanvas package presents them to a gpucontext
// texture drawer without copying.
//
// # Logging
//
// paintly is silent by default. Use SetLogger to enable output.
package paintly

// Version is the current version of the library.
const Version = "0.1.0"
