// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package paintcanvas presents a paintly drawing surface in a GPU window.
//
// The committed layer and the hover overlay are composited on the CPU into
// one premultiplied frame, which is uploaded to a texture and drawn through
// a gpucontext.TextureDrawer:
//
//	surface + overlay (CPU) -> frame -> GPU Texture -> Window
//
// # Usage
//
//	canvas, err := paintcanvas.New(eng)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer canvas.Close()
//
//	app.OnDraw(func(dc *gogpu.Context) {
//	    canvas.RenderTo(dc.AsTextureDrawer())
//	})
//
// # Performance Notes
//
//   - The texture is created lazily on the first RenderTo
//   - Frames are recomposited and uploaded only when a layer is dirty
//   - A surface resize recreates the texture; the old one is destroyed
//     after the replacement has been written
//
// Canvas is NOT safe for concurrent use. The Source it reads from may be.
package paintcanvas
