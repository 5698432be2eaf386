// Package menu is an in-process menu toolkit for applications that redraw
// every frame. It overlays a navigable UI (buttons, selectors, text inputs)
// on top of a host-owned render loop.
//
// The toolkit is built from three cooperating subsystems:
//
//   - A navigation stack: menus form a tree with a single active path from
//     root to the current leaf. Opening a submenu pushes a frame, going back
//     pops frames and restores the previous selection exactly, and closing
//     applies the active menu's close policy.
//   - A selection cursor: index-based focus traversal over the active menu's
//     widgets, with wrap-around, column jumps on multi-column grids, and
//     automatic skipping of non-selectable widgets.
//   - A scrollable viewport: a clipped window onto an oversized content
//     surface, flanked by up to four edge-mounted scrollbars that keep
//     themselves, the viewport offset, and the selection in sync.
//
// The host drives everything synchronously, once per frame:
//
//	ui := menu.New(renderer)
//	ui.SetRoot(root)
//	for running {
//	    events := window.PollEvents()
//	    if ui.Update(events) {
//	        break // close policy asked the host to stop
//	    }
//	    ui.Draw()
//	}
//
// Rendering goes through a DrawList consumed by a backend Renderer; the
// backend/opengl package provides a GLFW + OpenGL 4.1 implementation and
// backend/eb an Ebitengine one. Widget text is measured and rasterized
// through a font atlas built on golang.org/x/image/font.
package menu
