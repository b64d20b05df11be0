// Package graphicsstate tracks the parts of the PDF graphics state that
// decide where shown text lands.
//
// The main type is [GraphicsState], which tracks:
//   - CTM (Current Transformation Matrix) for coordinate transformations
//   - Text state (font, size, spacing, scaling, leading, rise)
//   - Text and text line matrices (Tm, Td, TD, T*)
//   - The q/Q save stack
//
// Example usage:
//
//	gs := graphicsstate.NewGraphicsState()
//	gs.Save()                             // q
//	gs.Transform(matrix)                  // cm
//	gs.SetFont("/F1", 12)                 // Tf
//	start, end, advance := gs.Baseline(w, "Hello")
//	gs.Move(advance)                      // after Tj
//	gs.Restore()                          // Q
//
// [GraphicsState.Baseline] returns the start and end of a shown string's
// baseline in user space; the caller maps them to device space.
package graphicsstate
