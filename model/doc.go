// Package model provides the geometric primitives shared by the content
// stream driver and the reading-order core.
//
// # Geometry
//
//   - [Point] - 2D point with distance and finiteness checks
//   - [Matrix] - 2D affine transformation matrix in PDF row-vector form
//
// Points handed to the text package are in device space: the y axis grows
// downward, so a smaller y is higher on the page.
package model
