// Package worldframe maps between metric world coordinates and grid cells of
// a square top-down camera frame, and exports planned paths as orb geometry
// and GeoJSON.
//
// Convention (x right, y along rows, origin at the frame centre):
//
//	scale = WorldSize / Rows
//	col   = round(x/scale + Cols/2)
//	row   = round(y/scale + Rows/2)
//
// Rounding is half-to-even so that a point exactly between two cells maps
// the same way the camera pipeline rounds it.
package worldframe
