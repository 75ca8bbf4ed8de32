// Package polybool computes 2D Boolean set operations — union,
// intersection, and both directional differences — on planar polygons
// that may carry holes.
//
// The conventions for this package are x increases to the right and y
// increases up the page (mathematical graph paper, not image-format
// convention). A polygon is an outer loop plus zero or more hole
// loops; loops are implicitly closed and are never shared between
// each other.
//
// This package is a pure function of its inputs: Prepare and each of
// Union, Intersection, SubtractAB and SubtractBA accept read-only
// values and allocate fresh results. There is no package-level state
// and nothing here touches the filesystem; see the loader package for
// turning polygon files into InputPolygon values.
package polybool
