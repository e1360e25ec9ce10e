// Package geometry describes the rectangular enclosure the modal engine works
// in: validated box dimensions, points inside the box, and the regular
// evaluation grid the pressure field is sampled on.
//
// Grid voxels are stored flat with z varying fastest:
//
//	index = (i*res + j)*res + k
//
// which matches the coordinate vectors X, Y, Z element for element.
package geometry
