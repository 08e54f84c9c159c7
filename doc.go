// Package h3 implements a hierarchical hexagonal discrete global grid
// system: a recursive aperture-7 subdivision of an icosahedral
// projection of the sphere, addressed by a packed 64-bit cell index.
//
// The package is pure and allocation-light by design: every exported
// function is safely callable concurrently from distinct goroutines on
// distinct inputs. Operations that produce a variable number of cells
// return newly allocated slices; the matching Max*Size functions
// report upper bounds on those lengths.
package h3
