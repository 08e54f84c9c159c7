package h3

import "math"

// Hex grid digit / direction constants. Directions 1..6 step to one of
// the six neighbors; KAxesDigit is the pentagon's deleted direction.
const (
	CenterDigit       = 0
	KAxesDigit        = 1
	JAxesDigit        = 2
	JKAxesDigit       = 3
	IAxesDigit        = 4
	IKAxesDigit       = 5
	IJAxesDigit       = 6
	NumDigits         = 7
	NumHexDirections  = 6
	InvalidDigit      = 7
)

// unitVecs holds the (i,j,k) step for each of the 7 digits (digit 0 is
// the zero vector, "no movement").
var unitVecs = [NumDigits]CoordIJK{
	{0, 0, 0}, // CenterDigit
	{0, 0, 1}, // KAxesDigit
	{0, 1, 0}, // JAxesDigit
	{0, 1, 1}, // JKAxesDigit
	{1, 0, 0}, // IAxesDigit
	{1, 0, 1}, // IKAxesDigit
	{1, 1, 0}, // IJAxesDigit
}

// CoordIJK is a cube-coordinate-like triple on the hex lattice,
// normalized so that min(I,J,K) == 0.
type CoordIJK struct {
	I int
	J int
	K int
}

func (c CoordIJK) add(o CoordIJK) CoordIJK {
	return CoordIJK{c.I + o.I, c.J + o.J, c.K + o.K}
}

func (c CoordIJK) sub(o CoordIJK) CoordIJK {
	return CoordIJK{c.I - o.I, c.J - o.J, c.K - o.K}
}

func (c CoordIJK) scale(factor int) CoordIJK {
	return CoordIJK{c.I * factor, c.J * factor, c.K * factor}
}

func minInt3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

// normalize subtracts min(I,J,K) from every component.
func (c CoordIJK) normalize() CoordIJK {
	m := minInt3(c.I, c.J, c.K)
	if m == 0 {
		return c
	}
	return CoordIJK{c.I - m, c.J - m, c.K - m}
}

// neighbor returns the coordinate one step from c in direction dir
// (1..6); dir 0 (CenterDigit) returns c unchanged.
func (c CoordIJK) neighbor(dir int) CoordIJK {
	if dir < CenterDigit || dir > IJAxesDigit {
		return c
	}
	return c.add(unitVecs[dir]).normalize()
}

// rotate60ccw rotates c by 60 degrees counter-clockwise about the
// origin.
func (c CoordIJK) rotate60ccw() CoordIJK {
	iVec := CoordIJK{1, 1, 0}.scale(c.I)
	jVec := CoordIJK{0, 1, 1}.scale(c.J)
	kVec := CoordIJK{1, 0, 1}.scale(c.K)
	return iVec.add(jVec).add(kVec).normalize()
}

// rotate60cw rotates c by 60 degrees clockwise about the origin.
func (c CoordIJK) rotate60cw() CoordIJK {
	iVec := CoordIJK{1, 0, 1}.scale(c.I)
	jVec := CoordIJK{1, 1, 0}.scale(c.J)
	kVec := CoordIJK{0, 1, 1}.scale(c.K)
	return iVec.add(jVec).add(kVec).normalize()
}

// rotate60ccwN applies rotate60ccw n times (n may be any non-negative
// count of 60-degree steps).
func (c CoordIJK) rotate60ccwN(n int) CoordIJK {
	for i := 0; i < n; i++ {
		c = c.rotate60ccw()
	}
	return c
}

// rotate60cwN applies rotate60cw n times.
func (c CoordIJK) rotate60cwN(n int) CoordIJK {
	for i := 0; i < n; i++ {
		c = c.rotate60cw()
	}
	return c
}

// upAp7 transforms c from a resolution r+1 substrate to its parent at
// resolution r, for the Class II->Class II (even aperture) step.
func (c CoordIJK) upAp7() CoordIJK {
	i := c.I - c.K
	j := c.J - c.K
	ii := int(math.Round(float64(3*i-j) / 7.0))
	jj := int(math.Round(float64(i+2*j) / 7.0))
	return CoordIJK{ii, jj, 0}.normalize()
}

// upAp7r is upAp7's rotated counterpart, used when crossing the
// Class II/Class III boundary.
func (c CoordIJK) upAp7r() CoordIJK {
	i := c.I - c.K
	j := c.J - c.K
	ii := int(math.Round(float64(2*i+j) / 7.0))
	jj := int(math.Round(float64(3*j-i) / 7.0))
	return CoordIJK{ii, jj, 0}.normalize()
}

// downAp7 transforms c from resolution r to the resolution r+1
// substrate (even aperture).
func (c CoordIJK) downAp7() CoordIJK {
	iVec := CoordIJK{3, 0, 1}.scale(c.I)
	jVec := CoordIJK{1, 3, 0}.scale(c.J)
	kVec := CoordIJK{0, 1, 3}.scale(c.K)
	return iVec.add(jVec).add(kVec).normalize()
}

// downAp7r is downAp7's rotated counterpart.
func (c CoordIJK) downAp7r() CoordIJK {
	iVec := CoordIJK{3, 1, 0}.scale(c.I)
	jVec := CoordIJK{0, 3, 1}.scale(c.J)
	kVec := CoordIJK{1, 0, 3}.scale(c.K)
	return iVec.add(jVec).add(kVec).normalize()
}

// ijkToHex2d converts a normalized (i,j,k) coordinate to a 2D Cartesian
// point in "hex units" (edge length 1).
func ijkToHex2d(c CoordIJK) Vec2d {
	i := c.I - c.K
	j := c.J - c.K
	return Vec2d{
		X: float64(i) - 0.5*float64(j),
		Y: float64(j) * (math.Sqrt(3) / 2.0),
	}
}

// hex2dToIjk rounds a 2D Cartesian point (hex units) to the nearest
// lattice (i,j,k), resolving ties with the rhombic-triacontahedron
// convention of minimizing total rounding error across all three axes.
func hex2dToIjk(v Vec2d) CoordIJK {
	x1 := v.X
	y1 := v.Y / (math.Sqrt(3) / 2.0)

	i1 := x1 + y1/2.0
	j1 := y1

	i := int(math.Floor(i1))
	j := int(math.Floor(j1))

	type candidate struct {
		ijk CoordIJK
		err float64
	}
	round := func(di, dj int) candidate {
		ci := i + di
		cj := j + dj
		ck := 0
		c := CoordIJK{ci, cj, ck}.normalize()
		// error is distance back in the plane
		p := ijkToHex2d(c)
		dx := p.X - v.X
		dy := p.Y - v.Y
		return candidate{c, dx*dx + dy*dy}
	}

	best := round(0, 0)
	for _, cand := range []candidate{round(1, 0), round(0, 1), round(1, 1)} {
		if cand.err < best.err {
			best = cand
		}
	}
	return best.ijk
}
