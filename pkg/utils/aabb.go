// pkg/utils/aabb.go
package utils

// SegmentAABB tests the segment from p0 to p1 against the axis-aligned box
// [min, max] (slab method). On a hit it returns the entry fraction t in [0, 1]
// along the segment. A segment that starts inside the box hits at t = 0.
func SegmentAABB(p0, p1, min, max Vec2) (float64, bool) {
	tMin, tMax := 0.0, 1.0
	d := p1.Sub(p0)

	for axis := 0; axis < 2; axis++ {
		var o, dir, lo, hi float64
		if axis == 0 {
			o, dir, lo, hi = p0.X, d.X, min.X, max.X
		} else {
			o, dir, lo, hi = p0.Y, d.Y, min.Y, max.Y
		}

		if dir == 0 {
			if o < lo || o > hi {
				return 0, false
			}
			continue
		}

		t1 := (lo - o) / dir
		t2 := (hi - o) / dir
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tMin {
			tMin = t1
		}
		if t2 < tMax {
			tMax = t2
		}
		if tMin > tMax {
			return 0, false
		}
	}
	return tMin, true
}

// SegmentPointDist returns the distance from c to the closest point of the
// segment p0-p1.
func SegmentPointDist(p0, p1, c Vec2) float64 {
	d := p1.Sub(p0)
	l2 := d.X*d.X + d.Y*d.Y
	if l2 == 0 {
		return p0.Dist(c)
	}
	t := ((c.X-p0.X)*d.X + (c.Y-p0.Y)*d.Y) / l2
	t = Clamp(t, 0, 1)
	return p0.Add(d.Scale(t)).Dist(c)
}
