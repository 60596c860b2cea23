package geometry

import "math"

// Ray is a half-line starting at Origin
type Ray struct {
	Origin    Vector3
	Direction Vector3
}

// At returns the point at distance t along the ray
func (r Ray) At(t float64) Vector3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// IntersectPlaneY intersects the ray with the horizontal plane at height y.
// ok is false when the ray is parallel to the plane or points away from it.
func (r Ray) IntersectPlaneY(y float64) (point Vector3, ok bool) {
	if math.Abs(r.Direction.Y) < 1e-9 {
		return Vector3{}, false
	}
	t := (y - r.Origin.Y) / r.Direction.Y
	if t <= 0 {
		return Vector3{}, false
	}
	return r.At(t), true
}

// IntersectBox returns the distance at which the ray enters box, or 0 if
// the origin is inside it
func (r Ray) IntersectBox(box BoundingBox) (float64, bool) {
	if box.IsEmpty() {
		return 0, false
	}
	tMin, tMax := math.Inf(-1), math.Inf(1)
	for axis := 0; axis < 3; axis++ {
		o, d := r.Origin.Component(axis), r.Direction.Component(axis)
		lo, hi := box.Min.Component(axis), box.Max.Component(axis)
		if math.Abs(d) < 1e-12 {
			if o < lo || o > hi {
				return 0, false
			}
			continue
		}
		t1, t2 := (lo-o)/d, (hi-o)/d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return 0, false
		}
	}
	if tMax < 0 {
		return 0, false
	}
	return math.Max(tMin, 0), true
}
