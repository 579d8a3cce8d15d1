package collision

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min, Max mgl64.Vec3
}

// FromCentre builds a box around centre with the given half extents.
func FromCentre(centre, half mgl64.Vec3) AABB {
	return AABB{Min: centre.Sub(half), Max: centre.Add(half)}
}

// FromPoints returns the smallest box holding every point.
func FromPoints(points ...mgl64.Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}
	b := AABB{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		for i := 0; i < 3; i++ {
			b.Min[i] = math.Min(b.Min[i], p[i])
			b.Max[i] = math.Max(b.Max[i], p[i])
		}
	}
	return b
}

// OrientedBox returns the world AABB of a box with the given half extents,
// rotated by yaw about +Y and centred on centre.
func OrientedBox(centre, half mgl64.Vec3, yaw float64) AABB {
	rot := mgl64.Rotate3DY(yaw)
	corners := make([]mgl64.Vec3, 0, 8)
	for _, sx := range []float64{-1, 1} {
		for _, sy := range []float64{-1, 1} {
			for _, sz := range []float64{-1, 1} {
				local := mgl64.Vec3{sx * half.X(), sy * half.Y(), sz * half.Z()}
				corners = append(corners, centre.Add(rot.Mul3x1(local)))
			}
		}
	}
	return FromPoints(corners...)
}

// Size returns the extent along each axis.
func (b AABB) Size() mgl64.Vec3 {
	return b.Max.Sub(b.Min)
}

// Centre returns the midpoint of the box.
func (b AABB) Centre() mgl64.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Diagonal returns the length of the box diagonal.
func (b AABB) Diagonal() float64 {
	return b.Size().Len()
}

// Translate returns the box moved by delta.
func (b AABB) Translate(delta mgl64.Vec3) AABB {
	return AABB{Min: b.Min.Add(delta), Max: b.Max.Add(delta)}
}

// Expand grows every side by amount; a negative amount shrinks. An axis that
// would invert collapses to its centre.
func (b AABB) Expand(amount float64) AABB {
	out := b
	for i := 0; i < 3; i++ {
		out.Min[i] -= amount
		out.Max[i] += amount
		if out.Min[i] > out.Max[i] {
			mid := (b.Min[i] + b.Max[i]) / 2
			out.Min[i], out.Max[i] = mid, mid
		}
	}
	return out
}

// Intersects reports whether the boxes overlap on every axis. Touching faces
// count as overlap.
func (b AABB) Intersects(o AABB) bool {
	for i := 0; i < 3; i++ {
		if b.Max[i] < o.Min[i] || b.Min[i] > o.Max[i] {
			return false
		}
	}
	return true
}
