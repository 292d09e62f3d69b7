package geometry

// Bounds is an axis-aligned rectangle on the walkable XZ plane.
// A well-formed value satisfies MinX <= MaxX and MinZ <= MaxZ.
type Bounds struct {
	MinX float64 `json:"minX"`
	MaxX float64 `json:"maxX"`
	MinZ float64 `json:"minZ"`
	MaxZ float64 `json:"maxZ"`
}

func (b Bounds) Width() float64 { return b.MaxX - b.MinX }
func (b Bounds) Depth() float64 { return b.MaxZ - b.MinZ }
func (b Bounds) Area() float64  { return b.Width() * b.Depth() }

func (b Bounds) CenterX() float64 { return (b.MinX + b.MaxX) / 2 }
func (b Bounds) CenterZ() float64 { return (b.MinZ + b.MaxZ) / 2 }

// IsDegenerate reports whether the rectangle encloses no area or carries a
// non-finite corner. Degenerate rectangles are dropped by zone synthesis and
// never contain a point.
func (b Bounds) IsDegenerate() bool {
	if !IsFinite(b.MinX) || !IsFinite(b.MaxX) || !IsFinite(b.MinZ) || !IsFinite(b.MaxZ) {
		return true
	}
	return b.Width() <= 0 || b.Depth() <= 0
}

// Contains reports whether the point lies inside the rectangle, edges included.
// Non-finite coordinates are never contained.
func (b Bounds) Contains(x, z float64) bool {
	if !IsFinite(x) || !IsFinite(z) {
		return false
	}
	return x >= b.MinX && x <= b.MaxX && z >= b.MinZ && z <= b.MaxZ
}

// ContainsWithin behaves like Contains with the rectangle grown by eps on
// every side, so a point exactly on the seam between two adjoining rectangles
// tests inside both.
func (b Bounds) ContainsWithin(x, z, eps float64) bool {
	if !IsFinite(x) || !IsFinite(z) {
		return false
	}
	return x >= b.MinX-eps && x <= b.MaxX+eps && z >= b.MinZ-eps && z <= b.MaxZ+eps
}

// Expanded returns a copy grown by eps on every side. A negative eps shrinks.
func (b Bounds) Expanded(eps float64) Bounds {
	return Bounds{
		MinX: b.MinX - eps,
		MaxX: b.MaxX + eps,
		MinZ: b.MinZ - eps,
		MaxZ: b.MaxZ + eps,
	}
}

// Intersects reports whether the two rectangles overlap, edges included.
func (b Bounds) Intersects(o Bounds) bool {
	return b.MinX <= o.MaxX && b.MaxX >= o.MinX && b.MinZ <= o.MaxZ && b.MaxZ >= o.MinZ
}
