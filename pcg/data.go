package pcg

import "github.com/go-gl/mathgl/mgl64"

// Point is a generated vertex.
type Point struct {
	Pos    mgl64.Vec3
	Normal mgl64.Vec3
	UV     mgl64.Vec2
}

// Primitive is a face: an ordered list of indices into Data.Points.
type Primitive struct {
	Points []int
}

// Data accumulates the points and faces produced by one evaluation pass.
// It is owned by the caller of Play; nodes only append to it.
type Data struct {
	Points     []Point
	Primitives []Primitive
}

// Reset empties the buffer, keeping its capacity.
func (d *Data) Reset() {
	d.Points = d.Points[:0]
	d.Primitives = d.Primitives[:0]
}

// AddPoint appends p and returns its index.
func (d *Data) AddPoint(p Point) int {
	d.Points = append(d.Points, p)
	return len(d.Points) - 1
}

// AddPrimitive appends a face connecting the given point indices. Faces
// with fewer than 3 points or an index out of range are ignored.
// Returns whether the face was added.
func (d *Data) AddPrimitive(refs ...int) bool {
	if len(refs) < 3 {
		return false
	}
	for _, r := range refs {
		if r < 0 || r >= len(d.Points) {
			return false
		}
	}
	d.Primitives = append(d.Primitives, Primitive{Points: append([]int(nil), refs...)})
	return true
}

// TriangleCount returns the number of triangles the faces fan into.
func (d *Data) TriangleCount() int {
	n := 0
	for _, p := range d.Primitives {
		n += len(p.Points) - 2
	}
	return n
}

// Triangles fans every face into triangles and returns the index list.
func (d *Data) Triangles() []uint32 {
	out := make([]uint32, 0, d.TriangleCount()*3)
	for _, p := range d.Primitives {
		for i := 1; i+1 < len(p.Points); i++ {
			out = append(out, uint32(p.Points[0]), uint32(p.Points[i]), uint32(p.Points[i+1]))
		}
	}
	return out
}

// Bounds returns the axis-aligned bounding box of all points. ok is false
// when the buffer has no points.
func (d *Data) Bounds() (min, max mgl64.Vec3, ok bool) {
	if len(d.Points) == 0 {
		return min, max, false
	}
	min = d.Points[0].Pos
	max = min
	for i := 1; i < len(d.Points); i++ {
		p := d.Points[i].Pos
		for k := 0; k < 3; k++ {
			if p[k] < min[k] {
				min[k] = p[k]
			}
			if p[k] > max[k] {
				max[k] = p[k]
			}
		}
	}
	return min, max, true
}
