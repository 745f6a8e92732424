package pcg

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Built-in generator class names.
const (
	BoxClass     = "PGBox"
	GridClass    = "PGGrid"
	SphereClass  = "PGSphere"
	ConnectClass = "PGConnect"
)

// Grid resolution. The grid always spans the unit square on the XZ plane.
const gridDivisions = 10

// Sphere defaults and lower bounds.
const (
	DefaultSphereStacks  = 18
	DefaultSphereSectors = 36
	minSphereStacks      = 2
	minSphereSectors     = 3
)

// --- Box ---

// Box generates an axis-aligned box centered on the origin. Each face has
// its own four points so normals stay flat.
type Box struct {
	Size mgl64.Vec3
	node *Node
}

// NewBox creates a unit box node.
func NewBox(name string) (*Box, *Node) {
	b := &Box{Size: mgl64.Vec3{1, 1, 1}}
	b.node = newGeneratorNode(name, b)
	return b, b.node
}

// SetSize sets the box extents and marks the node dirty.
func (b *Box) SetSize(size mgl64.Vec3) {
	b.Size = size
	b.node.MarkDirty()
}

func (b *Box) Class() string { return BoxClass }

func (b *Box) Properties() []Property {
	return []Property{vec3Property("size", &b.Size, b.node.MarkDirty)}
}

type boxFace struct {
	normal, u, v mgl64.Vec3
}

var boxFaces = [6]boxFace{
	{mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 0, -1}, mgl64.Vec3{0, 1, 0}},
	{mgl64.Vec3{-1, 0, 0}, mgl64.Vec3{0, 0, 1}, mgl64.Vec3{0, 1, 0}},
	{mgl64.Vec3{0, 1, 0}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 0, -1}},
	{mgl64.Vec3{0, -1, 0}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 0, 1}},
	{mgl64.Vec3{0, 0, 1}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 1, 0}},
	{mgl64.Vec3{0, 0, -1}, mgl64.Vec3{-1, 0, 0}, mgl64.Vec3{0, 1, 0}},
}

var quadCorners = [4]mgl64.Vec2{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}

func (b *Box) Play(_ *Node, data *Data) {
	half := b.Size.Mul(0.5)
	for _, f := range boxFaces {
		base := len(data.Points)
		for _, c := range quadCorners {
			dir := f.normal.Add(f.u.Mul(c[0])).Add(f.v.Mul(c[1]))
			data.AddPoint(Point{
				Pos:    mgl64.Vec3{dir[0] * half[0], dir[1] * half[1], dir[2] * half[2]},
				Normal: f.normal,
				UV:     mgl64.Vec2{(c[0] + 1) / 2, (c[1] + 1) / 2},
			})
		}
		data.AddPrimitive(base, base+1, base+2)
		data.AddPrimitive(base, base+2, base+3)
	}
}

// --- Grid ---

// Grid generates a flat 11x11 point grid over the unit square on the XZ
// plane, two triangles per cell.
type Grid struct {
	node *Node
}

// NewGrid creates a grid node.
func NewGrid(name string) (*Grid, *Node) {
	g := &Grid{}
	g.node = newGeneratorNode(name, g)
	return g, g.node
}

func (g *Grid) Class() string          { return GridClass }
func (g *Grid) Properties() []Property { return nil }

func (g *Grid) Play(_ *Node, data *Data) {
	const row = gridDivisions + 1
	base := len(data.Points)
	for i := 0; i < row; i++ {
		for j := 0; j < row; j++ {
			u := float64(i) / gridDivisions
			v := float64(j) / gridDivisions
			data.AddPoint(Point{
				Pos:    mgl64.Vec3{u, 0, v},
				Normal: mgl64.Vec3{0, 1, 0},
				UV:     mgl64.Vec2{u, v},
			})
		}
	}
	for i := 0; i < gridDivisions; i++ {
		for j := 0; j < gridDivisions; j++ {
			k := base + i*row + j
			data.AddPrimitive(k, k+row, k+1)
			data.AddPrimitive(k+1, k+row, k+row+1)
		}
	}
}

// --- Sphere ---

// Sphere generates a UV sphere. Rings run from the north pole (+Y) to the
// south pole; the pole bands emit one triangle per sector.
type Sphere struct {
	Radius  float64
	Stacks  int
	Sectors int
	node    *Node
}

// NewSphere creates a unit sphere node with default tessellation.
func NewSphere(name string) (*Sphere, *Node) {
	s := &Sphere{Radius: 1, Stacks: DefaultSphereStacks, Sectors: DefaultSphereSectors}
	s.node = newGeneratorNode(name, s)
	return s, s.node
}

// SetRadius sets the radius and marks the node dirty.
func (s *Sphere) SetRadius(r float64) {
	s.Radius = r
	s.node.MarkDirty()
}

// SetTessellation sets the stack and sector counts and marks the node
// dirty. Values below 2 stacks or 3 sectors are raised to those minimums
// at evaluation time.
func (s *Sphere) SetTessellation(stacks, sectors int) {
	s.Stacks = stacks
	s.Sectors = sectors
	s.node.MarkDirty()
}

func (s *Sphere) Class() string { return SphereClass }

func (s *Sphere) Properties() []Property {
	return []Property{
		floatProperty("radius", &s.Radius, s.node.MarkDirty),
		intProperty("stacks", &s.Stacks, s.node.MarkDirty),
		intProperty("sectors", &s.Sectors, s.node.MarkDirty),
	}
}

func (s *Sphere) Play(_ *Node, data *Data) {
	stacks := max(s.Stacks, minSphereStacks)
	sectors := max(s.Sectors, minSphereSectors)
	stackStep := math.Pi / float64(stacks)
	sectorStep := 2 * math.Pi / float64(sectors)

	base := len(data.Points)
	for i := 0; i <= stacks; i++ {
		stackAngle := math.Pi/2 - float64(i)*stackStep
		xz := math.Cos(stackAngle)
		y := math.Sin(stackAngle)
		for j := 0; j <= sectors; j++ {
			sectorAngle := float64(j) * sectorStep
			n := mgl64.Vec3{xz * math.Cos(sectorAngle), y, xz * math.Sin(sectorAngle)}
			data.AddPoint(Point{
				Pos:    n.Mul(s.Radius),
				Normal: n,
				UV:     mgl64.Vec2{float64(j) / float64(sectors), float64(i) / float64(stacks)},
			})
		}
	}

	for i := 0; i < stacks; i++ {
		k1 := base + i*(sectors+1)
		k2 := k1 + sectors + 1
		for j := 0; j < sectors; j, k1, k2 = j+1, k1+1, k2+1 {
			if i != 0 {
				data.AddPrimitive(k1, k2, k1+1)
			}
			if i != stacks-1 {
				data.AddPrimitive(k1+1, k2, k2+1)
			}
		}
	}
}

// --- Connect ---

// Connect evaluates its final children, then emits one face through its
// own point list. Fewer than three points produce no face.
type Connect struct {
	Points []mgl64.Vec3
	node   *Node
}

// NewConnect creates an empty connect node.
func NewConnect(name string) (*Connect, *Node) {
	c := &Connect{}
	c.node = newGeneratorNode(name, c)
	return c, c.node
}

// SetPoints replaces the face outline and marks the node dirty.
func (c *Connect) SetPoints(pts ...mgl64.Vec3) {
	c.Points = append(c.Points[:0], pts...)
	c.node.MarkDirty()
}

func (c *Connect) Class() string { return ConnectClass }

func (c *Connect) Properties() []Property {
	return []Property{{
		Name: "points",
		Get:  func() string { return formatVec3List(c.Points) },
		Set: func(s string) error {
			pts, err := parseVec3List(s)
			if err != nil {
				return err
			}
			c.Points = pts
			c.node.MarkDirty()
			return nil
		},
	}}
}

func (c *Connect) Play(n *Node, data *Data) {
	n.PlayChildren(data)
	if len(c.Points) < 3 {
		return
	}
	normal := faceNormal(c.Points)
	refs := make([]int, len(c.Points))
	for i, p := range c.Points {
		refs[i] = data.AddPoint(Point{Pos: p, Normal: normal})
	}
	data.AddPrimitive(refs...)
}

// faceNormal computes a polygon normal with Newell's method.
func faceNormal(pts []mgl64.Vec3) mgl64.Vec3 {
	var n mgl64.Vec3
	for i, cur := range pts {
		next := pts[(i+1)%len(pts)]
		n[0] += (cur[1] - next[1]) * (cur[2] + next[2])
		n[1] += (cur[2] - next[2]) * (cur[0] + next[0])
		n[2] += (cur[0] - next[0]) * (cur[1] + next[1])
	}
	if n.Len() == 0 {
		return n
	}
	return n.Normalize()
}
