package mesh

import "github.com/go-gl/mathgl/mgl32"

// PyramidSlots is the number of array slots: 4 side faces with 3 private
// vertices each, plus the 4 base corners.
const PyramidSlots = 16

// Attribute locations used by the pyramid shader.
const (
	LocPosition uint32 = iota
	LocNormal
	LocColor
	LocTexCoord
)

// NormalMode selects which normal set is active.
type NormalMode int

const (
	FaceNormals NormalMode = iota
	VertexNormals
)

func (m NormalMode) String() string {
	if m == VertexNormals {
		return "vertex"
	}
	return "face"
}

var (
	apex = mgl32.Vec3{0.0, 1.0, 0.0}
	v0   = mgl32.Vec3{0.5, 0.0, 0.5}   // front right
	v1   = mgl32.Vec3{-0.5, 0.0, 0.5}  // front left
	v2   = mgl32.Vec3{-0.5, 0.0, -0.5} // back left
	v3   = mgl32.Vec3{0.5, 0.0, -0.5}  // back right

	frontNormal = mgl32.Vec3{0.0, 0.4472136, 0.89442719}
	rightNormal = mgl32.Vec3{0.89442719, 0.4472136, 0.0}
	backNormal  = mgl32.Vec3{0.0, 0.4472136, -0.89442719}
	leftNormal  = mgl32.Vec3{-0.89442719, 0.4472136, 0.0}
	baseNormal  = mgl32.Vec3{0.0, -1.0, 0.0}
)

// Slot colors, one per array slot.
var pyramidColors = []mgl32.Vec4{
	{1, 0, 0, 1}, {1, 0, 0, 1}, {1, 0, 0, 1}, // front: red
	{1, 1, 0, 1}, {1, 1, 0, 1}, {1, 1, 0, 1}, // right: yellow
	{0, 1, 1, 1}, {0, 1, 1, 1}, {0, 1, 1, 1}, // back: cyan
	{0, 0, 1, 1}, {0, 0, 1, 1}, {0, 0, 1, 1}, {0, 0, 1, 1}, // left + first base slot: blue
	{0, 1, 0, 1}, {0, 1, 0, 1}, {0, 1, 0, 1}, // remaining base: green
}

var pyramidIndices = []uint16{
	0, 1, 2, // front
	3, 4, 5, // right
	6, 7, 8, // back
	9, 10, 11, // left
	12, 13, 14, // base
	12, 14, 15,
}

// Pyramid is a square pyramid of height 1 standing on a unit square base
// centered on the origin. Every side face owns its three vertices so it can
// carry its own face normal; the base quad shares four.
type Pyramid struct {
	Positions []float32
	Normals   []float32 // active set, uploaded to the GPU
	Colors    []float32
	TexCoords []float32
	Indices   []uint16

	faceNormals   []float32
	vertexNormals []float32
	mode          NormalMode
}

type pyramidOptions struct {
	color *mgl32.Vec4
}

// PyramidOption configures NewPyramid.
type PyramidOption func(*pyramidOptions)

// WithColor paints every vertex with c instead of the per-face palette.
func WithColor(c mgl32.Vec4) PyramidOption {
	return func(o *pyramidOptions) {
		o.color = &c
	}
}

// NewPyramid builds the pyramid mesh. It starts in face-normal mode.
func NewPyramid(opts ...PyramidOption) *Pyramid {
	var o pyramidOptions
	for _, opt := range opts {
		opt(&o)
	}

	corners := []mgl32.Vec3{
		v0, v1, apex, // front
		v3, v0, apex, // right
		v2, v3, apex, // back
		v1, v2, apex, // left
		v0, v3, v2, v1, // base, counter-clockwise seen from below
	}
	faces := []mgl32.Vec3{
		frontNormal, frontNormal, frontNormal,
		rightNormal, rightNormal, rightNormal,
		backNormal, backNormal, backNormal,
		leftNormal, leftNormal, leftNormal,
		baseNormal, baseNormal, baseNormal, baseNormal,
	}

	p := &Pyramid{
		Positions:   flatten3(corners),
		faceNormals: flatten3(faces),
		Indices:     append([]uint16(nil), pyramidIndices...),
	}

	if o.color != nil {
		p.Colors = repeatColor(*o.color, PyramidSlots)
	} else {
		p.Colors = make([]float32, 0, PyramidSlots*4)
		for _, c := range pyramidColors {
			p.Colors = append(p.Colors, c[0], c[1], c[2], c[3])
		}
	}

	triUV := []float32{1, 0, 0, 0, 0.5, 1}
	for i := 0; i < 4; i++ {
		p.TexCoords = append(p.TexCoords, triUV...)
	}
	p.TexCoords = append(p.TexCoords, 1, 1, 0, 1, 0, 0, 1, 0)

	p.vertexNormals = AverageNormals(p.faceNormals, SharedVertexGroups(p.Positions))
	p.Normals = append([]float32(nil), p.faceNormals...)
	return p
}

// FaceNormals returns a copy of the flat normal set.
func (p *Pyramid) FaceNormals() []float32 {
	return append([]float32(nil), p.faceNormals...)
}

// VertexNormals returns a copy of the averaged normal set.
func (p *Pyramid) VertexNormals() []float32 {
	return append([]float32(nil), p.vertexNormals...)
}

// Mode reports the active normal set.
func (p *Pyramid) Mode() NormalMode {
	return p.mode
}

// UseFaceNormals copies the flat normals into the active set.
func (p *Pyramid) UseFaceNormals() {
	copy(p.Normals, p.faceNormals)
	p.mode = FaceNormals
}

// UseVertexNormals copies the averaged normals into the active set.
func (p *Pyramid) UseVertexNormals() {
	copy(p.Normals, p.vertexNormals)
	p.mode = VertexNormals
}

// ToggleNormals switches to the other normal set and returns the new mode.
func (p *Pyramid) ToggleNormals() NormalMode {
	if p.mode == FaceNormals {
		p.UseVertexNormals()
	} else {
		p.UseFaceNormals()
	}
	return p.mode
}

// Attributes returns the four attribute blocks in upload order:
// position, normal, color, texcoord.
func (p *Pyramid) Attributes() []Attribute {
	return []Attribute{
		{Name: "a_position", Location: LocPosition, Components: 3, Data: p.Positions},
		{Name: "a_normal", Location: LocNormal, Components: 3, Data: p.Normals},
		{Name: "a_color", Location: LocColor, Components: 4, Data: p.Colors},
		{Name: "a_texCoord", Location: LocTexCoord, Components: 2, Data: p.TexCoords},
	}
}

// Indexed returns the pyramid as a generic indexed mesh sharing the same arrays.
func (p *Pyramid) Indexed() *Indexed {
	return &Indexed{Attributes: p.Attributes(), Indices: p.Indices}
}

// SharedVertexGroups groups the slots of a flat xyz position array that sit at
// the same point. Groups are ordered by first appearance; slots that are not
// duplicated anywhere are left out.
func SharedVertexGroups(positions []float32) [][]int {
	byPoint := make(map[mgl32.Vec3]int)
	var groups [][]int
	for slot := 0; slot < len(positions)/3; slot++ {
		pt := mgl32.Vec3{positions[slot*3], positions[slot*3+1], positions[slot*3+2]}
		g, ok := byPoint[pt]
		if !ok {
			g = len(groups)
			byPoint[pt] = g
			groups = append(groups, nil)
		}
		groups[g] = append(groups[g], slot)
	}

	shared := groups[:0]
	for _, g := range groups {
		if len(g) > 1 {
			shared = append(shared, g)
		}
	}
	return shared
}

// AverageNormals returns a copy of normals in which every slot of a group holds
// the componentwise mean of the group's normals. Slots outside any group keep
// their own normal.
func AverageNormals(normals []float32, groups [][]int) []float32 {
	out := append([]float32(nil), normals...)
	for _, g := range groups {
		if len(g) == 0 {
			continue
		}
		var sum mgl32.Vec3
		for _, slot := range g {
			sum = sum.Add(mgl32.Vec3{normals[slot*3], normals[slot*3+1], normals[slot*3+2]})
		}
		mean := sum.Mul(1 / float32(len(g)))
		for _, slot := range g {
			out[slot*3], out[slot*3+1], out[slot*3+2] = mean[0], mean[1], mean[2]
		}
	}
	return out
}

func flatten3(vs []mgl32.Vec3) []float32 {
	out := make([]float32, 0, len(vs)*3)
	for _, v := range vs {
		out = append(out, v[0], v[1], v[2])
	}
	return out
}
