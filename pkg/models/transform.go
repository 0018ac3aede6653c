// Package models bridges glTF documents and the math3d kernel: it turns
// node translation/rotation/scale data into transform matrices and applies
// them to geometry.
package models

import (
	"github.com/qmuntal/gltf"

	"github.com/marcelochaves95/lib-physics/pkg/math3d"
)

var identityMatrix = [16]float64{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1,
}

// NodeLocal returns the local transform of a glTF node. A node carries
// either an explicit column-major matrix or translation/rotation/scale
// properties; glTF forbids both at once. TRS composes in scale, rotate,
// translate order per the glTF spec.
func NodeLocal(n *gltf.Node) math3d.Mat4 {
	if n.Matrix != identityMatrix && n.Matrix != ([16]float64{}) {
		// glTF matrices are column-major, same layout as Mat4.
		return math3d.Mat4(n.Matrix)
	}
	t := n.TranslationOrDefault()
	r := n.RotationOrDefault()
	s := n.ScaleOrDefault()
	return math3d.TRS(
		math3d.V3(t[0], t[1], t[2]),
		math3d.Quat{X: r[0], Y: r[1], Z: r[2], W: r[3]},
		math3d.V3(s[0], s[1], s[2]),
	)
}

// WorldTransforms returns the world transform of every node reachable from
// the document's root nodes, keyed by node index. Roots are the nodes no
// other node lists as a child.
func WorldTransforms(doc *gltf.Document) map[int]math3d.Mat4 {
	isChild := make(map[int]bool)
	for _, n := range doc.Nodes {
		for _, c := range n.Children {
			isChild[c] = true
		}
	}

	out := make(map[int]math3d.Mat4, len(doc.Nodes))
	var walk func(idx int, parent math3d.Mat4)
	walk = func(idx int, parent math3d.Mat4) {
		world := parent.Mul(NodeLocal(doc.Nodes[idx]))
		out[idx] = world
		for _, c := range doc.Nodes[idx].Children {
			walk(c, world)
		}
	}
	for i := range doc.Nodes {
		if !isChild[i] {
			walk(i, math3d.Identity())
		}
	}
	return out
}

// TransformPoints applies m to every point (translation applies).
func TransformPoints(m math3d.Mat4, pts []math3d.Vec3) []math3d.Vec3 {
	out := make([]math3d.Vec3, len(pts))
	for i, p := range pts {
		out[i] = m.MulVec3(p)
	}
	return out
}

// TransformNormals applies m to every normal as a direction (translation
// ignored) and renormalizes. Correct for rigid and uniformly scaled
// transforms; non-uniform scale needs the inverse-transpose, which callers
// can build with m.Inverse().Transpose().
func TransformNormals(m math3d.Mat4, normals []math3d.Vec3) []math3d.Vec3 {
	out := make([]math3d.Vec3, len(normals))
	for i, n := range normals {
		out[i] = m.MulVec3Dir(n).Normalize()
	}
	return out
}
