package export

import (
	"os"

	"github.com/deadsy/npgen/shape"
	"github.com/hpinc/go3mf"
)

// WriteThreeMF emits a fan-triangulated 3MF mesh of the polyhedron's
// faces: every face (3 to 10 vertices, per shape.Face) is split into a
// triangle fan anchored at its first vertex, the minimal triangulation
// that needs no additional Steiner points for a convex polygon.
func WriteThreeMF(path string, faces []shape.Face) error {
	model := &go3mf.Model{}
	mesh := &go3mf.Mesh{}

	var verts []go3mf.Point3D
	offset := 0
	for _, f := range faces {
		base := offset
		for _, v := range f.Vertices {
			verts = append(verts, go3mf.Point3D{
				float32(v.X.Float64()),
				float32(v.Y.Float64()),
				float32(v.Z.Float64()),
			})
			offset++
		}
		for i := 1; i < len(f.Vertices)-1; i++ {
			mesh.Triangles.Triangle = append(mesh.Triangles.Triangle, go3mf.Triangle{
				V1: base, V2: base + i, V3: base + i + 1,
			})
		}
	}
	mesh.Vertices.Vertex = verts

	obj := &go3mf.Object{
		ID:   1,
		Type: go3mf.ObjectTypeModel,
		Mesh: mesh,
	}
	model.Resources.Objects = append(model.Resources.Objects, obj)
	model.Build.Items = append(model.Build.Items, &go3mf.Item{ObjectID: 1})

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := go3mf.NewEncoder(f)
	return enc.Encode(model)
}
