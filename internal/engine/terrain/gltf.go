package terrain

import (
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// Document builds a glTF 2.0 document holding the mesh as a single
// non-indexed triangle list with POSITION and TEXCOORD_0 attributes.
func (m *Mesh) Document(name string) *gltf.Document {
	positions := make([][3]float32, len(m.Positions))
	for i, p := range m.Positions {
		positions[i] = p
	}
	texCoords := make([][2]float32, len(m.TexCoords))
	for i, t := range m.TexCoords {
		texCoords[i] = t
	}

	doc := gltf.NewDocument()
	pos := modeler.WritePosition(doc, positions)
	uv := modeler.WriteTextureCoord(doc, texCoords)

	doc.Meshes = []*gltf.Mesh{{
		Name: name,
		Primitives: []*gltf.Primitive{{
			Mode: gltf.PrimitiveTriangles,
			Attributes: gltf.PrimitiveAttributes{
				gltf.POSITION:   pos,
				gltf.TEXCOORD_0: uv,
			},
		}},
	}}
	doc.Nodes = []*gltf.Node{{Name: name, Mesh: gltf.Index(0)}}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)
	return doc
}
