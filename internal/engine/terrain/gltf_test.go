package terrain

import (
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"
)

func TestDocument(t *testing.T) {
	m := GenerateMesh(2, 3)
	doc := m.Document("terrain")

	if len(doc.Meshes) != 1 || len(doc.Meshes[0].Primitives) != 1 {
		t.Fatalf("expected one mesh with one primitive, got %+v", doc.Meshes)
	}
	prim := doc.Meshes[0].Primitives[0]
	if prim.Indices != nil {
		t.Error("terrain mesh should not be indexed")
	}
	if prim.Mode != gltf.PrimitiveTriangles {
		t.Errorf("mode = %v, want triangles", prim.Mode)
	}

	pos, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		t.Fatal("missing POSITION attribute")
	}
	if got := doc.Accessors[pos]; got.Count != 24 || got.Type != gltf.AccessorVec3 {
		t.Errorf("POSITION accessor = count %d type %v", got.Count, got.Type)
	}

	uv, ok := prim.Attributes[gltf.TEXCOORD_0]
	if !ok {
		t.Fatal("missing TEXCOORD_0 attribute")
	}
	if got := doc.Accessors[uv]; got.Count != 24 || got.Type != gltf.AccessorVec2 {
		t.Errorf("TEXCOORD_0 accessor = count %d type %v", got.Count, got.Type)
	}

	if len(doc.Nodes) != 1 || doc.Nodes[0].Mesh == nil || *doc.Nodes[0].Mesh != 0 {
		t.Errorf("node should reference mesh 0: %+v", doc.Nodes)
	}
	if len(doc.Scenes) == 0 || len(doc.Scenes[0].Nodes) != 1 {
		t.Errorf("default scene should hold the node: %+v", doc.Scenes)
	}
}

func TestDocumentSaveAndOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.glb")

	if err := gltf.SaveBinary(GenerateMesh(10, 4).Document("grid"), path); err != nil {
		t.Fatalf("SaveBinary failed: %v", err)
	}

	doc, err := gltf.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if len(doc.Meshes) != 1 || doc.Meshes[0].Name != "grid" {
		t.Fatalf("unexpected meshes after reload: %+v", doc.Meshes)
	}
	pos := doc.Meshes[0].Primitives[0].Attributes[gltf.POSITION]
	if got := doc.Accessors[pos].Count; got != 54 {
		t.Errorf("reloaded vertex count = %d, want 54", got)
	}
}
