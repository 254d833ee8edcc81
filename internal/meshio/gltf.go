package meshio

import (
	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"wireframe-viewer/internal/scene"
)

// LoadGLTF reads triangle-list primitives from a .gltf or .glb file,
// walking the node tree of the default scene. Node transforms are not
// applied; positions are taken as stored in the mesh.
func LoadGLTF(path string) ([]scene.Triangle, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "meshio: open %s", path)
	}
	return readDocument(doc)
}

func readDocument(doc *gltf.Document) ([]scene.Triangle, error) {
	if len(doc.Scenes) == 0 {
		return nil, errors.New("meshio: gltf document has no scenes")
	}
	sceneIdx := 0
	if doc.Scene != nil {
		sceneIdx = int(*doc.Scene)
	}
	if sceneIdx >= len(doc.Scenes) {
		return nil, errors.Errorf("meshio: default scene %d out of range", sceneIdx)
	}

	var tris []scene.Triangle
	seen := make(map[uint32]bool)

	var walk func(id uint32) error
	walk = func(id uint32) error {
		if int(id) >= len(doc.Nodes) || seen[id] {
			return nil
		}
		seen[id] = true
		node := doc.Nodes[id]
		if node.Mesh != nil {
			mesh := doc.Meshes[*node.Mesh]
			for i, prim := range mesh.Primitives {
				t, err := readPrimitive(doc, prim)
				if err != nil {
					return errors.Wrapf(err, "meshio: mesh %q primitive %d", mesh.Name, i)
				}
				tris = append(tris, t...)
			}
		}
		for _, c := range node.Children {
			if err := walk(c); err != nil {
				return err
			}
		}
		return nil
	}

	for _, id := range doc.Scenes[sceneIdx].Nodes {
		if err := walk(id); err != nil {
			return nil, err
		}
	}
	return tris, nil
}

func readPrimitive(doc *gltf.Document, prim *gltf.Primitive) ([]scene.Triangle, error) {
	if prim.Mode != gltf.PrimitiveTriangles {
		return nil, nil
	}
	posIdx, ok := prim.Attributes["POSITION"]
	if !ok {
		return nil, nil
	}

	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return nil, errors.Wrap(err, "read positions")
	}

	var indices []uint32
	if prim.Indices != nil {
		indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return nil, errors.Wrap(err, "read indices")
		}
	} else {
		indices = make([]uint32, len(positions))
		for i := range indices {
			indices[i] = uint32(i)
		}
	}

	vertex := func(i uint32) (scene.Vertex, error) {
		if int(i) >= len(positions) {
			return scene.Vertex{}, errors.Errorf("index %d out of range (%d positions)", i, len(positions))
		}
		p := positions[i]
		return scene.V(float64(p[0]), float64(p[1]), float64(p[2])), nil
	}

	tris := make([]scene.Triangle, 0, len(indices)/3)
	for i := 0; i+2 < len(indices); i += 3 {
		var corners [3]scene.Vertex
		for k := 0; k < 3; k++ {
			v, err := vertex(indices[i+k])
			if err != nil {
				return nil, err
			}
			corners[k] = v
		}
		tris = append(tris, scene.NewTriangle(corners[0], corners[1], corners[2]))
	}
	return tris, nil
}
