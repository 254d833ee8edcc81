package meshio

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"wireframe-viewer/internal/scene"
)

// Load reads triangles from path, choosing the decoder by extension.
func Load(path string) ([]scene.Triangle, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".obj":
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrapf(err, "meshio: open %s", path)
		}
		defer f.Close()

		tris, err := ParseOBJ(f)
		if err != nil {
			return nil, errors.Wrapf(err, "meshio: parse %s", path)
		}
		return tris, nil
	case ".gltf", ".glb":
		return LoadGLTF(path)
	default:
		return nil, errors.Errorf("meshio: unsupported model format %q", filepath.Ext(path))
	}
}

// ReadScene loads path into a new Scene. An empty path yields the
// built-in pyramid.
func ReadScene(path string) (*scene.Scene, error) {
	if path == "" {
		return scene.FromTriangles(scene.Pyramid()), nil
	}
	tris, err := Load(path)
	if err != nil {
		return nil, err
	}
	return scene.FromTriangles(tris), nil
}
