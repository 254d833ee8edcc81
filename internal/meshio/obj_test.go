package meshio

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"wireframe-viewer/internal/scene"
)

func TestParseOBJMinimal(t *testing.T) {
	const src = `
v 0 1 0
v -1 0 -1
v 1.5 0 -1e-1
f 1 2 3
`
	tris, err := ParseOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if len(tris) != 1 {
		t.Fatalf("got %d triangles; expected 1", len(tris))
	}
	want := [3]scene.Vertex{scene.V(0, 1, 0), scene.V(-1, 0, -1), scene.V(1.5, 0, -0.1)}
	if got := tris[0].Vertices(); got != want {
		t.Errorf("Vertices()=%v; expected %v", got, want)
	}
}

func TestParseOBJIgnoresOtherRecords(t *testing.T) {
	const src = `# exported
mtllib cube.mtl
o Cube
v 0 0 0
v 1 0 0 1.0
vn 0 0 1
vt 0.5 0.5
v 0 1 0
usemtl none
s off
f 1/1/1 2/2/1 3//1
f 3 2 1 4
`
	tris, err := ParseOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if len(tris) != 2 {
		t.Fatalf("got %d triangles; expected 2", len(tris))
	}
	if got, want := tris[1].Vertices()[0], scene.V(0, 1, 0); got != want {
		t.Errorf("second triangle starts at %v; expected %v", got, want)
	}
}

func TestParseOBJErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		line int
	}{
		{"missing z", "v 1 2\n", 1},
		{"bad x", "v one 2 3\n", 1},
		{"missing corner", "v 0 0 0\nv 1 1 1\nv 2 2 2\nf 1 2\n", 4},
		{"bad corner", "v 0 0 0\nf 1 a 1\n", 2},
		{"index zero", "v 0 0 0\nv 1 1 1\nv 2 2 2\nf 0 1 2\n", 4},
		{"negative index", "v 0 0 0\nv 1 1 1\nv 2 2 2\nf -1 1 2\n", 4},
		{"undeclared vertex", "v 0 0 0\nv 1 1 1\nv 2 2 2\nf 1 2 4\n", 4},
		{"forward reference", "v 0 0 0\nf 1 2 3\nv 1 1 1\nv 2 2 2\n", 2},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			tris, err := ParseOBJ(strings.NewReader(test.src))
			if err == nil {
				t.Fatalf("ParseOBJ accepted %q, returned %v", test.src, tris)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("error %v is not a *ParseError", err)
			}
			if pe.Line != test.line {
				t.Errorf("ParseError.Line=%d; expected %d", pe.Line, test.line)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tri.OBJ")
	if err := os.WriteFile(path, []byte("v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"), 0644); err != nil {
		t.Fatal(err)
	}

	sc, err := ReadScene(path)
	if err != nil {
		t.Fatal(err)
	}
	if sc.Len() != 1 {
		t.Errorf("scene has %d triangles; expected 1", sc.Len())
	}

	bad := filepath.Join(dir, "bad.obj")
	if err := os.WriteFile(bad, []byte("v 0 0 0\nf 1 1 9\n"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err = Load(bad)
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Errorf("Load(%s) err=%v; expected a *ParseError", bad, err)
	}

	if _, err := Load(filepath.Join(dir, "model.stl")); err == nil {
		t.Error("Load accepted an unsupported extension")
	}
	if _, err := Load(filepath.Join(dir, "missing.obj")); err == nil {
		t.Error("Load accepted a missing file")
	}
}

func TestReadSceneDefault(t *testing.T) {
	sc, err := ReadScene("")
	if err != nil {
		t.Fatal(err)
	}
	if sc.Len() != len(scene.Pyramid()) {
		t.Errorf("default scene has %d triangles; expected %d", sc.Len(), len(scene.Pyramid()))
	}
}
