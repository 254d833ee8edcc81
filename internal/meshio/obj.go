package meshio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"wireframe-viewer/internal/scene"
)

const maxLineSize = 1 << 20

var coordNames = [3]string{"x", "y", "z"}
var cornerNames = [3]string{"first", "second", "third"}

// ParseOBJ reads the vertex/face subset of the Wavefront OBJ format.
//
//	v x y z      declares a vertex (1-based, in order of appearance)
//	f i1 i2 i3   a triangle over previously declared vertices
//
// Every other record kind is skipped. Tokens past the third are ignored.
// Face corners written as i/t/n use the vertex index i.
func ParseOBJ(r io.Reader) ([]scene.Triangle, error) {
	var (
		tris  []scene.Triangle
		verts []scene.Vertex
	)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	line := 0
	for sc.Scan() {
		line++
		words := strings.Fields(sc.Text())
		if len(words) == 0 {
			continue
		}

		switch words[0] {
		case "v":
			var c [3]float64
			for i := range c {
				if len(words) <= i+1 {
					return nil, &ParseError{Line: line, Record: "v", Msg: "missing " + coordNames[i] + " coordinate"}
				}
				f, err := strconv.ParseFloat(words[i+1], 64)
				if err != nil {
					return nil, &ParseError{Line: line, Record: "v", Msg: "bad " + coordNames[i] + " coordinate", Err: err}
				}
				c[i] = f
			}
			verts = append(verts, scene.V(c[0], c[1], c[2]))

		case "f":
			var corners [3]scene.Vertex
			for i := range corners {
				if len(words) <= i+1 {
					return nil, &ParseError{Line: line, Record: "f", Msg: "missing " + cornerNames[i] + " vertex"}
				}
				idx, err := faceIndex(words[i+1])
				if err != nil {
					return nil, &ParseError{Line: line, Record: "f", Msg: "bad " + cornerNames[i] + " vertex", Err: err}
				}
				if idx < 1 || idx > len(verts) {
					return nil, &ParseError{
						Line:   line,
						Record: "f",
						Msg:    fmt.Sprintf("%s vertex index %d out of range 1..%d", cornerNames[i], idx, len(verts)),
					}
				}
				corners[i] = verts[idx-1]
			}
			tris = append(tris, scene.NewTriangle(corners[0], corners[1], corners[2]))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "meshio: read line %d", line+1)
	}

	return tris, nil
}

func faceIndex(tok string) (int, error) {
	if i := strings.IndexByte(tok, '/'); i >= 0 {
		tok = tok[:i]
	}
	return strconv.Atoi(tok)
}
