package web

import (
	"bytes"
	"encoding/json"
	"log"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"wireframe-viewer/internal/camera"
	"wireframe-viewer/internal/mathutil"
	"wireframe-viewer/internal/raster"
	"wireframe-viewer/internal/snapshot"
)

// pose is the camera state requested by a render query.
type pose struct {
	yaw, pitch float64
	zoom       float64 // focal distance delta
	forward    int     // signed number of forward steps
	strafe     int     // signed number of right steps
}

func parsePose(q url.Values) (pose, error) {
	var p pose
	for _, f := range []struct {
		name string
		dst  *float64
	}{{"yaw", &p.yaw}, {"pitch", &p.pitch}, {"zoom", &p.zoom}} {
		if v := q.Get(f.name); v != "" {
			x, err := strconv.ParseFloat(v, 64)
			if err != nil || math.IsNaN(x) || math.IsInf(x, 0) {
				return pose{}, errors.Errorf("param %q is not a number", f.name)
			}
			*f.dst = x
		}
	}
	for _, f := range []struct {
		name string
		dst  *int
	}{{"forward", &p.forward}, {"strafe", &p.strafe}} {
		if v := q.Get(f.name); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return pose{}, errors.Errorf("param %q is not an integer", f.name)
			}
			if n > 1000 || n < -1000 {
				return pose{}, errors.Errorf("param %q out of range", f.name)
			}
			*f.dst = n
		}
	}
	return p, nil
}

// apply moves cam the way the same key presses would.
func (p pose) apply(cam *camera.Camera) {
	cam.RotateHorizontal(p.yaw)
	cam.RotateVertical(p.pitch)
	for i := 0; i < p.forward; i++ {
		cam.TranslateForward()
	}
	for i := 0; i > p.forward; i-- {
		cam.TranslateBackward()
	}
	for i := 0; i < p.strafe; i++ {
		cam.TranslateRight()
	}
	for i := 0; i > p.strafe; i-- {
		cam.TranslateLeft()
	}
	if p.zoom != 0 {
		cam.Zoom(p.zoom)
	}
}

func (s *server) handleRender(w http.ResponseWriter, r *http.Request) {
	format := mux.Vars(r)["format"]
	p, err := parsePose(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	cam := camera.New(s.params)
	p.apply(cam)
	fb, st := raster.Render(cam, s.tris, s.style)

	var buf bytes.Buffer
	if err := snapshot.Encode(&buf, fb.Image(), format); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", snapshot.ContentType(format))
	w.Header().Set("X-Wireframe-Lines", strconv.Itoa(st.Lines))
	w.Header().Set("X-Wireframe-Hidden", strconv.Itoa(st.HiddenVertices))
	writeResult(w, buf.Bytes())
}

type sceneInfo struct {
	Triangles int        `json:"triangles"`
	Min       [3]float64 `json:"min"`
	Max       [3]float64 `json:"max"`
	Center    [3]float64 `json:"center"`
	Radius    float64    `json:"radius"`
	Width     float64    `json:"width"`
	Height    float64    `json:"height"`
}

func (s *server) handleScene(w http.ResponseWriter, r *http.Request) {
	info := sceneInfo{
		Triangles: len(s.tris),
		Width:     s.params.Width,
		Height:    s.params.Height,
	}
	if len(s.tris) > 0 {
		b := mathutil.BoundsOf(s.tris)
		info.Min = b.Min
		info.Max = b.Max
		info.Center = b.Center()
		info.Radius = b.Radius()
	}
	writeJSON(w, info)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	writeResult(w, data)
}

func writeResult(w http.ResponseWriter, data []byte) {
	if _, err := w.Write(data); err != nil {
		log.Printf("[web] Error when writing response: %v", err)
	}
}

func writeError(w http.ResponseWriter, code int, err error) {
	type jError struct {
		Error string `json:"error"`
	}
	data, _ := json.Marshal(&jError{Error: err.Error()})
	log.Printf("[web] HERR: %s", data)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	writeResult(w, data)
}
