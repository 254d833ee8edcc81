// Package web serves rendered frames of a scene over HTTP.
package web

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"wireframe-viewer/internal/camera"
	"wireframe-viewer/internal/raster"
	"wireframe-viewer/internal/scene"
)

// server shares one read-only triangle list between requests. Every
// request renders with its own camera.
type server struct {
	tris   []scene.Triangle
	params camera.Params
	style  raster.Style
}

// NewRouter returns the preview routes for tris.
func NewRouter(tris []scene.Triangle, params camera.Params, style raster.Style) *mux.Router {
	s := &server{tris: tris, params: params, style: style}

	r := mux.NewRouter()
	r.HandleFunc("/render.{format:png|webp|tga}", s.handleRender).Methods(http.MethodGet)
	r.HandleFunc("/scene", s.handleScene).Methods(http.MethodGet)
	return r
}

// Serve listens on addr until the listener fails.
func Serve(addr string, h http.Handler) error {
	h = handlers.RecoveryHandler(handlers.PrintRecoveryStack(true))(h)
	h = handlers.LoggingHandler(os.Stdout, h)

	log.Printf("[web] Starting server %v", addr)

	return http.ListenAndServe(addr, h)
}
