package snapshot

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Manifest describes one snapshot run.
type Manifest struct {
	RunID  string          `json:"run_id"`
	Frames []ManifestEntry `json:"frames"`
}

// ManifestEntry represents one frame in the output manifest.
type ManifestEntry struct {
	Index          int     `json:"index"`
	Yaw            float64 `json:"yaw"`
	Pitch          float64 `json:"pitch"`
	Image          string  `json:"image,omitempty"`
	Lines          int     `json:"lines"`
	HiddenVertices int     `json:"hidden_vertices"`
	Error          string  `json:"error,omitempty"`
}

// NewRunID returns a random identifier for a run.
func NewRunID() string {
	return uuid.NewString()
}

// WriteManifest writes the run's manifest as indented JSON to path.
// Image paths are relative to the manifest.
func WriteManifest(path, runID string, results []Result) error {
	m := Manifest{RunID: runID, Frames: make([]ManifestEntry, len(results))}
	for i, r := range results {
		e := ManifestEntry{
			Index:          r.Index,
			Yaw:            r.Yaw,
			Pitch:          r.Pitch,
			Lines:          r.Stats.Lines,
			HiddenVertices: r.Stats.HiddenVertices,
			Error:          r.Error,
		}
		if r.Success {
			if rel, err := filepath.Rel(filepath.Dir(path), r.Path); err == nil {
				e.Image = filepath.ToSlash(rel)
			} else {
				e.Image = r.Path
			}
		}
		m.Frames[i] = e
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
