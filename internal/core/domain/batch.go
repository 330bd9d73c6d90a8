package domain

import (
	"time"

	"github.com/google/uuid"
)

// GeneratedArtifact records one image and sidecar pair that reached disk.
type GeneratedArtifact struct {
	Seq          int        `json:"seq"`
	Name         string     `json:"name"`
	Theme        string     `json:"theme"`
	Rarity       RarityTier `json:"rarity,omitempty"`
	ImagePath    string     `json:"image_path"`
	MetadataPath string     `json:"metadata_path"`
}

// BatchReport summarises a run. On failure it lists the artifacts written
// before the batch was aborted.
type BatchReport struct {
	RunID     uuid.UUID           `json:"run_id"`
	Volume    string              `json:"volume"`
	Requested int                 `json:"requested"`
	Artifacts []GeneratedArtifact `json:"artifacts"`
	StartedAt time.Time           `json:"started_at"`
	Elapsed   time.Duration       `json:"elapsed"`
}

// RarityCounts tallies written artifacts per tier. Volumes without rarity yield an empty map.
func (r *BatchReport) RarityCounts() map[RarityTier]int {
	counts := make(map[RarityTier]int)
	for _, a := range r.Artifacts {
		if a.Rarity != "" {
			counts[a.Rarity]++
		}
	}
	return counts
}
