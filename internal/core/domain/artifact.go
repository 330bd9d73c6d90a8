package domain

import "fmt"

// ArtifactMetadata is the JSON sidecar written next to every generated image.
// Vol1 sidecars carry CreatedBy; Vol2 sidecars carry Creator plus rarity fields.
type ArtifactMetadata struct {
	Name           string     `json:"name"`
	Collection     string     `json:"collection"`
	Theme          string     `json:"theme"`
	Rarity         RarityTier `json:"rarity,omitempty"`
	LotteryTickets int        `json:"lottery_tickets,omitempty"`
	CreatedBy      string     `json:"created_by,omitempty"`
	Creator        string     `json:"creator,omitempty"`
	Description    string     `json:"description,omitempty"`
}

// SequenceLabel formats a 1-based item number as the zero-padded suffix used in names.
func SequenceLabel(seq int) string {
	return fmt.Sprintf("%03d", seq)
}

// ArtifactName is the shared base filename of an image and its metadata.
func ArtifactName(collectionID string, seq int) string {
	return collectionID + "_" + SequenceLabel(seq)
}
