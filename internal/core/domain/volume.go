package domain

import (
	"fmt"
	"sort"
)

const defaultCreator = "BearTask Studio"

// Volume is the fixed profile of one collection run.
type Volume struct {
	Label          string
	Collection     string // human readable, e.g. "Dorm Life Vol2"
	CollectionID   string // filename prefix, e.g. "DormLife_Vol2"
	Themes         []Theme
	PromptSuffix   string
	NegativePrompt string
	Creator        string
	Description    string
	Rarity         bool
}

var volumes = map[string]Volume{
	"Vol1": {
		Label:          "Vol1",
		Collection:     "Dorm Life Vol1",
		CollectionID:   "DormLife_Vol1",
		Themes:         vol1Themes,
		PromptSuffix:   "diverse students, high quality digital art",
		NegativePrompt: "text, watermark, logo, blurry, low quality",
		Creator:        defaultCreator,
	},
	"Vol2": {
		Label:          "Vol2",
		Collection:     "Dorm Life Vol2",
		CollectionID:   "DormLife_Vol2",
		Themes:         vol2Themes,
		PromptSuffix:   "high quality digital art, realistic, cinematic lighting, deep emotion, dorm life photography style",
		NegativePrompt: "text, watermark, logo, blurry, distorted, low quality",
		Creator:        defaultCreator,
		Description:    "An emotional moment from college dorm life, capturing the unseen side of student experiences.",
		Rarity:         true,
	},
}

// LookupVolume returns a copy of a built-in volume profile.
func LookupVolume(label string) (Volume, error) {
	v, ok := volumes[label]
	if !ok {
		return Volume{}, fmt.Errorf("%w: %q", ErrUnknownVolume, label)
	}
	v.Themes = append([]Theme(nil), v.Themes...)
	return v, nil
}

// VolumeLabels lists the built-in volume labels in order.
func VolumeLabels() []string {
	labels := make([]string, 0, len(volumes))
	for l := range volumes {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	return labels
}

// DefaultOutputDir is where a run writes when no directory is configured.
func (v Volume) DefaultOutputDir() string {
	return v.CollectionID
}

// BuildRequest assembles the txt2img request for a theme.
func (v Volume) BuildRequest(theme Theme, params SamplingParams) *GenerationRequest {
	prompt := theme.Prompt
	if v.PromptSuffix != "" {
		prompt += ", " + v.PromptSuffix
	}
	return &GenerationRequest{
		Prompt:         prompt,
		NegativePrompt: v.NegativePrompt,
		SamplingParams: params,
	}
}

// BuildMetadata assembles the sidecar for the seq-th (1-based) artifact.
// tier is ignored for volumes without rarity.
func (v Volume) BuildMetadata(seq int, theme Theme, tier RarityTier) *ArtifactMetadata {
	meta := &ArtifactMetadata{
		Name:       fmt.Sprintf("%s #%s", v.Collection, SequenceLabel(seq)),
		Collection: v.Collection,
		Theme:      theme.Name,
	}
	if !v.Rarity {
		meta.CreatedBy = v.Creator
		return meta
	}
	meta.Rarity = tier
	meta.LotteryTickets = tier.Tickets()
	meta.Creator = v.Creator
	meta.Description = v.Description
	return meta
}
