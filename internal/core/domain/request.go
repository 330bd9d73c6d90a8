package domain

// SamplingParams are the fixed txt2img sampler settings shared by every item in a batch.
type SamplingParams struct {
	Steps    int     `json:"steps"`
	CFGScale float64 `json:"cfg_scale"`
	Width    int     `json:"width"`
	Height   int     `json:"height"`
}

// DefaultSamplingParams matches the settings the collections were generated with.
func DefaultSamplingParams() SamplingParams {
	return SamplingParams{
		Steps:    28,
		CFGScale: 7,
		Width:    768,
		Height:   768,
	}
}

// Validate rejects zero or negative sampler settings.
func (p SamplingParams) Validate() error {
	if p.Steps <= 0 || p.CFGScale <= 0 || p.Width <= 0 || p.Height <= 0 {
		return ErrInvalidSampler
	}
	return nil
}

// GenerationRequest is the body of a txt2img call.
type GenerationRequest struct {
	Prompt         string `json:"prompt"`
	NegativePrompt string `json:"negative_prompt"`
	SamplingParams
}
