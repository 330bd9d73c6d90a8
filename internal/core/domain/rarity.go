package domain

// RarityTier is the bucket a Vol2 artifact is assigned to.
type RarityTier string

const (
	RarityCommon    RarityTier = "Common"
	RarityRare      RarityTier = "Rare"
	RarityLegendary RarityTier = "Legendary"
)

// rarityBand covers [previous upper bound, Upper).
type rarityBand struct {
	Tier    RarityTier
	Upper   float64
	Tickets int
}

var rarityBands = [...]rarityBand{
	{Tier: RarityCommon, Upper: 0.70, Tickets: 1},
	{Tier: RarityRare, Upper: 0.95, Tickets: 3},
	{Tier: RarityLegendary, Upper: 1.0, Tickets: 10},
}

// Tickets returns the lottery ticket weight of the tier, or 0 for an unknown tier.
func (t RarityTier) Tickets() int {
	for _, b := range rarityBands {
		if b.Tier == t {
			return b.Tickets
		}
	}
	return 0
}

// DrawRarity maps a uniform sample u in [0,1) to a tier.
// Samples below 0 land in the first band, samples at or above 1 in the last.
func DrawRarity(u float64) RarityTier {
	for _, b := range rarityBands {
		if u < b.Upper {
			return b.Tier
		}
	}
	return rarityBands[len(rarityBands)-1].Tier
}
