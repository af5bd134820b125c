package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/engine"
)

// Placement is where a pipe pair goes: both pipes share X, the upper pipe
// hangs down to GapTop and the lower pipe starts at GapTop+Gap.
type Placement struct {
	X      float64
	GapTop float64
	Gap    float64
}

// LowerY returns the top edge of the lower pipe.
func (p Placement) LowerY() float64 {
	return p.GapTop + p.Gap
}

// PlacePair picks the next pair position right of rightmost using the
// tier's horizontal and vertical ranges. The gap stays margin units away
// from the top and bottom of a world of the given height.
func PlacePair(rng *rand.Rand, rightmost float64, tier config.TierConfig, height, margin int) Placement {
	gap := engine.Between(rng, tier.Vertical.Min, tier.Vertical.Max)
	top := engine.Between(rng, margin, height-margin-gap)
	dist := engine.Between(rng, tier.Horizontal.Min, tier.Horizontal.Max)

	return Placement{
		X:      rightmost + float64(dist),
		GapTop: float64(top),
		Gap:    float64(gap),
	}
}

// RightmostX returns the largest X among pipes, or 0 when all are left of the origin.
func RightmostX(pipes []*engine.Sprite) float64 {
	rightmost := 0.0
	for _, p := range pipes {
		rightmost = max(rightmost, p.X)
	}
	return rightmost
}
