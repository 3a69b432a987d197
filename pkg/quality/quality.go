// Package quality maps the final quality of a completed craft onto its
// reward: the high-quality chance for normal items, or the collectability
// rating for turn-ins. The mapping applies only to completed crafts.
package quality

// hq maps an integer quality percentage 0..100 onto the HQ chance the game
// actually rolls. The curve is flat early and steep near the top.
var hq = [101]uint8{
	1, 1, 1, 1, 1, 2, 2, 2, 2, 3, 3, 3, 3, 4, 4, 4, 4, 5, 5, 5,
	5, 6, 6, 6, 6, 7, 7, 7, 7, 8, 8, 8, 9, 9, 9, 10, 10, 10, 11, 11,
	11, 12, 12, 12, 13, 13, 13, 14, 14, 14, 15, 15, 15, 16, 16, 17, 17, 17, 18, 18,
	18, 19, 19, 20, 20, 21, 22, 23, 24, 26, 28, 31, 34, 38, 42, 47, 52, 58, 64, 68,
	71, 74, 76, 78, 80, 81, 82, 83, 84, 85, 86, 87, 88, 89, 90, 91, 92, 94, 96, 98,
	100,
}

// HQChance is the percentage chance an item comes out high quality.
type HQChance uint8

// NQ is the dual chance that the item comes out normal quality.
func (c HQChance) NQ() NQChance { return NQChance(100 - c) }

// NQChance is the percentage chance an item comes out normal quality.
type NQChance uint8

// HQ is the dual chance that the item comes out high quality.
func (c NQChance) HQ() HQChance { return HQChance(100 - c) }

// Collectability is the turn-in rating of a collectable item. Reward tiers
// are recipe specific and are the caller's concern.
type Collectability uint32

// ForQuality looks up the HQ chance for a craft finished at the given
// quality against the recipe's maximum. The percentage rounds to nearest,
// matching the game's own lookup.
func ForQuality(quality, recipeQuality uint32) HQChance {
	if quality > recipeQuality {
		quality = recipeQuality
	}
	raw := (quality*200 + recipeQuality) / (recipeQuality * 2)
	if raw > 100 {
		raw = 100
	}
	return HQChance(hq[raw])
}

// CollectabilityForQuality converts quality to the collectability rating.
func CollectabilityForQuality(quality, recipeQuality uint32) Collectability {
	if quality > recipeQuality {
		quality = recipeQuality
	}
	return Collectability(quality / 10)
}

// Mapper converts a completed craft's quality into a display value. The two
// implementations cover normal items and collectables.
type Mapper interface {
	Map(quality, recipeQuality uint32) uint32
}

// HQMap maps quality to the HQ chance percentage.
type HQMap struct{}

// Map implements Mapper.
func (HQMap) Map(quality, recipeQuality uint32) uint32 {
	return uint32(ForQuality(quality, recipeQuality))
}

// CollectabilityMap maps quality to the collectability rating.
type CollectabilityMap struct{}

// Map implements Mapper.
func (CollectabilityMap) Map(quality, recipeQuality uint32) uint32 {
	return uint32(CollectabilityForQuality(quality, recipeQuality))
}
