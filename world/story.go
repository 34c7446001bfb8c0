package world

import "fmt"

// Story is the narrative shown when arriving on a tile
type Story struct {
	Title string
	Body  string
}

var stories = map[Terrain][]string{
	TerrainForest: {
		"You enter a dense forest. Ancient trees tower above you, their branches blocking most of the sunlight. The air is thick with the scent of pine and earth. Birds chirp somewhere in the canopy above. (10 minutes)",
		"The forest grows darker here. Moss covers the tree trunks, and you hear the distant sound of an animal rustling through the underbrush. Your footsteps are muffled by a thick carpet of fallen leaves. (10 minutes)",
		"A small clearing appears in the forest. Wildflowers grow here, and a fallen log provides a perfect resting spot. The peace is interrupted only by the occasional flutter of wings. (10 minutes)",
	},
	TerrainPlains: {
		"You traverse an open plain. Golden grass sways in the gentle breeze, stretching endlessly toward the horizon. The sun warms your face as you walk. (10 minutes)",
		"The plains continue. In the distance, you spot a lone tree standing as a sentinel over the grassland. A hawk circles overhead, searching for prey. (10 minutes)",
		"Rolling hills of grass surround you. The wind picks up, creating waves across the plain like an ocean of gold. The sky is vast and blue above. (10 minutes)",
	},
	TerrainRiver: {
		"You reach the riverbank. The water flows swiftly, crystal clear and cold. Smooth stones line the shore, and you can see fish darting beneath the surface. (10 minutes)",
		"The river widens here, its current slowing to a gentle burble. Water striders dance across the surface, and dragonflies hover near the reeds at the water's edge. (10 minutes)",
		"The river runs deep here. The sound of rushing water fills your ears. Across the way, you can see the opposite bank, but the current looks treacherous. (10 minutes)",
	},
}

// StoryFor picks the narrative variant for a tile; terrains without their own
// texts borrow the plains variants. Deterministic for a given (c, t, size)
func StoryFor(c Coord, t Terrain, size int) Story {
	variants, ok := stories[t]
	if !ok {
		variants = stories[TerrainPlains]
	}

	idx := (c.X + c.Y*size) % len(variants)
	if idx < 0 {
		idx += len(variants)
	}

	return Story{
		Title: fmt.Sprintf("%s (%d, %d)", t.Name(), c.X, c.Y),
		Body:  variants[idx],
	}
}
