package stub

import (
	"image/color"
	"strings"
)

// UnrelatedReply is returned for queries that match none of the stories
const UnrelatedReply = "Well, that's about as related to my stories as a fish is to bicycle repair! I only know about the stories I've read."

type story struct {
	keywords []string
	text     string
	from, to color.RGBA
}

var stories = []story{
	{
		keywords: []string{"dragon", "knight", "castle"},
		text: "The knight rode up to the castle, took one look at the dragon, and asked it for directions. " +
			"The dragon, flattered, gave them in **three languages** and a rough sketch.",
		from: color.RGBA{R: 0xd9, G: 0x5f, B: 0x5f, A: 0xff},
		to:   color.RGBA{R: 0xf5, G: 0xb7, B: 0x61, A: 0xff},
	},
	{
		keywords: []string{"fox", "crow", "forest", "cheese"},
		text: "The crow sat in the forest holding a piece of cheese. The fox complimented her singing. " +
			"She read the fine print, kept the cheese, and started a podcast.",
		from: color.RGBA{R: 0x93, G: 0xb5, B: 0x6b, A: 0xff},
		to:   color.RGBA{R: 0x36, G: 0x30, B: 0x2a, A: 0xff},
	},
	{
		keywords: []string{"story", "stories", "tale", "once upon"},
		text: "Once upon a time, a storyteller ran out of stories, so she borrowed one from the moon. " +
			"The moon wanted it back by Tuesday.",
		from: color.RGBA{R: 0x6b, G: 0x93, B: 0xb5, A: 0xff},
		to:   color.RGBA{R: 0x1a, G: 0x18, B: 0x16, A: 0xff},
	},
}

// confused is the palette of the image attached to unrelated replies
var confused = story{
	from: color.RGBA{R: 0x83, G: 0x71, B: 0x5f, A: 0xff},
	to:   color.RGBA{R: 0x5c, G: 0x50, B: 0x44, A: 0xff},
}

// match returns the first story whose keywords appear in query
func match(query string) (story, bool) {
	q := strings.ToLower(query)
	for _, s := range stories {
		for _, k := range s.keywords {
			if strings.Contains(q, k) {
				return s, true
			}
		}
	}
	return story{}, false
}
