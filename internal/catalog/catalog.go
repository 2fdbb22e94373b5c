// Package catalog holds the fixed set of places and facts bundled with the app.
package catalog

import "github.com/ericfisherdev/skylands/internal/domain/model"

var places = []model.Place{
	{
		ID:          "sky_tower",
		Title:       "Sky Tower, Auckland",
		Description: "A 328m observation tower in the centre of Auckland, the highest observation deck in the Southern Hemisphere, with restaurants and entertainment.",
		Coordinates: model.Coordinates{Latitude: -36.84845, Longitude: 174.76219},
		ImageName:   "sky_tower",
	},
	{
		ID:          "hobbiton",
		Title:       "Hobbiton Movie Set",
		Description: "A live Shire set from the Lord of the Rings and The Hobbit film trilogies. Notable houses, a pond, the Green Dragon pub and farm tours.",
		Coordinates: model.Coordinates{Latitude: -37.85757, Longitude: 175.68056},
		ImageName:   "hobbiton",
	},
	{
		ID:          "waitomo",
		Title:       "Waitomo Glowworm Caves",
		Description: "Caves with unique bioluminescent worms that glow above the water gallery - an atmospheric night boat tour under the stars.",
		Coordinates: model.Coordinates{Latitude: -38.2611, Longitude: 175.1045},
		ImageName:   "waitomo",
	},
	{
		ID:          "milford",
		Title:       "Milford Sound / Piopiotahi",
		Description: "The fjord in Fiordland is one of the most famous natural wonders of the world, with cruises, waterfalls, mountain panoramas and rare fauna.",
		Coordinates: model.Coordinates{Latitude: -44.64806, Longitude: 167.90556},
		ImageName:   "milford",
	},
	{
		ID:          "sutherland_falls",
		Title:       "Sutherland Falls",
		Description: "The highest waterfall in New Zealand (≈580m), falling from Lake Quill - a walk along part of the Milford Track (≈90min there and back).",
		Coordinates: model.Coordinates{Latitude: -44.67, Longitude: 167.92},
		ImageName:   "sutherland_falls",
	},
	{
		ID:          "mirror_lakes",
		Title:       "Mirror Lakes",
		Description: "Small mirror lakes with a beautiful reflection of the Eglinton and Earl Mountains - a convenient viewing stop right by the road.",
		Coordinates: model.Coordinates{Latitude: -44.85, Longitude: 167.9},
		ImageName:   "mirror_lakes",
	},
	{
		ID:          "aoraki",
		Title:       "Aoraki / Mount Cook",
		Description: "The highest peak in the country (3724m); the national park offers tracks, glaciers, starry night themes and mountain panoramas.",
		Coordinates: model.Coordinates{Latitude: -43.736, Longitude: 170.094},
		ImageName:   "aoraki",
	},
	{
		ID:          "queenstown",
		Title:       "Queenstown",
		Description: "A city in the Southern Alps, a center of adventure: bungee, skiing, picturesque lakes, extreme tours and a legendary view of Lake Wakatipu.",
		Coordinates: model.Coordinates{Latitude: -45.03116, Longitude: 168.66264},
		ImageName:   "queenstown",
	},
	{
		ID:          "nevis_highwire",
		Title:       "Nevis Highwire / Bungee",
		Description: "The third largest bungee jump in the world (134m) over the Nevis River Valley is an extreme attraction for true adrenaline junkies.",
		Coordinates: model.Coordinates{Latitude: -45.06294, Longitude: 168.02872},
		ImageName:   "nevis_highwire",
	},
	{
		ID:          "bowen_falls",
		Title:       "Bowen Falls, Milford Sound",
		Description: "A tall (≈162m) waterfall right in the fjord, accessible by a short walk or boat from Milford wharf.",
		Coordinates: model.Coordinates{Latitude: -44.6705, Longitude: 167.9217},
		ImageName:   "bowen_falls",
	},
}

var facts = []model.Fact{
	{Title: "Land of the Long White Cloud", Description: "The Māori name for New Zealand is Aotearoa, which means “Land of the Long White Cloud”."},
	{Title: "No Snakes, No Worries", Description: "Unlike many other countries, New Zealand has no native snakes — not even in the wild."},
	{Title: "Home of Middle-earth", Description: "Much of The Lord of the Rings was filmed in NZ. Hobbiton and Fiordland became iconic sets."},
	{Title: "The Bird That Can’t Fly", Description: "The kiwi, a flightless and nocturnal bird, is a national symbol and found only in NZ."},
	{Title: "Glowworm Caves", Description: "Waitomo Caves glow naturally thanks to thousands of bioluminescent glowworms."},
	{Title: "Southernmost Capital", Description: "Wellington is the southernmost capital city in the world and is full of culture."},
	{Title: "Earthquakes Are Common", Description: "Located on the Ring of Fire, NZ experiences frequent minor quakes."},
	{Title: "Ancient Trees", Description: "Tāne Mahuta is a 2,000-year-old kauri tree revered by the Māori as “The Lord of the Forest”."},
	{Title: "Three Official Languages", Description: "English, Te Reo Māori, and NZ Sign Language are all official languages in New Zealand."},
	{Title: "Sheep Outnumber People", Description: "With 25 million sheep and 5 million people, NZ has 5 times more sheep than residents."},
}

// Places returns a copy of the bundled places in display order.
func Places() []model.Place {
	out := make([]model.Place, len(places))
	copy(out, places)
	return out
}

// PlaceByID looks up a bundled place by its catalog ID.
func PlaceByID(id string) (model.Place, bool) {
	for _, p := range places {
		if p.ID == id {
			return p, true
		}
	}
	return model.Place{}, false
}

// Facts returns a copy of the bundled facts in carousel order.
func Facts() []model.Fact {
	out := make([]model.Fact, len(facts))
	copy(out, facts)
	return out
}

// FactAt returns the fact at index i, wrapping around the list in both
// directions so the carousel can advance indefinitely.
func FactAt(i int) model.Fact {
	n := len(facts)
	return facts[((i%n)+n)%n]
}
