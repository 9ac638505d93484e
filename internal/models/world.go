package models

// CaveMaturity is the maturity level needed to walk from the riverside into the cave.
const CaveMaturity = 50

// Exit is one edge of the world graph.
type Exit struct {
	To          Location
	MinMaturity int
}

// HuntGround describes what can be hunted at a location.
type HuntGround struct {
	FailBelow   int // draws under this value fail
	FailMessage string
	Yields      []ItemName
}

// Pickup is a one-time item lying at a location.
type Pickup struct {
	Item ItemName
	// Hint is shown in the description while the item has not been collected.
	// Empty means the item is always mentioned in Description.
	Hint     string
	Obtained string
}

// LocationInfo is the static definition of a location.
type LocationInfo struct {
	Name        Location
	Description []string
	Arrival     string
	Exits       []Exit
	Hunt        *HuntGround
	Pickup      *Pickup
	Consumables []ItemName
	Epilogue    []string
}

// World is the fixed world graph.
var World = map[Location]LocationInfo{
	Riverside: {
		Name:        Riverside,
		Description: []string{"You are standing by the tranquil riverside, listening to the gentle flow of the water."},
		Arrival:     "You have returned to the riverside.",
		Exits: []Exit{
			{To: Forest},
			{To: Cave, MinMaturity: CaveMaturity},
		},
		Hunt: &HuntGround{
			FailBelow:   30,
			FailMessage: "You were not successful in the hunt. Try again.",
			Yields:      []ItemName{Worm, Seed, Fish},
		},
		Consumables: []ItemName{Worm, Seed, Fish},
	},
	Forest: {
		Name:        Forest,
		Description: []string{"The forest is dense and alive with chirping birds and rustling leaves."},
		Arrival:     "You have entered the forest.",
		Exits:       []Exit{{To: Riverside}, {To: Cabin}, {To: Treehouse}},
		Hunt: &HuntGround{
			FailBelow:   20,
			FailMessage: "You found nothing.",
			Yields:      []ItemName{Worm, Seed},
		},
		Consumables: []ItemName{Worm, Seed},
	},
	Cabin: {
		Name:        Cabin,
		Description: []string{"Inside the cozy cabin, you see a warm fireplace crackling softly."},
		Arrival:     "You have entered the cabin.",
		Exits:       []Exit{{To: Forest}},
		Pickup: &Pickup{
			Item:     Soup,
			Hint:     "There is soup here. You can 'get soup' to add it to your inventory.",
			Obtained: "You have obtained soup.",
		},
	},
	Treehouse: {
		Name:        Treehouse,
		Description: []string{"From the treehouse, you have a commanding view of the surrounding forest."},
		Arrival:     "You have entered the treehouse.",
		Exits:       []Exit{{To: Forest}},
		Pickup: &Pickup{
			Item:     Steak,
			Hint:     "There is a steak here. You can 'get steak' to add it to your inventory.",
			Obtained: "You have obtained steak.",
		},
	},
	Cave: {
		Name:        Cave,
		Description: []string{"The cave is damp and echoes with mysterious sounds."},
		Arrival:     "You have entered the cave.",
		Exits:       []Exit{{To: Riverside}},
		Pickup: &Pickup{
			Item:     MagicRock,
			Obtained: "You have obtained the magic rock.",
		},
		Epilogue: []string{
			"There is a magic rock here.",
			"As you go closer you notice streaks of colours and light on the surface",
			" of the rock. A black glow emanates from it.",
			" It is soft and fleshy to the touch, is it edible?",
			"",
		},
	},
}

// Route looks up the exit from one location to another.
func Route(from, to Location) (Exit, bool) {
	for _, e := range World[from].Exits {
		if e.To == to {
			return e, true
		}
	}
	return Exit{}, false
}

// PickupLocation returns where a one-time item lies.
func PickupLocation(name ItemName) (Location, bool) {
	for _, l := range Locations {
		if p := World[l].Pickup; p != nil && p.Item == name {
			return l, true
		}
	}
	return "", false
}
