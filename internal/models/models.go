package models

import (
	"slices"
	"strings"
)

// Location is one of the fixed places in the world.
type Location string

const (
	Riverside Location = "riverside"
	Forest    Location = "forest"
	Cabin     Location = "cabin"
	Treehouse Location = "treehouse"
	Cave      Location = "cave"
)

// Locations lists every location in world order.
var Locations = []Location{Riverside, Forest, Cabin, Treehouse, Cave}

// ParseLocation maps a typed destination onto a Location.
func ParseLocation(s string) (Location, bool) {
	l := Location(s)
	return l, slices.Contains(Locations, l)
}

// Title is the capitalised name used in rejection messages.
func (l Location) Title() string {
	if l == "" {
		return ""
	}
	return strings.ToUpper(string(l[:1])) + string(l[1:])
}

// ItemName identifies an entry of the item catalog.
type ItemName string

const (
	Worm      ItemName = "worm"
	Seed      ItemName = "seed"
	Fish      ItemName = "fish"
	Soup      ItemName = "soup"
	Steak     ItemName = "steak"
	MagicRock ItemName = "magic rock"
)

// Item is a catalog definition.
type Item struct {
	Name       ItemName `yaml:"name"`
	Consumable bool     `yaml:"consumable"`
	Maturity   int      `yaml:"maturity"` // gained when consumed
}

// Catalog is the fixed item catalog, in hunt order.
var Catalog = []Item{
	{Name: Worm, Consumable: true, Maturity: 1},
	{Name: Seed, Consumable: true, Maturity: 2},
	{Name: Fish, Consumable: true, Maturity: 3},
	{Name: Soup, Consumable: true, Maturity: 4},
	{Name: Steak, Consumable: true, Maturity: 5},
	{Name: MagicRock, Consumable: true, Maturity: 8},
}

// LookupItem finds a catalog item by its exact name.
func LookupItem(name string) (Item, bool) {
	for _, it := range Catalog {
		if string(it.Name) == name {
			return it, true
		}
	}
	return Item{}, false
}

// Player is the dynamic state of the single player.
type Player struct {
	MaturityLevel int        `yaml:"maturity_level"`
	Location      Location   `yaml:"location"`
	Inventory     []ItemName `yaml:"inventory"`
}

// NewPlayer returns the player as they start the game.
func NewPlayer() Player {
	return Player{Location: Riverside, Inventory: []ItemName{}}
}

// Has reports whether at least one of the item is carried.
func (p Player) Has(name ItemName) bool {
	return slices.Contains(p.Inventory, name)
}

// Add appends an item to the inventory.
func (p *Player) Add(name ItemName) {
	p.Inventory = append(p.Inventory, name)
}

// Remove drops the first instance of an item. It reports false if none was carried.
func (p *Player) Remove(name ItemName) bool {
	i := slices.Index(p.Inventory, name)
	if i < 0 {
		return false
	}
	p.Inventory = slices.Delete(p.Inventory, i, i+1)
	return true
}

// InventoryText joins the inventory the way the status line shows it.
func (p Player) InventoryText() string {
	names := make([]string, len(p.Inventory))
	for i, n := range p.Inventory {
		names[i] = string(n)
	}
	return strings.Join(names, ", ")
}

// Clone returns a copy that shares no inventory storage with p.
func (p Player) Clone() Player {
	p.Inventory = slices.Clone(p.Inventory)
	if p.Inventory == nil {
		p.Inventory = []ItemName{}
	}
	return p
}
