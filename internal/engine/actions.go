package engine

import (
	"fmt"
	"slices"

	"github.com/tatianab/evolve-adventure/internal/models"
)

var winSequence = []string{
	"You have consumed the magic rock...",
	"Suddenly, you feel an overwhelming surge of energy and you are pulled into a portal.",
	"Thank you for playing. Fare thee well!",
}

func (e *Engine) goTo(dest string, w LineWriter) {
	from := e.player.Location
	to, ok := models.ParseLocation(dest)
	var exit models.Exit
	if ok {
		exit, ok = models.Route(from, to)
	}
	if !ok {
		w.WriteLine(fmt.Sprintf("You can't go there from %s.", from.Title()))
		return
	}
	if e.player.MaturityLevel < exit.MinMaturity {
		w.WriteLine(fmt.Sprintf("You must reach maturity level %d to enter the %s.", exit.MinMaturity, to))
		return
	}

	e.player.Location = to
	w.WriteLine(models.World[to].Arrival)
	e.log.Printf("moved %s -> %s", from, to)
}

func (e *Engine) hunt(w LineWriter) {
	ground := models.World[e.player.Location].Hunt
	if ground == nil {
		w.WriteLine("There's nothing to hunt here.")
		return
	}

	if draw := e.dice.IntN(101); draw < ground.FailBelow {
		w.WriteLine(ground.FailMessage)
		return
	}

	eligible := Huntable(ground)
	if len(eligible) == 0 {
		w.WriteLine(ground.FailMessage)
		return
	}
	found := eligible[e.dice.IntN(len(eligible))]
	w.WriteLine(fmt.Sprintf("You found %s.", found.Name))
	e.player.Add(found.Name)
}

// Huntable filters the catalog down to what a hunt ground can yield, in
// catalog order.
func Huntable(ground *models.HuntGround) []models.Item {
	var out []models.Item
	for _, it := range models.Catalog {
		if slices.Contains(ground.Yields, it.Name) {
			out = append(out, it)
		}
	}
	return out
}

// pickUp gives the same answer for the wrong place and for an item that was
// already taken.
func (e *Engine) pickUp(name models.ItemName, w LineWriter) {
	loc, ok := models.PickupLocation(name)
	if !ok || e.player.Location != loc || e.collected.Has(name) {
		w.WriteLine(fmt.Sprintf("There is no %s here.", name))
		return
	}

	e.player.Add(name)
	e.collected.Put(name)
	w.WriteLine(models.World[loc].Pickup.Obtained)
	e.log.Printf("picked up %s at %s", name, loc)
}

// consume eats one item. Asking to consume the magic rock ends the game
// even when the player does not carry one.
func (e *Engine) consume(name string, w LineWriter) {
	it, ok := models.LookupItem(name)
	switch {
	case !ok || !it.Consumable:
		w.WriteLine(fmt.Sprintf("%s is not a consumable item.", name))
	case !e.player.Remove(it.Name):
		w.WriteLine(fmt.Sprintf("You don't have any %s to consume.", name))
	default:
		w.WriteLine(fmt.Sprintf("You consumed the %s.", name))
		e.player.MaturityLevel += it.Maturity
		w.WriteLine(fmt.Sprintf("Your maturity level has increased. Current level: %d", e.player.MaturityLevel))
	}

	if name == string(models.MagicRock) {
		for _, l := range winSequence {
			w.WriteLine(l)
		}
		e.end(Won)
	}
}
