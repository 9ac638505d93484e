// Package autoplay provides automatic players that pick the next command of
// a session. The simulator uses them to play whole games headless.
package autoplay

import (
	"context"

	"github.com/tatianab/evolve-adventure/internal/models"
)

// Turn is what a player gets to see before choosing an action.
type Turn struct {
	Number    int
	Player    models.Player
	Collected []models.ItemName
	Output    []string // everything printed since the previous action
	Commands  []string // commands that mean something at the current location
	History   []models.TurnEntry
}

// collected reports whether a pickup has been taken.
func (t Turn) collected(name models.ItemName) bool {
	for _, c := range t.Collected {
		if c == name {
			return true
		}
	}
	return false
}

// Player chooses the next command to send to the engine.
type Player interface {
	Name() string
	NextAction(ctx context.Context, t Turn) (string, error)
}

// Autopilot plays a fixed strategy: take the soup and steak, hunt and eat
// until the cave opens, then eat the magic rock.
type Autopilot struct{}

func (Autopilot) Name() string { return "autopilot" }

func (Autopilot) NextAction(_ context.Context, t Turn) (string, error) {
	p := t.Player
	switch {
	case p.Has(models.MagicRock):
		return "consume magic rock", nil
	case p.Location == models.Cave:
		return "get magic rock", nil
	case p.MaturityLevel >= models.CaveMaturity:
		return walk(p.Location, models.Cave), nil
	case len(p.Inventory) > 0:
		return "consume " + string(p.Inventory[0]), nil
	}

	for _, name := range []models.ItemName{models.Soup, models.Steak} {
		if t.collected(name) {
			continue
		}
		loc, _ := models.PickupLocation(name)
		if p.Location == loc {
			return "get " + string(name), nil
		}
		return walk(p.Location, loc), nil
	}

	if models.World[p.Location].Hunt != nil {
		return "hunt", nil
	}
	return walk(p.Location, models.Forest), nil
}

// walk returns the "go" command for the first step of a shortest path.
func walk(from, to models.Location) string {
	prev := map[models.Location]models.Location{from: from}
	queue := []models.Location{from}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == to {
			break
		}
		for _, x := range models.World[cur].Exits {
			if _, seen := prev[x.To]; !seen {
				prev[x.To] = cur
				queue = append(queue, x.To)
			}
		}
	}
	if _, ok := prev[to]; !ok || from == to {
		return "go " + string(to)
	}
	step := to
	for prev[step] != from {
		step = prev[step]
	}
	return "go " + string(step)
}
