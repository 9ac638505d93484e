package engine

import (
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/tatianab/evolve-adventure/internal/models"
)

// Commands lists the inputs that mean something at the current location.
func (e *Engine) Commands() []string {
	info := models.World[e.player.Location]
	cmds := make([]string, 0, 8)
	for _, x := range info.Exits {
		cmds = append(cmds, "go "+string(x.To))
	}
	if info.Hunt != nil {
		cmds = append(cmds, "hunt")
	}
	if p := info.Pickup; p != nil && !e.collected.Has(p.Item) {
		cmds = append(cmds, "get "+string(p.Item))
	}
	seen := make(map[models.ItemName]bool)
	for _, n := range e.player.Inventory {
		if !seen[n] {
			seen[n] = true
			cmds = append(cmds, "consume "+string(n))
		}
	}
	return append(cmds, "quit")
}

func (e *Engine) suggestion(input string) (string, bool) {
	in := strings.ToLower(strings.Join(strings.Fields(input), " "))
	if len(in) < 2 {
		return "", false
	}
	best, bestDist := "", -1
	for _, c := range e.Commands() {
		d := levenshtein.ComputeDistance(in, c)
		if d > distanceLimit(len(c)) {
			continue
		}
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	return best, bestDist >= 0
}

func distanceLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
