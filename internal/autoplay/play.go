package autoplay

import (
	"context"
	"fmt"

	"github.com/tatianab/evolve-adventure/internal/console"
	"github.com/tatianab/evolve-adventure/internal/engine"
	"github.com/tatianab/evolve-adventure/internal/models"
)

// Play lets p drive eng for at most maxTurns commands and records every turn.
func Play(ctx context.Context, eng *engine.Engine, p Player, maxTurns int) (*models.Transcript, error) {
	t := &models.Transcript{Player: p.Name()}
	var out console.Buffer
	eng.Welcome(&out)

	for n := 1; n <= maxTurns && eng.Status() == engine.Playing; n++ {
		eng.WriteStatus(&out)
		turn := Turn{
			Number:    n,
			Player:    eng.Player(),
			Collected: collected(eng),
			Output:    out.Lines(),
			Commands:  eng.Commands(),
			History:   t.Entries,
		}
		out.Reset()

		action, err := p.NextAction(ctx, turn)
		if err != nil {
			t.Result = eng.Status().String()
			return t, fmt.Errorf("turn %d: %w", n, err)
		}

		st := eng.Handle(action, &out)
		t.Entries = append(t.Entries, models.TurnEntry{
			Turn:         n,
			PlayerAction: action,
			Outcome:      out.Lines(),
			Status:       st.String(),
			Player:       eng.Player(),
		})
	}

	t.Result = eng.Status().String()
	return t, nil
}

func collected(eng *engine.Engine) []models.ItemName {
	var out []models.ItemName
	for _, l := range models.Locations {
		if p := models.World[l].Pickup; p != nil && eng.Collected(p.Item) {
			out = append(out, p.Item)
		}
	}
	return out
}
