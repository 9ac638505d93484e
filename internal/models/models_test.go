package models

import (
	"bytes"
	"testing"
)

func TestTranscriptYAML(t *testing.T) {
	tr := &Transcript{
		Seed:   7,
		Player: "autopilot",
		Result: "WON",
		Entries: []TurnEntry{
			{
				Turn:         1,
				PlayerAction: "go forest",
				Outcome:      []string{"You have entered the forest."},
				Status:       "PLAYING",
				Player:       Player{Location: Forest, Inventory: []ItemName{Worm, MagicRock}},
			},
		},
	}

	var buf bytes.Buffer
	if err := tr.WriteYAML(&buf); err != nil {
		t.Fatalf("Failed to write transcript: %v", err)
	}

	got, err := ReadTranscript(&buf)
	if err != nil {
		t.Fatalf("Failed to read transcript: %v", err)
	}

	if got.Result != tr.Result {
		t.Errorf("Expected result %s, got %s", tr.Result, got.Result)
	}
	last, ok := got.Last()
	if !ok {
		t.Fatalf("Expected 1 entry, got %d", len(got.Entries))
	}
	if last.Player.Location != Forest {
		t.Errorf("Expected location forest, got %s", last.Player.Location)
	}
	if len(last.Player.Inventory) != 2 || last.Player.Inventory[1] != MagicRock {
		t.Errorf("Expected inventory [worm magic rock], got %v", last.Player.Inventory)
	}
}

func TestPlayerRemoveTakesOneInstance(t *testing.T) {
	p := NewPlayer()
	p.Add(Worm)
	p.Add(Seed)
	p.Add(Worm)

	if !p.Remove(Worm) {
		t.Fatalf("Expected worm to be removed")
	}
	if got := p.InventoryText(); got != "seed, worm" {
		t.Errorf("Expected %q, got %q", "seed, worm", got)
	}
	if p.Remove(Fish) {
		t.Errorf("Expected no fish to remove")
	}
}

func TestCloneDoesNotShareInventory(t *testing.T) {
	p := NewPlayer()
	p.Add(Seed)
	c := p.Clone()
	c.Add(Fish)
	if len(p.Inventory) != 1 {
		t.Errorf("Clone mutated original inventory: %v", p.Inventory)
	}
}

func TestRoute(t *testing.T) {
	tests := []struct {
		from, to Location
		ok       bool
		min      int
	}{
		{Riverside, Forest, true, 0},
		{Riverside, Cave, true, CaveMaturity},
		{Riverside, Cabin, false, 0},
		{Forest, Treehouse, true, 0},
		{Cabin, Treehouse, false, 0},
		{Cave, Riverside, true, 0},
		{Cave, Forest, false, 0},
	}
	for _, tc := range tests {
		e, ok := Route(tc.from, tc.to)
		if ok != tc.ok {
			t.Fatalf("Route(%s, %s) ok=%v want %v", tc.from, tc.to, ok, tc.ok)
		}
		if ok && e.MinMaturity != tc.min {
			t.Errorf("Route(%s, %s) min=%d want %d", tc.from, tc.to, e.MinMaturity, tc.min)
		}
	}
}

func TestLookups(t *testing.T) {
	if _, ok := ParseLocation("castle"); ok {
		t.Errorf("castle should not be a location")
	}
	if l, ok := ParseLocation("treehouse"); !ok || l.Title() != "Treehouse" {
		t.Errorf("ParseLocation(treehouse) = %q, %v", l, ok)
	}
	it, ok := LookupItem("magic rock")
	if !ok || it.Maturity != 8 {
		t.Errorf("LookupItem(magic rock) = %+v, %v", it, ok)
	}
	if l, ok := PickupLocation(Steak); !ok || l != Treehouse {
		t.Errorf("PickupLocation(steak) = %q, %v", l, ok)
	}
	if _, ok := PickupLocation(Worm); ok {
		t.Errorf("worm is not a pickup")
	}
}
