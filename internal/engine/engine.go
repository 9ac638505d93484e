package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"strings"

	"github.com/tatianab/evolve-adventure/internal/models"
	"github.com/zyedidia/generic/mapset"
)

const (
	welcomeText = "Welcome to the Evolve Text Adventure Game!"
	promptText  = "What would you like to do?"
	unknownText = "I'm not sure what you mean. Please try something else."
	goodbyeText = "Goodbye!"
)

// LineReader produces one line of player input per call. It returns io.EOF
// when no more input will arrive.
type LineReader interface {
	ReadLine() (string, error)
}

// LineWriter receives the game's output, one line at a time.
type LineWriter interface {
	WriteLine(s string)
	BlankLine()
}

// Dice is the source of randomness for hunting.
type Dice interface {
	// IntN returns a uniform integer in [0, n).
	IntN(n int) int
}

// Status tells whether a session is still running and how it ended.
type Status int

const (
	Playing Status = iota
	Quit
	Won
)

func (s Status) String() string {
	switch s {
	case Quit:
		return "QUIT"
	case Won:
		return "WON"
	default:
		return "PLAYING"
	}
}

// Engine owns the state of one game session.
type Engine struct {
	player    models.Player
	collected mapset.Set[models.ItemName]
	dice      Dice
	suggest   bool
	log       *log.Logger
	status    Status
}

// Option configures an Engine.
type Option func(*Engine)

// WithDice replaces the random source used by hunting.
func WithDice(d Dice) Option {
	return func(e *Engine) { e.dice = d }
}

// WithSuggestions enables "did you mean" hints after unknown commands.
func WithSuggestions(on bool) Option {
	return func(e *Engine) { e.suggest = on }
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// NewDice returns a PCG-backed Dice. A zero seed picks a random one.
func NewDice(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// New creates an engine with the player at the start of the game.
func New(opts ...Option) *Engine {
	e := &Engine{
		player:    models.NewPlayer(),
		collected: mapset.New[models.ItemName](),
		log:       log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.dice == nil {
		e.dice = NewDice(0)
	}
	return e
}

// Player returns a snapshot of the player state.
func (e *Engine) Player() models.Player {
	return e.player.Clone()
}

// Collected reports whether a one-time pickup has already been taken.
func (e *Engine) Collected(name models.ItemName) bool {
	return e.collected.Has(name)
}

// Status returns the session status.
func (e *Engine) Status() Status {
	return e.status
}

// Welcome writes the opening line of a session.
func (e *Engine) Welcome(w LineWriter) {
	w.WriteLine(welcomeText)
}

// Run plays a whole session, reading commands from r until the player
// quits, wins, input ends or ctx is cancelled. End of input counts as quit.
func (e *Engine) Run(ctx context.Context, r LineReader, w LineWriter) (Status, error) {
	e.Welcome(w)
	for {
		if err := ctx.Err(); err != nil {
			return e.status, err
		}
		e.WriteStatus(w)
		w.WriteLine(promptText)

		line, err := r.ReadLine()
		if errors.Is(err, io.EOF) {
			e.log.Printf("input closed, quitting")
			line = "quit"
		} else if err != nil {
			return e.status, fmt.Errorf("read input: %w", err)
		}

		if st := e.Handle(line, w); st != Playing {
			return st, nil
		}
		w.BlankLine()
	}
}

// Handle applies one line of input and returns the resulting status.
// Once a session has ended further input is ignored.
func (e *Engine) Handle(input string, w LineWriter) Status {
	if e.status != Playing {
		return e.status
	}

	cmd := ParseCommand(input)
	switch cmd.Verb {
	case VerbGo:
		e.goTo(cmd.Arg, w)
	case VerbHunt:
		e.hunt(w)
	case VerbConsume:
		e.consume(cmd.Arg, w)
	case VerbGet:
		e.pickUp(models.ItemName(cmd.Arg), w)
	case VerbQuit:
		w.WriteLine(goodbyeText)
		e.end(Quit)
	default:
		w.WriteLine(unknownText)
		if e.suggest {
			if s, ok := e.suggestion(input); ok {
				w.WriteLine(fmt.Sprintf("Did you mean '%s'?", s))
			}
		}
	}
	return e.status
}

func (e *Engine) end(s Status) {
	e.status = s
	e.log.Printf("session ended: %s (maturity %d)", s, e.player.MaturityLevel)
}

// WriteStatus writes the player stats followed by the location description.
func (e *Engine) WriteStatus(w LineWriter) {
	w.WriteLine(fmt.Sprintf("Current Maturity Level: %d", e.player.MaturityLevel))
	w.WriteLine(fmt.Sprintf("Current Location: %s", e.player.Location))
	w.WriteLine(fmt.Sprintf("Inventory: %s", e.player.InventoryText()))
	e.WriteLocation(w)
}

// WriteLocation describes the current location with its exits and actions.
func (e *Engine) WriteLocation(w LineWriter) {
	info, ok := models.World[e.player.Location]
	if !ok {
		w.WriteLine("You find yourself in an unknown location.")
		return
	}
	for _, l := range info.Description {
		w.WriteLine(l)
	}

	exits := make([]string, len(info.Exits))
	for i, x := range info.Exits {
		exits[i] = string(x.To)
	}
	w.WriteLine("You can go to: " + strings.Join(exits, ", "))

	if info.Hunt != nil {
		w.WriteLine("You can hunt here.")
	}
	if len(info.Consumables) > 0 {
		names := make([]string, len(info.Consumables))
		for i, n := range info.Consumables {
			names[i] = string(n)
		}
		w.WriteLine("You can consume: " + strings.Join(names, ", "))
	}
	if p := info.Pickup; p != nil && p.Hint != "" && !e.collected.Has(p.Item) {
		w.WriteLine(p.Hint)
	}
	for _, l := range info.Epilogue {
		w.WriteLine(l)
	}
}
