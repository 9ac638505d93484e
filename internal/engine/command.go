package engine

import "strings"

// Verb is the kind of a parsed command.
type Verb int

const (
	VerbUnknown Verb = iota
	VerbGo
	VerbHunt
	VerbConsume
	VerbGet
	VerbQuit
)

func (v Verb) String() string {
	switch v {
	case VerbGo:
		return "go"
	case VerbHunt:
		return "hunt"
	case VerbConsume:
		return "consume"
	case VerbGet:
		return "get"
	case VerbQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Command is one line of player input, classified.
type Command struct {
	Verb Verb
	Arg  string
}

var exactCommands = map[string]Command{
	"hunt":           {Verb: VerbHunt},
	"get soup":       {Verb: VerbGet, Arg: "soup"},
	"get steak":      {Verb: VerbGet, Arg: "steak"},
	"get magic rock": {Verb: VerbGet, Arg: "magic rock"},
	"quit":           {Verb: VerbQuit},
}

// ParseCommand classifies a raw input line. Only "go " and "consume " are
// matched by prefix; every other command must match exactly.
func ParseCommand(input string) Command {
	switch {
	case strings.HasPrefix(input, "go "):
		return Command{Verb: VerbGo, Arg: strings.TrimSpace(input[len("go "):])}
	case strings.HasPrefix(input, "consume "):
		return Command{Verb: VerbConsume, Arg: strings.TrimSpace(input[len("consume "):])}
	}
	if c, ok := exactCommands[input]; ok {
		return c
	}
	return Command{Verb: VerbUnknown, Arg: input}
}
