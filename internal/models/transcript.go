package models

import (
	"io"

	"gopkg.in/yaml.v3"
)

// TurnEntry represents a single turn of a played session.
type TurnEntry struct {
	Turn         int      `yaml:"turn"`
	PlayerAction string   `yaml:"player_action"`
	Outcome      []string `yaml:"outcome"`
	Status       string   `yaml:"status"` // "PLAYING", "QUIT", "WON"
	Player       Player   `yaml:"player"`
}

// Transcript is the record of a whole session.
type Transcript struct {
	Seed    uint64      `yaml:"seed"`
	Player  string      `yaml:"player"` // which automatic player produced the actions
	Result  string      `yaml:"result"`
	Entries []TurnEntry `yaml:"entries"`
}

// Last returns the most recent entry, if any.
func (t *Transcript) Last() (TurnEntry, bool) {
	if len(t.Entries) == 0 {
		return TurnEntry{}, false
	}
	return t.Entries[len(t.Entries)-1], true
}

// WriteYAML encodes the transcript to w.
func (t *Transcript) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(t); err != nil {
		return err
	}
	return enc.Close()
}

// ReadTranscript decodes a transcript written by WriteYAML.
func ReadTranscript(r io.Reader) (*Transcript, error) {
	var t Transcript
	if err := yaml.NewDecoder(r).Decode(&t); err != nil {
		return nil, err
	}
	return &t, nil
}
