package autoplay

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

//go:embed prompts/next_action.txt
var nextActionPrompt string

var nextActionTmpl = template.Must(template.New("next_action").Parse(nextActionPrompt))

// historyWindow is how many past turns are shown to the model.
const historyWindow = 8

// Gemini asks a Gemini model for each command.
type Gemini struct {
	client    *genai.Client
	model     *genai.GenerativeModel
	modelName string
}

func NewGemini(ctx context.Context, apiKey, modelName string) (*Gemini, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	return &Gemini{
		client:    client,
		model:     client.GenerativeModel(modelName),
		modelName: modelName,
	}, nil
}

func (g *Gemini) Close() error {
	return g.client.Close()
}

func (g *Gemini) Name() string { return "gemini:" + g.modelName }

func (g *Gemini) NextAction(ctx context.Context, t Turn) (string, error) {
	prompt, err := buildPrompt(t)
	if err != nil {
		return "", err
	}

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content returned from Gemini")
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", fmt.Errorf("unexpected response type from Gemini")
	}
	if action := cleanAction(string(text)); action != "" {
		return action, nil
	}
	return "hunt", nil
}

func buildPrompt(t Turn) (string, error) {
	history := ""
	entries := t.History
	if len(entries) > historyWindow {
		entries = entries[len(entries)-historyWindow:]
	}
	for _, e := range entries {
		history += fmt.Sprintf("Action: %s\nOutcome: %s\n", e.PlayerAction, strings.Join(e.Outcome, " "))
	}

	data := struct {
		Output   string
		Commands []string
		History  string
	}{
		Output:   strings.Join(t.Output, "\n"),
		Commands: t.Commands,
		History:  history,
	}

	var buf bytes.Buffer
	if err := nextActionTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// cleanAction reduces a model answer to a single command line.
func cleanAction(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	s = strings.Trim(s, "`\"' ")
	s = strings.TrimPrefix(s, "> ")
	return strings.TrimSpace(s)
}
